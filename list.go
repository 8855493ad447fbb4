// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold

import "iter"

// List is an immutable singly linked list. The nil *List is the empty
// list. Nodes are written only during construction; a built list is
// never mutated, so lists may share tails freely.
type List[A any] struct {
	head A
	tail *List[A]
}

// Cons prepends head to tail, returning a new list.
// The tail list is shared, not copied.
func Cons[A any](head A, tail *List[A]) *List[A] {
	return &List[A]{head: head, tail: tail}
}

// Head returns the first element and true, or zero and false when empty.
func (l *List[A]) Head() (A, bool) {
	if l == nil {
		var zero A
		return zero, false
	}
	return l.head, true
}

// Tail returns the list without its first element. Tail of the empty
// list is the empty list.
func (l *List[A]) Tail() *List[A] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Len returns the number of elements. O(n).
func (l *List[A]) Len() int {
	n := 0
	for node := l; node != nil; node = node.tail {
		n++
	}
	return n
}

// All returns an iterator over the elements in list order.
func (l *List[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for node := l; node != nil; node = node.tail {
			if !yield(node.head) {
				return
			}
		}
	}
}

// Slice copies the elements into a new slice in list order.
// Returns nil for the empty list.
func (l *List[A]) Slice() []A {
	var out []A
	for node := l; node != nil; node = node.tail {
		out = append(out, node.head)
	}
	return out
}

// ListOf is the Unfolder instance producing an immutable list.
type ListOf[A any] struct{}

// UnfoldErased implements Unfolder for lists.
func (ListOf[A]) UnfoldErased(step StepFunc[A, Erased], seed Erased) *List[A] {
	return UnfoldList(step, seed)
}

// UnfoldList builds a list by the direct generation loop, linking nodes
// in generation order. Construction appends through a tail pointer so
// no reversal pass is needed; the finished list is immutable.
//
// Does not return with an always-Some step; use [UnfoldSeq] for
// unbounded generation.
func UnfoldList[A, B any](step StepFunc[A, B], seed B) *List[A] {
	var head, last *List[A]
	current := seed
	for {
		y, ok := step(current).Get()
		if !ok {
			return head
		}
		node := &List[A]{head: y.Value}
		if last == nil {
			head = node
		} else {
			last.tail = node
		}
		last = node
		current = y.Seed
	}
}
