// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

// Package list implements a doubly-linked list of T. Pushing and
// popping at either end and splicing around a handle are constant
// time; elements never move once inserted, so pointers returned by
// Front, Back and Get stay valid until their element is removed.
//
// The zero List is an empty list ready for use. A List is not safe for
// concurrent use.
//
// Begin and End issue bidirectional handles implementing the
// iterator protocol. Removing an element invalidates only the handles
// addressing it; every other handle survives the mutation.
package list

import (
	"fmt"

	"github.com/dindin12138/toolkit"
	"github.com/dindin12138/toolkit/iterator"
)

type node[T any] struct {
	prev, next *node[T]
	elem       T
}

// List is a doubly-linked list of T.
type List[T any] struct {
	head, tail *node[T]
	size       int
}

// New returns an empty list. Equivalent to new(List[T]).
func New[T any]() *List[T] { return new(List[T]) }

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns a pointer to the first element, or false if the list
// is empty.
func (l *List[T]) Front() (*T, bool) {
	if l.head == nil {
		return nil, false
	}
	return &l.head.elem, true
}

// Back returns a pointer to the last element, or false if the list is
// empty.
func (l *List[T]) Back() (*T, bool) {
	if l.tail == nil {
		return nil, false
	}
	return &l.tail.elem, true
}

// PushFront prepends x.
func (l *List[T]) PushFront(x T) {
	n := &node[T]{elem: x, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack appends x.
func (l *List[T]) PushBack(x T) {
	n := &node[T]{elem: x, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes the first element. Popping an empty list is a
// no-op.
func (l *List[T]) PopFront() {
	if l.head == nil {
		return
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	n.prev, n.next = nil, nil
	l.size--
}

// PopBack removes the last element. Popping an empty list is a no-op.
func (l *List[T]) PopBack() {
	if l.tail == nil {
		return
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	n.prev, n.next = nil, nil
	l.size--
}

// InsertBefore splices x in front of the position addressed by pos.
// Inserting before End appends, inserting before Begin prepends. The
// handle must come from this list; a handle of another list or of
// another container kind is ErrInvalidArgument.
func (l *List[T]) InsertBefore(pos iterator.Iterator[T], x T) error {
	before, err := l.nodeOf(pos)
	if err != nil {
		return err
	}
	switch {
	case before == nil:
		l.PushBack(x)
	case before == l.head:
		l.PushFront(x)
	default:
		assertInterior("list.InsertBefore", before)
		n := &node[T]{elem: x, prev: before.prev, next: before}
		before.prev.next = n
		before.prev = n
		l.size++
	}
	return nil
}

// EraseAt unlinks the element addressed by pos and returns a handle on
// its successor, or End when the last element was removed. The element
// is dropped without running any cleanup callback. Erasing on an empty
// list is ErrEmpty; the End handle or a handle of another container is
// ErrInvalidArgument. Handles other than pos survive the removal.
func (l *List[T]) EraseAt(pos iterator.Iterator[T]) (*Iter[T], error) {
	if l.size == 0 {
		return nil, fmt.Errorf("list: %w", ErrEmpty)
	}
	target, err := l.nodeOf(pos)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("list: %w: cannot erase the end position", ErrInvalidArgument)
	}
	next := target.next
	if target.prev != nil {
		target.prev.next = next
	} else {
		l.head = next
	}
	if next != nil {
		next.prev = target.prev
	} else {
		l.tail = target.prev
	}
	target.prev, target.next = nil, nil
	l.size--
	if next == nil {
		return l.End(), nil
	}
	return &Iter[T]{list: l, node: next}, nil
}

// Clear removes all elements without running any cleanup callback.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

// Destroy runs cleanup on every element exactly once, front to back,
// then removes them. A nil cleanup behaves like Clear. The list is
// empty and reusable afterwards.
func (l *List[T]) Destroy(cleanup toolkit.Cleanup[T]) {
	for n := l.head; n != nil; {
		next := n.next
		if cleanup != nil {
			cleanup(&n.elem)
		}
		n.prev, n.next = nil, nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

// Values implements iter.Seq[T], yielding elements front to back.
func (l *List[T]) Values(yield func(T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !yield(n.elem) {
			return
		}
	}
}

// Backward implements iter.Seq[T], yielding elements back to front.
func (l *List[T]) Backward(yield func(T) bool) {
	for n := l.tail; n != nil; n = n.prev {
		if !yield(n.elem) {
			return
		}
	}
}

// Begin returns a handle on the first element, equal to End when the
// list is empty.
func (l *List[T]) Begin() *Iter[T] {
	it := &Iter[T]{list: l, node: l.head}
	assertProtocol("list.Begin", it)
	return it
}

// End returns the past-the-last handle. It addresses no element.
func (l *List[T]) End() *Iter[T] {
	return &Iter[T]{list: l}
}

// nodeOf checks that pos was issued by this list and resolves it to
// its node; the end handle resolves to nil.
func (l *List[T]) nodeOf(pos iterator.Iterator[T]) (*node[T], error) {
	it, ok := pos.(*Iter[T])
	if !ok || it == nil {
		return nil, fmt.Errorf("list: %w: handle of a foreign iterator kind", ErrInvalidArgument)
	}
	if it.list != l {
		return nil, fmt.Errorf("list: %w: handle from another list", ErrInvalidArgument)
	}
	return it.node, nil
}
