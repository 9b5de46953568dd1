// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package list

import "github.com/dindin12138/toolkit/iterator"

// Iter is a bidirectional handle into a List. A nil node marks the end
// position; the list back-reference lets the end handle retreat onto
// the tail.
type Iter[T any] struct {
	list *List[T]
	node *node[T]
}

var _ iterator.Bidirectional[int] = (*Iter[int])(nil)

func (it *Iter[T]) Capability() iterator.Capability { return iterator.CapBidirectional }

// Next moves to the next element. Advancing the end handle is a no-op.
func (it *Iter[T]) Next() {
	if it.node != nil {
		it.node = it.node.next
	}
}

// Prev moves to the previous element. From the end handle it lands on
// the tail, or stays at the end when the list is empty. From the first
// element it moves to the end handle.
func (it *Iter[T]) Prev() {
	if it.node != nil {
		it.node = it.node.prev
		return
	}
	if it.list != nil {
		it.node = it.list.tail
	}
}

// Get returns a pointer to the element under the handle. On the end
// handle debug builds panic and release builds return nil.
func (it *Iter[T]) Get() *T {
	assertDeref("list.Iter.Get", it)
	if it.node == nil {
		return nil
	}
	return &it.node.elem
}

// Equal reports whether other addresses the same node of the same
// list. Handles of other lists or other iterator kinds are never
// equal.
func (it *Iter[T]) Equal(other iterator.Iterator[T]) bool {
	o, ok := other.(*Iter[T])
	if !ok || o == nil {
		return false
	}
	return it.list == o.list && it.node == o.node
}

// Clone returns an independent handle at the same position.
func (it *Iter[T]) Clone() iterator.Iterator[T] {
	clone := *it
	return &clone
}
