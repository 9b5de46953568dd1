// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package vec

import "github.com/dindin12138/toolkit/iterator"

// Iter is a random-access handle into a Vec, addressing elements by
// index into the backing slice.
type Iter[T any] struct {
	vec   *Vec[T]
	index int
}

var _ iterator.Bidirectional[int] = (*Iter[int])(nil)

func (it *Iter[T]) Capability() iterator.Capability { return iterator.CapRandomAccess }

// Next moves to the next index. Advancing the end handle is a contract
// violation: debug builds panic, release builds step past the end and
// the handle stops comparing equal to End.
func (it *Iter[T]) Next() {
	assertAdvance("vec.Iter.Next", it)
	it.index++
}

// Prev moves to the previous index. From the end handle it lands on
// the last element, or stays put when the array is empty. Retreating
// from the first element is a contract violation: debug builds panic,
// release builds stay put.
func (it *Iter[T]) Prev() {
	assertRetreat("vec.Iter.Prev", it)
	if it.index > 0 {
		it.index--
	}
}

// Get returns a pointer to the element under the handle. On the end
// handle debug builds panic and release builds return nil.
func (it *Iter[T]) Get() *T {
	assertDeref("vec.Iter.Get", it)
	if it.index >= len(it.vec.data) {
		return nil
	}
	return &it.vec.data[it.index]
}

// Equal reports whether other addresses the same index of the same
// array. Handles of other arrays or other iterator kinds are never
// equal.
func (it *Iter[T]) Equal(other iterator.Iterator[T]) bool {
	o, ok := other.(*Iter[T])
	if !ok || o == nil {
		return false
	}
	return it.vec == o.vec && it.index == o.index
}

// Clone returns an independent handle at the same index.
func (it *Iter[T]) Clone() iterator.Iterator[T] {
	clone := *it
	return &clone
}
