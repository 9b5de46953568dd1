// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

// Package vec implements a growable array of T backed by a contiguous
// slice. Elements keep insertion order; indexing is constant time and
// appending is amortized constant time.
//
// The zero Vec is an empty array ready for use. A Vec is not safe for
// concurrent use.
//
// Begin and End issue random-access handles implementing the
// iterator.Bidirectional protocol. Any growth or mutation of the array
// invalidates all previously issued handles.
package vec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/dindin12138/toolkit"
)

// Vec is a dynamic array of T.
type Vec[T any] struct {
	data []T
}

// New returns an empty array. Equivalent to new(Vec[T]).
func New[T any]() *Vec[T] { return new(Vec[T]) }

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return len(v.data) }

// Cap returns the number of elements the array can hold before the
// next growth.
func (v *Vec[T]) Cap() int { return cap(v.data) }

// Empty reports whether the array holds no elements.
func (v *Vec[T]) Empty() bool { return len(v.data) == 0 }

// Reserve grows the capacity to at least n elements. Shrinking is not
// supported: a capacity at or below the current one is a no-op. On
// failure the array is left untouched.
func (v *Vec[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("vec: %w: negative capacity %d", ErrInvalidArgument, n)
	}
	if n <= cap(v.data) {
		return nil
	}
	var zero T
	if size := int(unsafe.Sizeof(zero)); size > 0 && n > math.MaxInt/size {
		return fmt.Errorf("vec: %w: %d elements of %d bytes", ErrNoMemory, n, size)
	}
	data := make([]T, len(v.data), n)
	copy(data, v.data)
	v.data = data
	return nil
}

// At returns a pointer to the element at index i, or false if i is out
// of range. The pointer stays valid until the array mutates.
func (v *Vec[T]) At(i int) (*T, bool) {
	if i < 0 || i >= len(v.data) {
		return nil, false
	}
	return &v.data[i], true
}

// Front returns a pointer to the first element, or false if the array
// is empty.
func (v *Vec[T]) Front() (*T, bool) { return v.At(0) }

// Back returns a pointer to the last element, or false if the array is
// empty.
func (v *Vec[T]) Back() (*T, bool) { return v.At(len(v.data) - 1) }

// Set overwrites the element at index i. Unlike PushBack it never
// grows the array: an index at or past Len is ErrOutOfBounds.
func (v *Vec[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("vec: %w: index %d, len %d", ErrOutOfBounds, i, len(v.data))
	}
	v.data[i] = x
	return nil
}

// PushBack appends x, growing the backing storage as needed.
func (v *Vec[T]) PushBack(x T) {
	v.data = append(v.data, x)
}

// PopBack removes the last element. Popping an empty array is a no-op.
// The vacated slot is zeroed so it does not pin referenced memory.
func (v *Vec[T]) PopBack() {
	n := len(v.data)
	if n == 0 {
		return
	}
	var zero T
	v.data[n-1] = zero
	v.data = v.data[:n-1]
}

// Clear removes all elements in constant time, keeping the capacity
// for reuse. Elements are not released from the backing storage; use
// Destroy to run per-element cleanup and drop the storage.
func (v *Vec[T]) Clear() {
	v.data = v.data[:0]
}

// Destroy runs cleanup on every element exactly once, front to back,
// then releases the backing storage. A nil cleanup just releases the
// storage. The array is empty and reusable afterwards.
func (v *Vec[T]) Destroy(cleanup toolkit.Cleanup[T]) {
	if cleanup != nil {
		for i := range v.data {
			cleanup(&v.data[i])
		}
	}
	v.data = nil
}

// Values implements iter.Seq[T], yielding elements front to back.
func (v *Vec[T]) Values(yield func(T) bool) {
	for i := range v.data {
		if !yield(v.data[i]) {
			return
		}
	}
}

// Begin returns a handle on the first element, equal to End when the
// array is empty.
func (v *Vec[T]) Begin() *Iter[T] {
	it := &Iter[T]{vec: v}
	assertProtocol("vec.Begin", it)
	return it
}

// End returns the one-past-the-last handle. It addresses no element.
func (v *Vec[T]) End() *Iter[T] {
	return &Iter[T]{vec: v, index: len(v.data)}
}
