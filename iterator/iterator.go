// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

// Package iterator defines the position-based iteration protocol shared
// by the toolkit's containers.
//
// A handle denotes a position inside one container instance: either an
// element or the one-past-the-last end position. Containers hand out
// handles from Begin and End; algorithms move clones of those handles
// and never touch the container itself. Two handles are equal exactly
// when they were produced by the same container and denote the same
// position, so a forward walk is
//
//	for it := c.Begin(); !it.Equal(c.End()); it.Next() { ... }
//
// Every implementation declares a Capability. Moving backward is legal
// only at CapBidirectional or above; Validate reports implementations
// whose declared capability disagrees with their method set.
//
// Mutating a container invalidates the handles it issued, except where
// the container documents otherwise. Using a stale handle is a caller
// bug and is not detected.
package iterator

import "fmt"

// Capability ranks what an iterator can do. Each level includes the
// ones below it.
type Capability uint8

const (
	// CapForward supports Next, Get, Equal and Clone.
	CapForward Capability = iota
	// CapBidirectional additionally supports Prev.
	CapBidirectional
	// CapRandomAccess additionally reaches any position in constant
	// time. The protocol does not expose indexed movement; the level
	// exists so algorithms can pick cheaper strategies.
	CapRandomAccess
)

func (c Capability) String() string {
	switch c {
	case CapForward:
		return "forward"
	case CapBidirectional:
		return "bidirectional"
	case CapRandomAccess:
		return "random-access"
	default:
		return fmt.Sprintf("capability(%d)", uint8(c))
	}
}

// Iterator is a movable handle to a position in a container of T.
//
// Next and Get must not be called on the end position. Debug builds
// panic on such calls; release builds keep them memory-safe (Get
// returns nil) but the resulting position is unspecified.
type Iterator[T any] interface {
	// Capability reports the movement the iterator supports.
	Capability() Capability
	// Next moves the handle to the next position.
	Next()
	// Get returns a pointer to the element at the current position.
	// The pointer stays valid until the container mutates.
	Get() *T
	// Equal reports whether other denotes the same position in the
	// same container. Handles of different containers, or of
	// different iterator kinds, are never equal.
	Equal(other Iterator[T]) bool
	// Clone returns an independent handle at the same position.
	Clone() Iterator[T]
}

// Bidirectional is an Iterator that can also move backward.
//
// Prev on the end position moves to the last element, or stays at the
// end when the container is empty. Prev on the first element is
// container specific; see the container's documentation.
type Bidirectional[T any] interface {
	Iterator[T]
	Prev()
}

// Equal is a nil-tolerant form of Iterator.Equal. A nil handle is
// invalid and equals nothing, not even another nil handle.
func Equal[T any](a, b Iterator[T]) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Equal(b)
}

// Prev moves it one position backward. Retreating requires
// CapBidirectional; on a forward-only or nil handle the call panics in
// debug builds and is a no-op in release builds.
func Prev[T any](it Iterator[T]) {
	assertRetreatable("iterator.Prev", it)
	if it == nil || it.Capability() < CapBidirectional {
		return
	}
	if back, ok := it.(Bidirectional[T]); ok {
		back.Prev()
	}
}
