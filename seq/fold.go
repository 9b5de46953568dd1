// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"

	"github.com/dindin12138/toolkit/iterator"
)

// Reduce folds [begin, end) front to back, threading the accumulator
// through fn starting from initial. Nil handles yield initial.
func Reduce[T, R any](begin, end iterator.Iterator[T], initial R, fn func(R, T) R) R {
	acc := initial
	if begin == nil || end == nil {
		return acc
	}
	for cur := begin.Clone(); !cur.Equal(end); cur.Next() {
		acc = fn(acc, *cur.Get())
	}
	return acc
}

// First returns the first element of [begin, end). An empty range is
// ErrNotFound.
func First[T any](begin, end iterator.Iterator[T]) (T, error) {
	var zero T
	if begin == nil || end == nil {
		return zero, fmt.Errorf("seq: %w: nil handle", ErrInvalidArgument)
	}
	if begin.Equal(end) {
		return zero, fmt.Errorf("seq: %w: empty range", ErrNotFound)
	}
	return *begin.Get(), nil
}

// Last returns the last element of [begin, end). An empty range is
// ErrNotFound. Bidirectional handles pay a single retreat from end;
// forward-only handles pay a full scan.
func Last[T any](begin, end iterator.Iterator[T]) (T, error) {
	var zero T
	if begin == nil || end == nil {
		return zero, fmt.Errorf("seq: %w: nil handle", ErrInvalidArgument)
	}
	if begin.Equal(end) {
		return zero, fmt.Errorf("seq: %w: empty range", ErrNotFound)
	}
	if end.Capability() >= iterator.CapBidirectional {
		if back, ok := end.Clone().(iterator.Bidirectional[T]); ok {
			back.Prev()
			return *back.Get(), nil
		}
	}
	cur := begin.Clone()
	for {
		probe := cur.Clone()
		probe.Next()
		if probe.Equal(end) {
			return *cur.Get(), nil
		}
		cur = probe
	}
}
