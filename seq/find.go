// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

// Package seq implements container-independent algorithms expressed
// purely over the iterator protocol. One algorithm serves every
// container, including third-party types that speak the protocol.
//
// All algorithms operate on the half-open range [begin, end), where
// both handles come from the same container. They clone the handles
// they are given, never move the caller's handles and never mutate the
// container itself.
package seq

import "github.com/dindin12138/toolkit/iterator"

// FindIf returns a handle on the first element of [begin, end) that
// satisfies pred, or a clone of end when no element does. A nil handle
// yields nil.
func FindIf[T any](begin, end iterator.Iterator[T], pred func(T) bool) iterator.Iterator[T] {
	if begin == nil || end == nil {
		return nil
	}
	for cur := begin.Clone(); !cur.Equal(end); cur.Next() {
		if pred(*cur.Get()) {
			return cur
		}
	}
	return end.Clone()
}

// Find is FindIf with an equality predicate.
func Find[T comparable](begin, end iterator.Iterator[T], target T) iterator.Iterator[T] {
	return FindIf(begin, end, func(v T) bool { return v == target })
}
