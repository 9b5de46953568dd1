// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/dindin12138/toolkit/iterator"

// Any reports whether at least one element of [begin, end) satisfies
// pred.
func Any[T any](begin, end iterator.Iterator[T], pred func(T) bool) bool {
	found := FindIf(begin, end, pred)
	return found != nil && !found.Equal(end)
}

// All reports whether every element of [begin, end) satisfies pred.
// An empty range is vacuously true.
func All[T any](begin, end iterator.Iterator[T], pred func(T) bool) bool {
	if begin == nil || end == nil {
		return false
	}
	return !Any(begin, end, func(v T) bool { return !pred(v) })
}

// None reports whether no element of [begin, end) satisfies pred. An
// empty range is vacuously true.
func None[T any](begin, end iterator.Iterator[T], pred func(T) bool) bool {
	if begin == nil || end == nil {
		return false
	}
	return !Any(begin, end, pred)
}
