// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/dindin12138/toolkit/iterator"

// Count returns the number of positions in [begin, end). Nil handles
// count as an empty range.
func Count[T any](begin, end iterator.Iterator[T]) int {
	if begin == nil || end == nil {
		return 0
	}
	n := 0
	for cur := begin.Clone(); !cur.Equal(end); cur.Next() {
		n++
	}
	return n
}

// CountIf returns how many elements of [begin, end) satisfy pred.
func CountIf[T any](begin, end iterator.Iterator[T], pred func(T) bool) int {
	if begin == nil || end == nil {
		return 0
	}
	n := 0
	for cur := begin.Clone(); !cur.Equal(end); cur.Next() {
		if pred(*cur.Get()) {
			n++
		}
	}
	return n
}
