// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/dindin12138/toolkit/iterator"

// Collect copies the elements of [begin, end) into a fresh slice,
// front to back. An empty or nil range yields a nil slice.
func Collect[T any](begin, end iterator.Iterator[T]) []T {
	if begin == nil || end == nil {
		return nil
	}
	var out []T
	for cur := begin.Clone(); !cur.Equal(end); cur.Next() {
		out = append(out, *cur.Get())
	}
	return out
}
