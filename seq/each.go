// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"errors"
	"fmt"

	"github.com/dindin12138/toolkit/iterator"
)

// ForEach applies fn to every element of [begin, end), front to back,
// stopping at the first error. Returning Break stops the walk and
// reports success. fn receives a pointer and may mutate the element in
// place.
func ForEach[T any](begin, end iterator.Iterator[T], fn func(*T) error) error {
	if begin == nil || end == nil {
		return fmt.Errorf("seq: %w: nil handle", ErrInvalidArgument)
	}
	for cur := begin.Clone(); !cur.Equal(end); cur.Next() {
		if err := fn(cur.Get()); err != nil {
			if errors.Is(err, Break) {
				return nil
			}
			return err
		}
	}
	return nil
}
