// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"

	"github.com/dindin12138/toolkit/iterator"
)

// Advance returns a clone of it moved n positions, with negative n
// moving backward. The original handle never moves. Moving backward
// requires CapBidirectional; asking it of a forward-only handle is
// ErrInvalidArgument. Crossing either end of the container is the same
// contract violation as with Next and Prev.
func Advance[T any](it iterator.Iterator[T], n int) (iterator.Iterator[T], error) {
	if it == nil {
		return nil, fmt.Errorf("seq: %w: nil handle", ErrInvalidArgument)
	}
	cur := it.Clone()
	if n >= 0 {
		for ; n > 0; n-- {
			cur.Next()
		}
		return cur, nil
	}
	back, ok := cur.(iterator.Bidirectional[T])
	if !ok || cur.Capability() < iterator.CapBidirectional {
		return nil, fmt.Errorf("seq: %w: negative advance on a %s iterator", ErrInvalidArgument, cur.Capability())
	}
	for ; n < 0; n++ {
		back.Prev()
	}
	return cur, nil
}
