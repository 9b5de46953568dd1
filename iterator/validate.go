// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package iterator

import "fmt"

// Validate checks that an iterator's declared capability agrees with
// its method set: Prev must be present exactly when the capability is
// CapBidirectional or above. A mismatch is a defect in the iterator
// implementation, reported as ErrInvalidArgument. Containers run this
// check on every handle they issue in debug builds.
func Validate[T any](it Iterator[T]) error {
	if it == nil {
		return fmt.Errorf("iterator: %w: nil iterator", ErrInvalidArgument)
	}
	c := it.Capability()
	if c > CapRandomAccess {
		return fmt.Errorf("iterator: %w: unknown capability %d", ErrInvalidArgument, uint8(c))
	}
	_, retreatable := it.(Bidirectional[T])
	if c >= CapBidirectional && !retreatable {
		return fmt.Errorf("iterator: %w: %s iterator without a Prev method", ErrInvalidArgument, c)
	}
	if c < CapBidirectional && retreatable {
		return fmt.Errorf("iterator: %w: %s iterator with a Prev method", ErrInvalidArgument, c)
	}
	return nil
}
