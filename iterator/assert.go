// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

//go:build debug

package iterator

import "fmt"

// assertRetreatable panics if it cannot legally move backward.
// Only enabled with -tags debug.
func assertRetreatable[T any](method string, it Iterator[T]) {
	if it == nil {
		panic(method + ": nil iterator")
	}
	if err := Validate(it); err != nil {
		panic(fmt.Sprintf("%s: %v", method, err))
	}
	if cap := it.Capability(); cap < CapBidirectional {
		panic(fmt.Sprintf("%s: %s iterator cannot retreat", method, cap))
	}
}
