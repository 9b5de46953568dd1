// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

//go:build debug

package vec

import (
	"fmt"

	"github.com/dindin12138/toolkit/iterator"
)

// Handle contract checks, panicking on caller bugs.
// Only enabled with -tags debug.

func assertProtocol[T any](method string, it *Iter[T]) {
	if err := iterator.Validate[T](it); err != nil {
		panic(fmt.Sprintf("%s: %v", method, err))
	}
}

func assertAdvance[T any](method string, it *Iter[T]) {
	if it.index >= len(it.vec.data) {
		panic(method + ": advance past the end")
	}
}

func assertDeref[T any](method string, it *Iter[T]) {
	if it.index >= len(it.vec.data) {
		panic(method + ": dereference of the end handle")
	}
}

func assertRetreat[T any](method string, it *Iter[T]) {
	if it.index == 0 && len(it.vec.data) > 0 {
		panic(method + ": retreat before the first element")
	}
}
