// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

//go:build debug

package list

import (
	"fmt"

	"github.com/dindin12138/toolkit/iterator"
)

// Handle and link invariant checks, panicking on caller bugs.
// Only enabled with -tags debug.

func assertProtocol[T any](method string, it *Iter[T]) {
	if err := iterator.Validate[T](it); err != nil {
		panic(fmt.Sprintf("%s: %v", method, err))
	}
}

func assertDeref[T any](method string, it *Iter[T]) {
	if it.node == nil {
		panic(method + ": dereference of the end handle")
	}
}

func assertInterior[T any](method string, n *node[T]) {
	if n.prev == nil {
		panic(method + ": interior node without a predecessor")
	}
}
