// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

//go:build !debug

package iterator

// assertRetreatable is a no-op in production.
// Enable the check with -tags debug.
func assertRetreatable[T any](string, Iterator[T]) {}
