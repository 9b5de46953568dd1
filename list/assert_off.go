// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

//go:build !debug

package list

// Handle and link invariant checks are no-ops in production.
// Enable them with -tags debug.

func assertProtocol[T any](string, *Iter[T]) {}

func assertDeref[T any](string, *Iter[T]) {}

func assertInterior[T any](string, *node[T]) {}
