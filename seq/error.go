// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/dindin12138/toolkit"

type constError string

func (e constError) Error() string { return string(e) }

// Break, returned from a ForEach callback, stops the walk early
// without reporting a failure.
const Break constError = "seq: break"

var (
	ErrNotFound        = toolkit.ErrNotFound
	ErrInvalidArgument = toolkit.ErrInvalidArgument
)
