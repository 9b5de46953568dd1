// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package vec

import "github.com/dindin12138/toolkit"

var (
	ErrNoMemory        = toolkit.ErrNoMemory
	ErrInvalidArgument = toolkit.ErrInvalidArgument
	ErrOutOfBounds     = toolkit.ErrOutOfBounds
)
