// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package list

import "github.com/dindin12138/toolkit"

var (
	ErrInvalidArgument = toolkit.ErrInvalidArgument
	ErrEmpty           = toolkit.ErrEmpty
)
