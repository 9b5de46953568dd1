// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package vec

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the array as a JSON array of its elements, front
// to back. An empty array encodes as [].
func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	if len(v.data) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.data)
}

// UnmarshalJSON decodes a JSON array, replacing the current elements.
// On a decode error the array is left untouched.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("vec: %w: %w", ErrInvalidArgument, err)
	}
	v.data = elems
	return nil
}
