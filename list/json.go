// Copyright 2026 dindin12138
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the list as a JSON array of its elements, front
// to back. An empty list encodes as [].
func (l *List[T]) MarshalJSON() ([]byte, error) {
	elems := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		elems = append(elems, n.elem)
	}
	return json.Marshal(elems)
}

// UnmarshalJSON decodes a JSON array, replacing the current elements.
// On a decode error the list is left untouched.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("list: %w: %w", ErrInvalidArgument, err)
	}
	l.Clear()
	for _, x := range elems {
		l.PushBack(x)
	}
	return nil
}
