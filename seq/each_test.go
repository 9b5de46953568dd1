package seq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dindin12138/toolkit/seq"
)

func TestForEachVisitsInOrder(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{1, 2, 3})
			var visited []int
			err := seq.ForEach(begin, end, func(x *int) error {
				visited = append(visited, *x)
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, []int{1, 2, 3}, visited)
		})
	}
}

func TestForEachMutatesInPlace(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{1, 2, 3})
			err := seq.ForEach(begin, end, func(x *int) error {
				*x *= 10
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, []int{10, 20, 30}, seq.Collect(begin, end))
		})
	}
}

func TestForEachBreak(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{1, 2, 3, 4})
			var visited int
			err := seq.ForEach(begin, end, func(x *int) error {
				visited++
				if *x == 2 {
					return seq.Break
				}
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, 2, visited)
		})
	}
}

func TestForEachWrappedBreak(t *testing.T) {
	begin, end := builders[0].build([]int{1, 2})
	err := seq.ForEach(begin, end, func(*int) error {
		return fmt.Errorf("unwinding: %w", seq.Break)
	})
	require.NoError(t, err)
}

func TestForEachPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{1, 2, 3})
			var visited int
			err := seq.ForEach(begin, end, func(x *int) error {
				visited++
				if *x == 2 {
					return boom
				}
				return nil
			})
			require.ErrorIs(t, err, boom)
			require.Equal(t, 2, visited)
		})
	}
}

func TestForEachNilHandles(t *testing.T) {
	begin, _ := builders[0].build([]int{1})
	err := seq.ForEach(begin, nil, func(*int) error { return nil })
	require.ErrorIs(t, err, seq.ErrInvalidArgument)
}
