package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dindin12138/toolkit/seq"
)

func TestFindIfFirstMatch(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{10, 20, 30, 40, 50})
			found := seq.FindIf(begin, end, func(v int) bool { return v < 15 })
			require.True(t, found.Equal(begin))
			require.Equal(t, 10, *found.Get())
		})
	}
}

func TestFindIfNoMatchReturnsEnd(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{10, 20, 30, 40, 50})
			found := seq.FindIf(begin, end, func(v int) bool { return v == 99 })
			require.True(t, found.Equal(end))
		})
	}
}

func TestFindIfMiddle(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{10, 20, 30, 40, 50})
			found := seq.FindIf(begin, end, func(v int) bool { return v > 25 })
			require.Equal(t, 30, *found.Get())
		})
	}
}

func TestFindIfEmptyRange(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build(nil)
			found := seq.FindIf(begin, end, func(int) bool { return true })
			require.True(t, found.Equal(end))
			require.True(t, found.Equal(begin))
		})
	}
}

func TestFindIfLeavesCallerHandlesAlone(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{10, 20, 30})
			_ = seq.FindIf(begin, end, func(v int) bool { return v == 30 })
			require.Equal(t, 10, *begin.Get())
			require.Equal(t, 3, seq.Count(begin, end))
		})
	}
}

func TestFindIfNilHandles(t *testing.T) {
	begin, end := builders[0].build([]int{1})
	require.Nil(t, seq.FindIf(nil, end, func(int) bool { return true }))
	require.Nil(t, seq.FindIf(begin, nil, func(int) bool { return true }))
}

func TestFindEquality(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{10, 20, 30})
			found := seq.Find(begin, end, 20)
			require.Equal(t, 20, *found.Get())
			require.True(t, seq.Find(begin, end, 99).Equal(end))
		})
	}
}
