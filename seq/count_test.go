package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dindin12138/toolkit/seq"
)

func TestCount(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{1, 2, 3, 4, 5})
			require.Equal(t, 5, seq.Count(begin, end))
			require.Equal(t, 0, seq.Count(begin, begin))
			require.Equal(t, 0, seq.Count(end, end))
		})
	}
}

func TestCountEmpty(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build(nil)
			require.Equal(t, 0, seq.Count(begin, end))
		})
	}
}

func TestCountNil(t *testing.T) {
	begin, _ := builders[0].build([]int{1})
	require.Equal(t, 0, seq.Count[int](nil, nil))
	require.Equal(t, 0, seq.Count(begin, nil))
}

func TestCountIf(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{1, 2, 3, 4, 5, 6})
			require.Equal(t, 3, seq.CountIf(begin, end, even))
			require.Equal(t, 0, seq.CountIf(begin, end, func(v int) bool { return v > 99 }))
		})
	}
}

func TestAnyAllNone(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build([]int{2, 4, 6})
			require.True(t, seq.All(begin, end, even))
			require.True(t, seq.Any(begin, end, even))
			require.False(t, seq.None(begin, end, even))

			begin, end = b.build([]int{1, 2, 3})
			require.False(t, seq.All(begin, end, even))
			require.True(t, seq.Any(begin, end, even))
			require.False(t, seq.None(begin, end, even))

			begin, end = b.build([]int{1, 3, 5})
			require.False(t, seq.Any(begin, end, even))
			require.True(t, seq.None(begin, end, even))
		})
	}
}

func TestQuantifiersVacuousOnEmpty(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			begin, end := b.build(nil)
			pred := func(int) bool { return false }
			require.True(t, seq.All(begin, end, pred))
			require.True(t, seq.None(begin, end, pred))
			require.False(t, seq.Any(begin, end, pred))
		})
	}
}
