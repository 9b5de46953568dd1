package vec

import (
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	var v Vec[int]
	for _, x := range []int{1, 2, 3} {
		v.PushBack(x)
	}
	// Through the standard encoder, which picks up MarshalJSON.
	data, err := stdjson.Marshal(&v)
	require.NoError(t, err)
	require.JSONEq(t, "[1,2,3]", string(data))

	var back Vec[int]
	require.NoError(t, stdjson.Unmarshal(data, &back))
	require.Equal(t, 3, back.Len())
	for i, want := range []int{1, 2, 3} {
		got, ok := back.At(i)
		require.True(t, ok)
		require.Equal(t, want, *got)
	}
}

func TestJSONEmpty(t *testing.T) {
	var v Vec[string]
	data, err := stdjson.Marshal(&v)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestJSONDecodeError(t *testing.T) {
	var v Vec[int]
	v.PushBack(7)
	err := v.UnmarshalJSON([]byte(`{"not": "an array"}`))
	require.ErrorIs(t, err, ErrInvalidArgument)
	// The array is untouched after a failed decode.
	require.Equal(t, 1, v.Len())
	got, ok := v.At(0)
	require.True(t, ok)
	require.Equal(t, 7, *got)
}
