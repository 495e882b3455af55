package snapshot

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strconvSyntax = strconv.ErrSyntax

func TestBuiltinCodecs(t *testing.T) {
	s := Int.Encode(-42)
	assert.Equal(t, "-42", s)
	i, err := Int.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, -42, i)

	u, err := Uint64.Decode(Uint64.Encode(1 << 63))
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63), u)

	i64, err := Int64.Decode("-9223372036854775808")
	require.NoError(t, err)
	assert.Equal(t, int64(-9223372036854775808), i64)

	f, err := Float64.Decode(Float64.Encode(0.1))
	require.NoError(t, err)
	assert.Equal(t, 0.1, f)

	str, err := String.Decode(String.Encode("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", str)

	_, err = Int.Decode("ten")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestFuncCodec(t *testing.T) {
	type celsius float64
	c := Func(
		func(v celsius) string { return strconv.FormatFloat(float64(v), 'f', 1, 64) + "C" },
		func(s string) (celsius, error) {
			f, err := strconv.ParseFloat(s[:len(s)-1], 64)
			return celsius(f), err
		},
	)
	got, err := c.Decode(c.Encode(21.5))
	require.NoError(t, err)
	assert.Equal(t, celsius(21.5), got)
}
