package snapshot

import (
	"strconv"
)

// Codec converts a key or value to and from its text form in a snapshot.
// Encoded text must not contain the ':' delimiter or a newline; Dump does
// not check this.
type Codec[T any] interface {
	Encode(v T) string
	Decode(s string) (T, error)
}

// Func adapts a pair of functions to a Codec.
func Func[T any](encode func(T) string, decode func(string) (T, error)) Codec[T] {
	return funcCodec[T]{encode: encode, decode: decode}
}

type funcCodec[T any] struct {
	encode func(T) string
	decode func(string) (T, error)
}

func (c funcCodec[T]) Encode(v T) string          { return c.encode(v) }
func (c funcCodec[T]) Decode(s string) (T, error) { return c.decode(s) }

// Built-in codecs for common key and value types.
var (
	Int = Func(strconv.Itoa, strconv.Atoi)

	Int64 = Func(
		func(v int64) string { return strconv.FormatInt(v, 10) },
		func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
	)

	Uint64 = Func(
		func(v uint64) string { return strconv.FormatUint(v, 10) },
		func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) },
	)

	Float64 = Func(
		func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
		func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	)

	String = Func(
		func(v string) string { return v },
		func(s string) (string, error) { return s, nil },
	)
)
