// Package compression wraps snapshot streams in an optional compression
// layer. Compressed streams are recognised on read by their magic number, so
// a reader never needs to be told which variant a file uses.
package compression

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type represents a compression algorithm.
type Type uint8

const (
	// NoCompression writes the stream as is.
	NoCompression Type = 0x0

	// SnappyCompression uses the Snappy framing format.
	SnappyCompression Type = 0x1

	// LZ4Compression uses the LZ4 frame format.
	LZ4Compression Type = 0x4

	// ZstdCompression uses Zstandard frames.
	ZstdCompression Type = 0x7
)

// ErrUnsupported is returned for compression types this package cannot
// produce.
var ErrUnsupported = errors.New("compression: unsupported type")

// Magic numbers at the start of each framed format.
var (
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
	lz4Magic    = []byte{0x04, 0x22, 0x4d, 0x18}
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// String returns the human-readable name of the compression type.
func (t Type) String() string {
	switch t {
	case NoCompression:
		return "none"
	case SnappyCompression:
		return "snappy"
	case LZ4Compression:
		return "lz4"
	case ZstdCompression:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseType maps a name accepted by String back to its Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoCompression, nil
	case "snappy":
		return SnappyCompression, nil
	case "lz4":
		return LZ4Compression, nil
	case "zstd":
		return ZstdCompression, nil
	default:
		return NoCompression, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}

// NewWriter returns a writer that compresses into w. Close flushes the
// compressor but does not close w.
func NewWriter(t Type, w io.Writer) (io.WriteCloser, error) {
	switch t {
	case NoCompression:
		return nopCloser{w}, nil
	case SnappyCompression:
		return snappy.NewBufferedWriter(w), nil
	case LZ4Compression:
		return lz4.NewWriter(w), nil
	case ZstdCompression:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd encoder: %w", err)
		}
		return enc, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
}

// NewReader sniffs the first bytes of r and returns a reader producing the
// decompressed stream together with the detected type. Input without a known
// magic number is returned unchanged as NoCompression.
func NewReader(r io.Reader) (io.ReadCloser, Type, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(snappyMagic))
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, NoCompression, fmt.Errorf("peek stream header: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, snappyMagic):
		return io.NopCloser(snappy.NewReader(br)), SnappyCompression, nil
	case bytes.HasPrefix(head, lz4Magic):
		return io.NopCloser(lz4.NewReader(br)), LZ4Compression, nil
	case bytes.HasPrefix(head, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, ZstdCompression, fmt.Errorf("zstd decoder: %w", err)
		}
		return dec.IOReadCloser(), ZstdCompression, nil
	default:
		return io.NopCloser(br), NoCompression, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
