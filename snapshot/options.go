package snapshot

import (
	"io"
	"log/slog"

	"github.com/metailurini/skiplist/v2/internal/compression"
)

// Compression selects the stream variant DumpFile writes. LoadFile detects
// the variant on its own.
type Compression = compression.Type

// Compression variants.
const (
	None   Compression = compression.NoCompression
	Snappy Compression = compression.SnappyCompression
	LZ4    Compression = compression.LZ4Compression
	Zstd   Compression = compression.ZstdCompression
)

// ParseCompression maps "none", "snappy", "lz4" or "zstd" to a Compression.
func ParseCompression(name string) (Compression, error) {
	return compression.ParseType(name)
}

type config struct {
	logger      *slog.Logger
	compression Compression
}

// Option configures Load, DumpFile and LoadFile.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger reports skipped records and file activity to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCompression makes DumpFile wrap the text stream in the given
// compression variant.
func WithCompression(ct Compression) Option {
	return func(c *config) { c.compression = ct }
}
