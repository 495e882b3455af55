package skiplist

import (
	"fmt"
	"io"
	"log/slog"
)

type config struct {
	// maxLevel is the highest level index a node may occupy.
	maxLevel int

	// seed feeds the level generator; zero picks a time-based seed.
	seed uint64

	logger *slog.Logger

	filter *filterConfig
}

type filterConfig struct {
	expected uint
	fpRate   float64
	encode   any
}

// Option configures a Map.
type Option func(*config)

func defaultConfig() config {
	return config{
		maxLevel: DefaultMaxLevel,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (c config) validate() error {
	if c.maxLevel < 0 || c.maxLevel > MaxLevelLimit {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidMaxLevel, c.maxLevel, MaxLevelLimit)
	}
	if f := c.filter; f != nil {
		if f.expected == 0 || f.fpRate <= 0 || f.fpRate >= 1 || f.encode == nil {
			return fmt.Errorf("%w: expected=%d fpRate=%v", ErrInvalidFilter, f.expected, f.fpRate)
		}
	}
	return nil
}

// WithMaxLevel sets the highest level index a node may occupy. Levels are
// numbered from 0, so the header carries maxLevel+1 forward links.
func WithMaxLevel(maxLevel int) Option {
	return func(c *config) { c.maxLevel = maxLevel }
}

// WithSeed fixes the level generator seed so that node heights are
// reproducible across runs.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithLogger routes the map's diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithKeyFilter installs a bloom filter sized for expectedKeys entries at
// the given false positive rate. encode must map equal keys to equal bytes
// and have type func(K) []byte for the map's key type. Lookups of keys the
// filter has never seen return without searching the list.
func WithKeyFilter[K any](encode func(K) []byte, expectedKeys uint, fpRate float64) Option {
	return func(c *config) {
		f := &filterConfig{expected: expectedKeys, fpRate: fpRate}
		if encode != nil {
			f.encode = encode
		}
		c.filter = f
	}
}
