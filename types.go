package skiplist

import (
	"cmp"
	"errors"
)

// Less reports whether a sorts strictly before b. It must define a strict
// total order over K.
type Less[K any] func(a, b K) bool

// OrderedLess returns the natural ordering of an ordered key type.
func OrderedLess[K cmp.Ordered]() Less[K] {
	return cmp.Less[K]
}

// Errors
var (
	// ErrInvalidMaxLevel is returned when the configured level ceiling is
	// outside [0, MaxLevelLimit].
	ErrInvalidMaxLevel = errors.New("skiplist: max level out of range")
	// ErrNilLess is returned when New is called without an ordering.
	ErrNilLess = errors.New("skiplist: nil less function")
	// ErrInvalidFilter is returned when WithKeyFilter receives unusable
	// parameters.
	ErrInvalidFilter = errors.New("skiplist: invalid key filter configuration")
	// ErrCorrupted is wrapped by every structural violation Verify reports.
	ErrCorrupted = errors.New("skiplist: structure corrupted")
)

// Stats is a point-in-time view of a map's shape and operation counters.
type Stats struct {
	Len      int
	Level    int
	MaxLevel int

	Inserts uint64
	Updates uint64
	Removes uint64
	// Misses counts Get, Contains and Remove calls on absent keys.
	Misses uint64
	// FilterSkips counts misses answered by the key filter without a search.
	FilterSkips uint64
}
