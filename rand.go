package skiplist

import (
	"math/bits"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// LevelGenerator draws node heights from a truncated geometric distribution:
// P(level = k) = 2^-(k+1) for k below the ceiling, with the remaining mass
// assigned to the ceiling itself.
//
// A LevelGenerator is not safe for concurrent use. Map only calls it while
// holding its lock.
type LevelGenerator struct {
	state    uint64
	maxLevel int
}

// NewLevelGenerator returns a generator producing levels in [0, maxLevel].
// Two generators built from the same seed and ceiling produce identical
// sequences. A zero seed is replaced by a fixed non-zero default because
// xorshift never leaves the zero state.
func NewLevelGenerator(seed uint64, maxLevel int) *LevelGenerator {
	if seed == 0 {
		seed = defaultSeed
	}
	if maxLevel < 0 {
		maxLevel = 0
	}
	if maxLevel > MaxLevelLimit {
		maxLevel = MaxLevelLimit
	}
	return &LevelGenerator{state: seed, maxLevel: maxLevel}
}

// nextRandom64 advances the xorshift64* stream.
func (g *LevelGenerator) nextRandom64() uint64 {
	x := g.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	g.state = x
	return x * 2685821657736338717
}

// Next returns the level for a new node. Every bit of one 64-bit draw is a
// fair coin: the level climbs while the coins come up heads (1) and stops on
// the first tails or at the ceiling.
func (g *LevelGenerator) Next() int {
	if g.maxLevel == 0 {
		return 0
	}
	heads := bits.TrailingZeros64(^g.nextRandom64())
	if heads > g.maxLevel {
		return g.maxLevel
	}
	return heads
}

// MaxLevel reports the ceiling of the generated levels.
func (g *LevelGenerator) MaxLevel() int {
	return g.maxLevel
}
