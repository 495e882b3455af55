// Package skiplist provides an ordered in-memory key/value map built on a
// probabilistic skip list, suitable as a memtable-style building block.
//
// Every operation, reads included, runs under a single mutex owned by the
// map. Callers never receive references to internal nodes: keys and values
// are returned by copy.
package skiplist

import (
	"cmp"
	"log/slog"
	"sync"
)

// Map is a sorted key/value map backed by a skip list. The zero value is not
// usable; construct one with New or NewOrdered.
type Map[K, V any] struct {
	mu sync.Mutex

	less     Less[K]
	head     *node[K, V]
	maxLevel int
	// level is the highest level holding at least one node, 0 when empty.
	level  int
	length int

	// preds is the predecessor trail filled by search. It is sized for
	// maxLevel so that an insert may raise the top level.
	preds []*node[K, V]

	levels   *LevelGenerator
	filter   *keyFilter[K]
	nodePool sync.Pool
	metrics  metrics
	logger   *slog.Logger
}

// New returns an empty map ordered by less.
func New[K, V any](less Less[K], opts ...Option) (*Map[K, V], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	filter, err := newKeyFilter[K](cfg.filter)
	if err != nil {
		return nil, err
	}

	seed := cfg.seed
	if seed == 0 {
		seed = newRandomSeed()
	}

	m := &Map[K, V]{
		less:     less,
		head:     newHeader[K, V](cfg.maxLevel),
		maxLevel: cfg.maxLevel,
		preds:    make([]*node[K, V], cfg.maxLevel+1),
		levels:   NewLevelGenerator(seed, cfg.maxLevel),
		filter:   filter,
		logger:   cfg.logger,
	}
	m.nodePool.New = func() any { return new(node[K, V]) }
	return m, nil
}

// NewOrdered returns an empty map ordered by the natural order of K.
func NewOrdered[K cmp.Ordered, V any](opts ...Option) (*Map[K, V], error) {
	return New[K, V](OrderedLess[K](), opts...)
}

// Put inserts or updates the value for key.
// It returns the previous value and true if an existing entry was updated,
// or the zero value and false if a new entry was inserted.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if found := m.search(key); found != nil {
		old := found.value
		found.value = value
		m.metrics.incUpdate()
		return old, true
	}

	m.insert(key, value)
	var zero V
	return zero, false
}

// Get returns the value for a key.
// The boolean is true if the key exists, false otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n := m.lookup(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains returns true if the key exists in the map.
func (m *Map[K, V]) Contains(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lookup(key) != nil
}

// Remove deletes key from the map.
// It returns the removed value and true, or the zero value and false when
// the key was not present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	victim := m.lookup(key)
	if victim == nil {
		var zero V
		return zero, false
	}

	old := victim.value
	m.unlink(victim)
	m.releaseNode(victim)
	m.metrics.incRemove()
	return old, true
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.length
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Level returns the highest level currently holding a node.
func (m *Map[K, V]) Level() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

// MaxLevel returns the configured level ceiling.
func (m *Map[K, V]) MaxLevel() int {
	return m.maxLevel
}

// Clear removes every entry. Nodes are released one by one along level 0,
// so teardown cost does not depend on recursion depth.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	released := 0
	for n := m.head.forward[0]; n != nil; {
		next := n.forward[0]
		m.releaseNode(n)
		n = next
		released++
	}

	clear(m.head.forward)
	clear(m.preds)
	m.level = 0
	m.length = 0
	m.filter.reset()

	m.logger.Debug("skiplist cleared", slog.Int("released", released))
}
