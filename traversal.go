package skiplist

import "fmt"

// Walk calls fn for every entry in ascending key order while holding the
// map lock, stopping at the first error fn returns. fn must not call back
// into the map.
func (m *Map[K, V]) Walk(fn func(key K, value V) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for n := m.head.forward[0]; n != nil; n = n.forward[0] {
		if err := fn(n.key, n.value); err != nil {
			return err
		}
	}
	return nil
}

// Levels returns the keys linked at each level, from level 0 up to the
// current top level.
func (m *Map[K, V]) Levels() [][]K {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]K, m.level+1)
	for i := 0; i <= m.level; i++ {
		for n := m.head.forward[i]; n != nil; n = n.forward[i] {
			out[i] = append(out[i], n.key)
		}
	}
	return out
}

// Verify checks the structural invariants of the list: level contiguity,
// strictly increasing keys on every level, level-0 completeness, top-level
// consistency and the element count. The first violation is returned
// wrapped in ErrCorrupted.
func (m *Map[K, V]) Verify() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.head.forward) != m.maxLevel+1 {
		return fmt.Errorf("%w: header has %d links, want %d", ErrCorrupted, len(m.head.forward), m.maxLevel+1)
	}
	for i := m.level + 1; i <= m.maxLevel; i++ {
		if m.head.forward[i] != nil {
			return fmt.Errorf("%w: level %d populated above top level %d", ErrCorrupted, i, m.level)
		}
	}

	// below holds the nodes of the previous level; every node of level i
	// must also be linked at level i-1.
	var below map[*node[K, V]]struct{}
	highest := 0
	for i := 0; i <= m.level; i++ {
		seen := make(map[*node[K, V]]struct{})
		var prev *node[K, V]
		for n := m.head.forward[i]; n != nil; n = n.forward[i] {
			if n.level() < i {
				return fmt.Errorf("%w: node %v of level %d linked at level %d", ErrCorrupted, n.key, n.level(), i)
			}
			if below != nil {
				if _, ok := below[n]; !ok {
					return fmt.Errorf("%w: node %v at level %d missing from level %d", ErrCorrupted, n.key, i, i-1)
				}
			}
			if prev != nil && !m.less(prev.key, n.key) {
				return fmt.Errorf("%w: level %d out of order at %v -> %v", ErrCorrupted, i, prev.key, n.key)
			}
			if _, dup := seen[n]; dup {
				return fmt.Errorf("%w: cycle at level %d", ErrCorrupted, i)
			}
			seen[n] = struct{}{}
			highest = max(highest, n.level())
			prev = n
		}
		if i == 0 && len(seen) != m.length {
			return fmt.Errorf("%w: level 0 holds %d nodes, count is %d", ErrCorrupted, len(seen), m.length)
		}
		if i > 0 && len(seen) == 0 {
			return fmt.Errorf("%w: top level %d is empty", ErrCorrupted, m.level)
		}
		// A node of level l must be reachable at every level up to l.
		if below != nil {
			for n := range below {
				if _, ok := seen[n]; n.level() >= i && !ok {
					return fmt.Errorf("%w: node %v of level %d unlinked at level %d", ErrCorrupted, n.key, n.level(), i)
				}
			}
		}
		below = seen
	}

	if m.length > 0 && highest != m.level {
		return fmt.Errorf("%w: top level %d, highest node level %d", ErrCorrupted, m.level, highest)
	}
	if m.length == 0 && m.level != 0 {
		return fmt.Errorf("%w: empty list with top level %d", ErrCorrupted, m.level)
	}
	return nil
}
