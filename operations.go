package skiplist

// The functions in this file expect m.mu to be held.

// search walks from the header down to level 0, recording in m.preds the
// last node at each level whose key is strictly less than key. The walk
// carries the current node from one level to the next, it never restarts at
// the header. It returns the level-0 successor of the trail when that node
// holds key, nil otherwise.
func (m *Map[K, V]) search(key K) *node[K, V] {
	x := m.head
	for i := m.level; i >= 0; i-- {
		for next := x.forward[i]; next != nil && m.less(next.key, key); next = x.forward[i] {
			x = next
		}
		m.preds[i] = x
	}

	// candidate >= key holds here, so !less(key, candidate) means equal.
	if candidate := x.forward[0]; candidate != nil && !m.less(key, candidate.key) {
		return candidate
	}
	return nil
}

// lookup is search guarded by the key filter. It updates the miss counters.
func (m *Map[K, V]) lookup(key K) *node[K, V] {
	if !m.filter.mayContain(key) {
		m.metrics.incMiss(true)
		return nil
	}
	n := m.search(key)
	if n == nil {
		m.metrics.incMiss(false)
	}
	return n
}

// insert splices a new node for key after the trail left by a failed
// search. The node is allocated before any link changes so that a failure
// while allocating leaves the list untouched.
func (m *Map[K, V]) insert(key K, value V) {
	level := m.levels.Next()
	n := m.acquireNode(key, value, level)
	m.filter.add(key)

	if level > m.level {
		for i := m.level + 1; i <= level; i++ {
			m.preds[i] = m.head
		}
		m.level = level
	}

	for i := 0; i <= level; i++ {
		n.forward[i] = m.preds[i].forward[i]
		m.preds[i].forward[i] = n
	}

	m.length++
	m.metrics.incInsert()
}

// unlink removes victim from every level whose predecessor points at it,
// then lowers the top level past levels left empty.
func (m *Map[K, V]) unlink(victim *node[K, V]) {
	for i := 0; i <= m.level; i++ {
		if m.preds[i].forward[i] != victim {
			continue
		}
		m.preds[i].forward[i] = victim.forward[i]
	}

	for m.level > 0 && m.head.forward[m.level] == nil {
		m.level--
	}
	m.length--
}
