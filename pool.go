package skiplist

// acquireNode returns a node sized for level, reusing a released node when
// one with enough forward capacity is available.
func (m *Map[K, V]) acquireNode(key K, value V, level int) *node[K, V] {
	if acquireNodeHook != nil {
		acquireNodeHook(level)
	}

	n := m.nodePool.Get().(*node[K, V])
	if cap(n.forward) < level+1 {
		n.forward = make([]*node[K, V], level+1)
	} else {
		n.forward = n.forward[:level+1]
	}

	n.key = key
	n.value = value
	return n
}

// releaseNode zeroes n and hands it back to the pool. Only n's own link
// slice is cleared; nodes reachable through it are untouched.
func (m *Map[K, V]) releaseNode(n *node[K, V]) {
	if n == nil || n == m.head {
		return
	}

	var zeroK K
	var zeroV V
	n.key = zeroK
	n.value = zeroV
	clear(n.forward[:cap(n.forward)])

	m.nodePool.Put(n)
}
