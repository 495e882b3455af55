package skiplist

import "iter"

// All returns an iterator over every entry in ascending key order. The
// entries are copied under the lock when iteration starts, so the loop body
// may freely call back into the map and later mutations are not observed.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		keys, values := m.entries()
		for i := range keys {
			if !yield(keys[i], values[i]) {
				return
			}
		}
	}
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys, _ := m.entries()
	return keys
}

func (m *Map[K, V]) entries() ([]K, []V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]K, 0, m.length)
	values := make([]V, 0, m.length)
	for n := m.head.forward[0]; n != nil; n = n.forward[0] {
		keys = append(keys, n.key)
		values = append(values, n.value)
	}
	return keys, values
}
