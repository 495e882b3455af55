package skiplist

// metrics holds operation counters. Every field is updated under the map
// lock, so plain integers suffice.
type metrics struct {
	inserts     uint64
	updates     uint64
	removes     uint64
	misses      uint64
	filterSkips uint64
}

func (mt *metrics) incInsert() { mt.inserts++ }

func (mt *metrics) incUpdate() { mt.updates++ }

func (mt *metrics) incRemove() { mt.removes++ }

// incMiss records a lookup of an absent key; filtered reports whether the
// key filter answered it.
func (mt *metrics) incMiss(filtered bool) {
	mt.misses++
	if filtered {
		mt.filterSkips++
	}
}

// Stats returns the map's current shape and counters.
func (m *Map[K, V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{
		Len:         m.length,
		Level:       m.level,
		MaxLevel:    m.maxLevel,
		Inserts:     m.metrics.inserts,
		Updates:     m.metrics.updates,
		Removes:     m.metrics.removes,
		Misses:      m.metrics.misses,
		FilterSkips: m.metrics.filterSkips,
	}
}
