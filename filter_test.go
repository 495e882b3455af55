package skiplist

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeIntKey(k int) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(k))
}

func TestKeyFilter_SkipsNeverInsertedKeys(t *testing.T) {
	t.Parallel()
	m := newIntMap(t, WithKeyFilter(encodeIntKey, 1024, 0.01))

	for i := range 100 {
		m.Put(i, i)
	}
	for i := range 100 {
		require.True(t, m.Contains(i))
	}

	for i := 1000; i < 2000; i++ {
		require.False(t, m.Contains(i))
	}
	stats := m.Stats()
	assert.Equal(t, uint64(1000), stats.Misses)
	// At a 1% false positive rate nearly all of the probes are answered by
	// the filter.
	assert.Greater(t, stats.FilterSkips, uint64(900))
}

func TestKeyFilter_RemovedKeysStayCorrect(t *testing.T) {
	t.Parallel()
	m := newIntMap(t, WithKeyFilter(encodeIntKey, 64, 0.01))

	m.Put(7, 70)
	_, ok := m.Remove(7)
	require.True(t, ok)

	_, ok = m.Get(7)
	assert.False(t, ok)
	_, ok = m.Remove(7)
	assert.False(t, ok)

	m.Put(7, 71)
	v, ok := m.Get(7)
	require.True(t, ok)
	assert.Equal(t, 71, v)
}

func TestKeyFilter_ResetOnClear(t *testing.T) {
	t.Parallel()
	m := newIntMap(t, WithKeyFilter(encodeIntKey, 64, 0.001))
	for i := range 32 {
		m.Put(i, i)
	}
	m.Clear()

	for i := range 32 {
		require.False(t, m.Contains(i))
	}
	assert.Equal(t, uint64(32), m.Stats().FilterSkips)
}

func TestKeyFilter_NilFilterAlwaysMayContain(t *testing.T) {
	t.Parallel()
	var f *keyFilter[int]
	assert.True(t, f.mayContain(1))
	f.add(1)
	f.reset()
}
