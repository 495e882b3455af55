package skiplist

import (
	"fmt"

	"github.com/bits-and-blooms/bloom/v3"
)

// keyFilter answers "definitely absent" for keys that were never inserted.
// Removed keys stay in the filter until Clear; a stale positive only costs a
// search.
type keyFilter[K any] struct {
	bits   *bloom.BloomFilter
	encode func(K) []byte
}

func newKeyFilter[K any](cfg *filterConfig) (*keyFilter[K], error) {
	if cfg == nil {
		return nil, nil
	}
	encode, ok := cfg.encode.(func(K) []byte)
	if !ok {
		return nil, fmt.Errorf("%w: encoder type %T does not match key type", ErrInvalidFilter, cfg.encode)
	}
	return &keyFilter[K]{
		bits:   bloom.NewWithEstimates(cfg.expected, cfg.fpRate),
		encode: encode,
	}, nil
}

func (f *keyFilter[K]) add(key K) {
	if f == nil {
		return
	}
	f.bits.Add(f.encode(key))
}

// mayContain reports false only when key was never added.
func (f *keyFilter[K]) mayContain(key K) bool {
	if f == nil {
		return true
	}
	return f.bits.Test(f.encode(key))
}

func (f *keyFilter[K]) reset() {
	if f == nil {
		return
	}
	f.bits.ClearAll()
}
