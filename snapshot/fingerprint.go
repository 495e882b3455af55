package snapshot

import (
	"github.com/zeebo/xxh3"

	skiplist "github.com/metailurini/skiplist/v2"
)

// Fingerprint returns the XXH3 hash of the uncompressed snapshot text of m.
// Maps holding the same entries have the same fingerprint regardless of
// insertion order or node heights.
func Fingerprint[K, V any](m *skiplist.Map[K, V], keys Codec[K], values Codec[V]) (uint64, error) {
	h := xxh3.New()
	if _, err := Dump(h, m, keys, values); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
