package skiplist

// node holds a key/value pair and one forward link per level it occupies.
// A nil forward link marks the end of that level.
type node[K, V any] struct {
	key     K
	value   V
	forward []*node[K, V]
}

const (
	// DefaultMaxLevel is the highest level index used when no WithMaxLevel
	// option is given. Together with level 0 it yields 32 forward slots.
	DefaultMaxLevel = 31

	// MaxLevelLimit bounds the configurable ceiling; one 64-bit draw of the
	// level generator must be able to cover every coin flip.
	MaxLevelLimit = 63

	// P is the probability of a node being promoted to the next level.
	P = 1.0 / 2.0
)

func newNode[K, V any](key K, value V, level int) *node[K, V] {
	return &node[K, V]{
		key:     key,
		value:   value,
		forward: make([]*node[K, V], level+1),
	}
}

// newHeader creates the sentinel entry node spanning every level up to
// maxLevel. It holds zero key and value.
func newHeader[K, V any](maxLevel int) *node[K, V] {
	return &node[K, V]{forward: make([]*node[K, V], maxLevel+1)}
}

func (n *node[K, V]) level() int {
	return len(n.forward) - 1
}
