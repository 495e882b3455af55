package skiplist

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// acquireNodeHook runs before a new node is taken from the pool. A hook
	// that panics stands in for an allocation failure.
	acquireNodeHook func(level int)
)
