package avl

// Counter tallies key comparisons (and comparison-like branch checks) performed by tree operations, for complexity analysis.
//
// A nil *Counter is valid and counts nothing. Counters are not safe for concurrent use.
type Counter struct {
	n int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) add(n int64) {
	if c != nil {
		c.n += n
	}
}

// Zeroes the counter. Call this before a measured operation.
func (c *Counter) Reset() {
	if c != nil {
		c.n = 0
	}
}

func (c *Counter) Count() int64 {
	if c == nil {
		return 0
	}
	return c.n
}
