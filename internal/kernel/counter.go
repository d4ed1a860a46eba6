package kernel

// idCounter allocates monotonic entity identifiers.
//
// Identifiers are strictly increasing and never reused after removal, so
// a stale external handle always fails lookup instead of aliasing a new
// entity. The kernel is single-writer, so a plain int64 suffices.
type idCounter struct {
	last int64
}

// next returns the next identifier and advances the counter.
func (c *idCounter) next() int64 {
	c.last++
	return c.last
}

// current returns the most recently issued identifier without advancing.
func (c *idCounter) current() int64 {
	return c.last
}
