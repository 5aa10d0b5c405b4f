package alloc

// Stats aggregates allocation accounting for one allocator.
type Stats struct {
	Allocs    int64 // successful Alloc calls returning a non-nil block
	Reallocs  int64 // successful Realloc calls
	Frees     int64 // Free calls on non-nil blocks
	LiveSlots int64 // slots currently handed out
	PeakSlots int64 // highest LiveSlots observed
}

// counters is embedded by allocators to track Stats.
type counters struct {
	stats Stats
}

func (c *counters) onAlloc(n int) {
	if n == 0 {
		return
	}
	c.stats.Allocs++
	c.adjust(int64(n))
}

func (c *counters) onRealloc(oldLen, n int) {
	c.stats.Reallocs++
	c.adjust(int64(n - oldLen))
}

func (c *counters) onFree(n int) {
	if n == 0 {
		return
	}
	c.stats.Frees++
	c.adjust(-int64(n))
}

func (c *counters) adjust(delta int64) {
	c.stats.LiveSlots += delta
	if c.stats.LiveSlots > c.stats.PeakSlots {
		c.stats.PeakSlots = c.stats.LiveSlots
	}
}

// Stats returns a snapshot of the allocator's counters.
func (c *counters) Stats() Stats {
	return c.stats
}
