package arena

// SizeInUse returns the number of bytes carved from the arena since the last
// Reset, including alignment padding.
func (a *Arena) SizeInUse() int {
	if a.buf == nil {
		return 0
	}
	return int(a.offset)
}

// Capacity returns the size of the reserved region in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Available returns the bytes left before the end of the region, ignoring
// any padding a future allocation may need.
func (a *Arena) Available() int {
	return a.Capacity() - a.SizeInUse()
}

// HighWater returns the largest SizeInUse observed since the arena was
// created. Reset does not lower it, which makes it useful for sizing
// scratch arenas.
func (a *Arena) HighWater() int {
	if a.buf == nil {
		return 0
	}
	return int(a.peak)
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Available:   a.Available(),
		HighWater:   a.HighWater(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	Available   int     // Bytes left before the end of the region
	HighWater   int     // Peak bytes allocated
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
