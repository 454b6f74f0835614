package vector

// Utilization returns the ratio of live elements to capacity (0.0 to
// 1.0). Returns 0.0 when the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Stats returns a snapshot of the vector's storage counters.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:         v.size,
		Cap:         v.Cap(),
		Slack:       v.Cap() - v.size,
		Utilization: v.Utilization(),
	}
}

// Stats contains statistical information about a vector's storage.
type Stats struct {
	Len         int     // Live elements
	Cap         int     // Slots in the backing block
	Slack       int     // Unused slots (Cap - Len)
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}
