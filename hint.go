package vector

// CapacityHint is a construction-time request for pre-allocated
// capacity. It is a pure value carrier consumed by WithCapacity.
type CapacityHint struct {
	capacity int
}

// Capacity returns the requested capacity.
func (h CapacityHint) Capacity() int {
	return h.capacity
}

// Reserve wraps n in a CapacityHint. Negative requests are treated as
// zero.
func Reserve(n int) CapacityHint {
	if n < 0 {
		n = 0
	}
	return CapacityHint{capacity: n}
}

// WithCapacity returns an empty vector whose backing block holds
// hint.Capacity() slots. Length stays zero.
func WithCapacity[T any](hint CapacityHint) *Vector[T] {
	v := New[T]()
	v.Reserve(hint.Capacity())
	return v
}
