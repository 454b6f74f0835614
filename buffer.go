package vector

// buffer is a single-owner fixed block of elements. It has no growth
// logic of its own: Vector allocates replacement buffers and swaps them
// in. All slots hold the element type's zero value until written.
type buffer[T any] struct {
	data []T
}

// newBuffer allocates a buffer of n zero-valued slots.
// n <= 0 yields an empty buffer.
func newBuffer[T any](n int) buffer[T] {
	if n <= 0 {
		return buffer[T]{}
	}
	return buffer[T]{data: make([]T, n)}
}

// len returns the number of slots in the block.
func (b *buffer[T]) len() int {
	return len(b.data)
}

// at returns a pointer to slot i. Bounds are the caller's contract.
func (b *buffer[T]) at(i int) *T {
	return &b.data[i]
}

// raw exposes the whole block.
func (b *buffer[T]) raw() []T {
	return b.data
}

// swap exchanges block ownership with other in place.
func (b *buffer[T]) swap(other *buffer[T]) {
	b.data, other.data = other.data, b.data
}
