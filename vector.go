package vector

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is reported by At when the index is not a live index.
var ErrOutOfRange = errors.New("vector: index out of range")

// Vector is a resizable contiguous sequence of T. It owns a single
// backing block; the capacity is the block's slot count and the length
// counts the live prefix. The zero value is an empty vector ready for
// use. Not goroutine-safe.
type Vector[T any] struct {
	items buffer[T]
	size  int
}

// New returns an empty vector with zero capacity.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n zero-valued elements.
// Length and capacity both equal n; n <= 0 yields an empty vector.
func NewSized[T any](n int) *Vector[T] {
	if n < 0 {
		n = 0
	}
	return &Vector[T]{items: newBuffer[T](n), size: n}
}

// NewFilled returns a vector of n elements, each a copy of value.
// Length and capacity both equal n; n <= 0 yields an empty vector.
func NewFilled[T any](n int, value T) *Vector[T] {
	if n < 0 {
		n = 0
	}
	v := &Vector[T]{items: newBuffer[T](n), size: n}
	for i := 0; i < n; i++ {
		*v.items.at(i) = value
	}
	return v
}

// Of returns a vector holding the given values in order.
// Length and capacity both equal len(values).
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{items: newBuffer[T](len(values)), size: len(values)}
	copy(v.items.raw(), values)
	return v
}

// Move transfers src's storage into a new vector without copying
// elements. src remains valid and empty afterwards, backed by a
// scratch block sized to its old length.
func Move[T any](src *Vector[T]) *Vector[T] {
	dst := &Vector[T]{items: newBuffer[T](src.size)}
	dst.Swap(src)
	return dst
}

// Clone returns a deep copy of v. The copy's capacity matches the
// source's capacity, not merely its length.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{items: newBuffer[T](v.Cap()), size: v.size}
	copy(c.items.raw(), v.items.raw()[:v.size])
	return c
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the slot count of the backing block.
func (v *Vector[T]) Cap() int {
	return v.items.len()
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i. The index must be below Len;
// the bound is asserted only in debug builds.
func (v *Vector[T]) Get(i int) T {
	assertIndex(i, v.size)
	return *v.items.at(i)
}

// Set stores value at index i. Same contract as Get.
func (v *Vector[T]) Set(i int, value T) {
	assertIndex(i, v.size)
	*v.items.at(i) = value
}

// At returns a pointer to the element at index i, usable for mutation
// in place. It is the checked counterpart of Get and Set: an index
// outside the live range yields an error wrapping ErrOutOfRange.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.size)
	}
	return v.items.at(i), nil
}

// Clear drops all live elements. Capacity is unchanged; slots keep
// their old values until overwritten by later growth.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize changes the length to n. Growing past the capacity swaps in
// a block of max(n, 2*Cap()) slots; growing within capacity
// zero-fills the newly exposed range; shrinking only lowers the
// length. Negative n is treated as zero.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n > v.Cap():
		nb := newBuffer[T](max(n, 2*v.Cap()))
		copy(nb.raw(), v.items.raw()[:v.size])
		v.items.swap(&nb)
		v.size = n
	case n > v.size:
		clear(v.items.raw()[v.size:n])
		v.size = n
	default:
		v.size = n
	}
}

// PushBack appends value, doubling the capacity when the vector is
// full. Amortized O(1).
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.Cap() {
		v.Resize(v.size + 1)
		*v.items.at(v.size - 1) = value
		return
	}
	*v.items.at(v.size) = value
	v.size++
}

// Insert places value at index i, shifting the suffix one slot right.
// i may equal Len (the append position); the bound is asserted only in
// debug builds. When the vector is full the capacity doubles as in
// PushBack. Returns the index of the inserted element.
func (v *Vector[T]) Insert(i int, value T) int {
	assertPosition(i, v.size)
	if v.size == v.Cap() {
		v.Resize(v.size + 1)
		copy(v.items.raw()[i+1:v.size], v.items.raw()[i:v.size-1])
		*v.items.at(i) = value
		return i
	}
	copy(v.items.raw()[i+1:v.size+1], v.items.raw()[i:v.size])
	*v.items.at(i) = value
	v.size++
	return i
}

// PopBack removes the last element. The vector must not be empty; the
// contract is asserted only in debug builds.
func (v *Vector[T]) PopBack() {
	assertNotEmpty(v.size)
	v.size--
}

// Erase removes the element at index i, shifting the suffix one slot
// left. The backing block is reallocated to exactly the new length, so
// no capacity slack survives an Erase. Returns the index of the
// element now occupying position i (== Len() when the last element
// was removed).
func (v *Vector[T]) Erase(i int) int {
	assertIndex(i, v.size)
	nb := newBuffer[T](v.size - 1)
	copy(nb.raw(), v.items.raw()[:i])
	copy(nb.raw()[i:], v.items.raw()[i+1:v.size])
	v.items.swap(&nb)
	v.size--
	return i
}

// Reserve grows the capacity to exactly n, keeping length and content
// unchanged. n <= Cap() is a no-op.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	nb := newBuffer[T](n)
	copy(nb.raw(), v.items.raw()[:v.size])
	v.items.swap(&nb)
}

// Swap exchanges storage and length with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.swap(&other.items)
	v.size, other.size = other.size, v.size
}

// Slice returns the live range as a mutable view into the backing
// block. The view is valid until the next reallocating operation
// (growth past capacity, Erase, Reserve); an empty vector yields an
// empty slice.
func (v *Vector[T]) Slice() []T {
	return v.items.raw()[:v.size]
}

// Iter returns an iterator over the live elements in order.
func (v *Vector[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.items.at(i)) {
				return
			}
		}
	}
}
