package vector

import "golang.org/x/exp/constraints"

// Equal reports whether a and b hold the same elements in the same
// order. Capacity plays no part in equality.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if *a.items.at(i) != *b.items.at(i) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically over their live ranges
// using the element type's natural ordering. The result is -1 when a
// orders before b, +1 when after, and 0 when the live ranges match.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		x, y := *a.items.at(i), *b.items.at(i)
		switch {
		case x < y:
			return -1
		case y < x:
			return 1
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case b.size < a.size:
		return 1
	}
	return 0
}

// Less reports whether a orders strictly before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
