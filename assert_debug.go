//go:build debug

package vector

// Debug builds turn precondition violations on the unchecked
// operations into immediate panics. Release builds compile these
// checks out; see assert_release.go.

func assertIndex(i, size int) {
	if i < 0 || i >= size {
		panic("vector: index outside live range")
	}
}

func assertPosition(i, size int) {
	if i < 0 || i > size {
		panic("vector: position outside [0, len]")
	}
}

func assertNotEmpty(size int) {
	if size == 0 {
		panic("vector: pop from empty vector")
	}
}
