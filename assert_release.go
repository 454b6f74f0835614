//go:build !debug

package vector

// Release builds rely on Go's own bounds checking for misuse of the
// unchecked operations; behavior beyond that is unspecified.

func assertIndex(int, int) {}

func assertPosition(int, int) {}

func assertNotEmpty(int) {}
