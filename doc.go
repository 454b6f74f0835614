// Package vector implements a generic, resizable contiguous-sequence
// container with explicit capacity control.
//
// # Overview
//
// A Vector owns a single contiguous block of elements and two counters,
// length and capacity. Appending past the current capacity reallocates
// the block with geometric (2x) growth, which makes PushBack amortized
// O(1). Capacity can also be managed explicitly, which is useful for:
//
//   - Pre-sizing buffers when the element count is known up front
//   - Avoiding reallocation churn in hot loops
//   - Value-semantics snapshots via Clone
//   - Ownership transfer without copying via Move and Swap
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)
//
//	for _, x := range v.Slice() {
//	    fmt.Println(x)
//	}
//
//	// Pre-reserve capacity without adding elements
//	w := vector.WithCapacity[string](vector.Reserve(64))
//	fmt.Println(w.Len(), w.Cap()) // 0 64
//
// # Capacity Management
//
// Resize, Reserve and the constructors control capacity directly.
// Growth always at least doubles the previous capacity (a zero-capacity
// vector grows to exactly the requested size), so a sequence of k
// appends performs O(log k) reallocations. Erase is the one deliberate
// exception: it reallocates to exactly the new length and retains no
// slack.
//
// # Element Access
//
// Get, Set and Slice are unchecked: indexes must be below Len, and the
// contract is enforced only when building with the debug tag. At is the
// checked variant and reports ErrOutOfRange instead of panicking:
//
//	p, err := v.At(10)
//	if err != nil {
//	    // errors.Is(err, vector.ErrOutOfRange)
//	}
//	*p = 42
//
// # Thread Safety
//
// Vector is not goroutine-safe. Instances share no state with each
// other, so distinct vectors may be used from distinct goroutines
// freely; concurrent access to one instance requires external locking
// supplied by the caller.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized
//   - Get/Set/At: O(1)
//   - Insert/Erase: O(n) shift, Erase also reallocates
//   - Clone: O(n)
//   - Move, Swap, Clear: O(1)
package vector
