// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena reserves one contiguous region when it is created and hands out
// portions of it sequentially. There is no per-block free: the owner reclaims
// everything at once with Reset (keep the region) or Release (drop it).
// This suits data with a shared lifetime, such as:
//
//   - A prefix tree whose nodes live exactly as long as the tree
//   - Per-request scratch buffers discarded once the response is built
//
// # Basic Usage
//
//	a := arena.NewArena(0) // Use default capacity
//	defer a.Release()      // Clean up when done
//
//	// Raw, pointer-aligned bytes
//	buf := a.AllocBytes(1024)
//
//	// Typed values and slices
//	ptr := arena.Alloc[MyStruct](a)
//	slice := arena.AllocSlice[int](a, 100)
//
//	// Grow a slice by copying it forward
//	slice = arena.ReallocSlice(a, 200, slice)
//
//	// Reset for reuse (O(1) operation)
//	a.Reset()
//
// # Exhaustion
//
// Capacity is fixed. A request that does not fit is a sizing error, not a
// runtime condition: the arena logs it and panics with an error whose cause
// is ErrExhausted. Callers that prefer to degrade gracefully can ask Fits
// before allocating.
//
// # Important Notes
//
//   - Every allocation is zeroed
//   - Allocated memory is only valid until the arena is reset or released
//   - Blocks are aligned relative to their absolute address
//   - The garbage collector does not scan arena memory, so pointers stored in
//     arena values must refer to memory kept alive elsewhere, usually the same arena
//   - Not goroutine-safe
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Peak usage: %d of %d bytes\n", m.HighWater, m.Capacity)
package arena
