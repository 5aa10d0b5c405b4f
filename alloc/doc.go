// Package alloc provides typed slot allocators backing the growable containers.
//
// # Overview
//
// The containers never call make or copy on their element storage directly.
// Every block of element slots is obtained from, resized through, and returned
// to an Allocator. This keeps the storage strategy pluggable and lets callers
// observe and bound memory use.
//
// # Allocator Interface
//
//   - Alloc(n): Obtain a zeroed block of exactly n slots
//   - Realloc(old, live, n): Move the first live slots of old into a new block of n slots
//   - Free(block): Return a block; the caller must not touch it afterwards
//
// Alloc(0) returns a nil block. Realloc and Free accept exactly the blocks the
// same allocator handed out (len(block) is the block capacity).
//
// # Implementations
//
// Heap: Go heap allocation
//
//   - make + copy, Free clears slots so referenced memory can be collected
//   - Works for every element type
//
// Mmap: Anonymous private mappings
//
//   - Storage lives outside the Go heap (internal/mmfile)
//   - Only pointer-free element types are accepted, the GC does not scan mappings
//   - Falls back to heap blocks on platforms without mmap
//
// Budget: Slot-limited wrapper
//
//   - Fails with ErrBudget once the live slot total would exceed the limit
//   - Used to exercise allocation failure paths and to cap demo input
//
// # Size Limits
//
// Requests whose byte size overflows int, or exceeds MaxBytes, fail with
// ErrTooLarge before any memory is touched:
//
//	h := alloc.NewHeap[uint64]()
//	_, err := h.Alloc(math.MaxInt) // errors.Is(err, alloc.ErrTooLarge)
//
// # Thread Safety
//
// Allocator instances are not thread-safe. A container and its allocator are
// used from one goroutine at a time.
package alloc
