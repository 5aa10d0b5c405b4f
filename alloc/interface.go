package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/veckit/internal/buf"
)

// MaxBytes is the largest single block, in bytes, any allocator will attempt:
// 64 TiB on 64-bit platforms, 1 GiB on 32-bit ones.
const MaxBytes = 1 << (30 + 16*(^uint(0)>>63))

// Allocator defines the interface for element slot allocation and release.
//
// Implementations:
//   - Heap: Go heap blocks
//   - Mmap: anonymous mappings for pointer-free element types
//   - Budget: wrapper enforcing a live slot limit
type Allocator[T any] interface {
	// Alloc returns a zeroed block of exactly n slots, or nil when n is 0.
	Alloc(n int) ([]T, error)

	// Realloc returns a block of exactly n slots whose first live slots equal
	// old[:live]. On success old is released and must not be used again.
	// On failure old is left untouched.
	Realloc(old []T, live, n int) ([]T, error)

	// Free releases a block previously returned by Alloc or Realloc.
	// Freeing a nil block is a no-op.
	Free(block []T)
}

// ElemSize returns the size in bytes of one T slot.
func ElemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// checkSize validates a slot request of n elements of type T.
func checkSize[T any](n int) (int, error) {
	if n < 0 {
		return 0, failure(fmt.Errorf("%w: negative slot count %d", ErrTooLarge, n))
	}
	size := ElemSize[T]()
	total, ok := buf.SlotBytes(n, size)
	if !ok || total > MaxBytes {
		return 0, failure(fmt.Errorf("%w: %d slots of %d bytes", ErrTooLarge, n, size))
	}
	return total, nil
}

// checkRealloc validates Realloc arguments against the old block.
func checkRealloc[T any](old []T, live, n int) error {
	if _, err := checkSize[T](n); err != nil {
		return err
	}
	if live < 0 || live > len(old) || live > n {
		return failure(fmt.Errorf("alloc: live count %d invalid for block of %d resized to %d", live, len(old), n))
	}
	return nil
}
