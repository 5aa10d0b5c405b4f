package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/veckit/internal/logger"
	"github.com/joshuapare/veckit/internal/mmfile"
)

// Mmap allocates slot blocks in anonymous memory mappings outside the Go heap.
//
// The garbage collector never scans mapped memory, so T must not contain
// pointers (strings, slices, maps, interfaces, funcs, channels or pointers).
// NewMmap rejects such types with ErrPointerType.
type Mmap[T any] struct {
	counters

	// unmap holds the cleanup for every live block, keyed by its first slot.
	unmap map[unsafe.Pointer]func() error
}

// NewMmap returns a mapping allocator for T.
func NewMmap[T any]() (*Mmap[T], error) {
	var zero T
	if t := reflect.TypeOf(&zero).Elem(); hasPointers(t) {
		return nil, fmt.Errorf("%w: %s", ErrPointerType, t)
	}
	return &Mmap[T]{unmap: make(map[unsafe.Pointer]func() error)}, nil
}

// Alloc maps a zeroed block of n slots.
func (m *Mmap[T]) Alloc(n int) ([]T, error) {
	block, err := m.mapBlock(n)
	if err != nil {
		return nil, err
	}
	m.onAlloc(len(block))
	return block, nil
}

// Realloc maps a new block, copies the live prefix and unmaps old.
func (m *Mmap[T]) Realloc(old []T, live, n int) ([]T, error) {
	if err := checkRealloc(old, live, n); err != nil {
		return nil, err
	}
	if len(old) > 0 && !m.owns(old) {
		return nil, failure(ErrForeignBlock)
	}
	next, err := m.mapBlock(n)
	if err != nil {
		return nil, err
	}
	copy(next, old[:live])
	m.unmapBlock(old)
	m.onRealloc(len(old), n)
	return next, nil
}

// Free unmaps the block.
func (m *Mmap[T]) Free(block []T) {
	if len(block) == 0 || !m.owns(block) {
		return
	}
	m.unmapBlock(block)
	m.onFree(len(block))
}

func (m *Mmap[T]) mapBlock(n int) ([]T, error) {
	size, err := checkSize[T](n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if ElemSize[T]() == 0 {
		// Nothing to map for zero-sized elements.
		return make([]T, n), nil
	}

	data, cleanup, err := mmfile.MapAnon(size)
	if err != nil {
		return nil, failure(err)
	}
	block := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n)
	m.unmap[unsafe.Pointer(unsafe.SliceData(block))] = cleanup
	return block, nil
}

func (m *Mmap[T]) unmapBlock(block []T) {
	if len(block) == 0 {
		return
	}
	key := unsafe.Pointer(unsafe.SliceData(block))
	cleanup, ok := m.unmap[key]
	if !ok {
		return
	}
	delete(m.unmap, key)
	if err := cleanup(); err != nil {
		logger.Warn("mmap: unmap failed", "slots", len(block), "error", err)
	}
}

// Blocks returns the number of live mappings.
func (m *Mmap[T]) Blocks() int {
	return len(m.unmap)
}

func (m *Mmap[T]) owns(block []T) bool {
	if ElemSize[T]() == 0 {
		return true
	}
	_, ok := m.unmap[unsafe.Pointer(unsafe.SliceData(block))]
	return ok
}

// hasPointers reports whether values of t contain anything the GC must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Pointer, reflect.UnsafePointer, reflect.String, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	default:
		return false
	}
}

var _ Allocator[int] = (*Mmap[int])(nil)
