// Package vector implements the inline generic growable array.
//
// The zero Vector is the absent handle: it has no storage and no header, and
// it reports length and capacity 0. Push and Insert allocate on first use, so
// a Vector can be declared and filled without a constructor:
//
//	var v vector.Vector[point]
//	v.Push(point{1, 2})
//	v.Slice()[0].x = 7
//	v.Free()
//
// Elements are stored inline and can be reached through Slice or At for
// native indexing. Any call that grows the storage invalidates previously
// obtained slices and pointers.
//
// The destructor, if any, receives a pointer to the slot being removed or
// overwritten. Index violations and allocation failures are fatal and
// reported through package fault. Vector is not safe for concurrent use.
package vector

import (
	"unsafe"

	"github.com/joshuapare/veckit/internal/core"
	"github.com/joshuapare/veckit/pkg/types"
)

// Destructor cleans up the element in a slot leaving the container.
type Destructor[T any] func(*T)

// Vector is a growable array of T. A nil header means the absent handle.
type Vector[T any] struct {
	hdr *core.Array[T]
}

// New returns a Vector with a header and room for capacity elements, even
// when capacity is 0. dtor may be nil.
func New[T any](capacity int, dtor Destructor[T]) Vector[T] {
	return NewWithOptions(capacity, dtor, types.Options[T]{})
}

// NewWithOptions is New with an explicit allocator, logger or name.
func NewWithOptions[T any](capacity int, dtor Destructor[T], opts types.Options[T]) Vector[T] {
	arr := core.New(capacity, dtor, opts)
	return Vector[T]{hdr: &arr}
}

// Len returns the number of elements, 0 for the absent handle.
func (v *Vector[T]) Len() int {
	if v.hdr == nil {
		return 0
	}
	return v.hdr.Len()
}

// Capacity returns the number of allocated slots, 0 for the absent handle.
func (v *Vector[T]) Capacity() int {
	if v.hdr == nil {
		return 0
	}
	return v.hdr.Cap()
}

// ElementSize returns the size in bytes of one element.
func (v *Vector[T]) ElementSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Header returns a snapshot of the header record. ok is false for the absent
// handle.
func (v *Vector[T]) Header() (info types.Info, ok bool) {
	if v.hdr == nil {
		return types.Info{}, false
	}
	return v.hdr.Info(), true
}

// Slice returns the live elements for direct indexing, nil for the absent
// handle. Writes through the slice bypass the destructor.
func (v *Vector[T]) Slice() []T {
	if v.hdr == nil {
		return nil
	}
	return v.hdr.Live()
}

// At returns a pointer to element i. i must be below Len.
func (v *Vector[T]) At(i int) *T {
	if v.hdr == nil {
		core.Violate(types.ErrKindIndex, "at", i, 0, nil)
	}
	return v.hdr.Slot("at", i)
}

// Get returns a copy of element i. i must be below Len.
func (v *Vector[T]) Get(i int) T {
	if v.hdr == nil {
		core.Violate(types.ErrKindIndex, "get", i, 0, nil)
	}
	return *v.hdr.Slot("get", i)
}

// Set destructs element i, then stores x in its place. i must be below Len.
func (v *Vector[T]) Set(i int, x T) {
	if v.hdr == nil {
		core.Violate(types.ErrKindIndex, "set", i, 0, nil)
	}
	v.hdr.Set(i, x)
}

// Push appends x, allocating the header on first use and doubling the
// capacity when full.
func (v *Vector[T]) Push(x T) {
	v.header().Push(x)
}

// Pop destructs and removes the last element. It returns false, doing
// nothing, when the Vector is empty or absent.
func (v *Vector[T]) Pop() bool {
	if v.hdr == nil {
		return false
	}
	return v.hdr.Pop()
}

// Insert places x at index i, shifting later elements up. i may equal Len.
func (v *Vector[T]) Insert(i int, x T) {
	if v.hdr == nil && i != 0 {
		core.Violate(types.ErrKindInsertIndex, "insert", i, 0, nil)
	}
	v.header().Insert(i, x)
}

// Erase destructs element i and shifts later elements down.
func (v *Vector[T]) Erase(i int) {
	if v.hdr == nil {
		core.Violate(types.ErrKindIndex, "erase", i, 0, nil)
	}
	v.hdr.Erase(i)
}

// Resize sets the capacity to exactly n, allocating the header if needed.
// It does nothing when n <= Len. An n between Len and Capacity shrinks the
// spare capacity; elements are never destructed.
func (v *Vector[T]) Resize(n int) {
	if v.hdr == nil && n <= 0 {
		return
	}
	v.header().Resize(n)
}

// Clear destructs every element in index order. The capacity is kept.
func (v *Vector[T]) Clear() {
	if v.hdr != nil {
		v.hdr.Clear()
	}
}

// Free destructs every element, releases storage and turns v into the
// absent handle. Freeing the absent handle is a no-op.
func (v *Vector[T]) Free() {
	if v.hdr == nil {
		return
	}
	v.hdr.Destroy()
	v.hdr = nil
}

func (v *Vector[T]) header() *core.Array[T] {
	if v.hdr == nil {
		v.hdr = &core.Array[T]{}
	}
	return v.hdr
}
