// Package vec implements the handle-based growable array.
//
// A Vec is a small descriptor (storage, length, capacity, destructor) whose
// elements are held by value. The destructor receives the element value when
// it is permanently removed or overwritten:
//
//	v := vec.New[int](0, nil)
//	defer v.Destroy()
//	v.PushBack(3)
//	v.PushBack(5)
//	for i := range v.Len() {
//	    fmt.Println(v.Get(i))
//	}
//
// Opaque, type-erased elements are expressed as Vec[handle.Handle] with a
// handle.Table releasing owned references.
//
// Index violations and allocation failures are fatal and reported through
// package fault. Vec is not safe for concurrent use.
package vec

import (
	"github.com/joshuapare/veckit/internal/core"
	"github.com/joshuapare/veckit/pkg/types"
)

// Destructor cleans up an element leaving the container.
type Destructor[T any] func(T)

// Vec is a growable array of T. The zero value is an empty Vec with no
// destructor. A Vec must not be copied after first use.
type Vec[T any] struct {
	arr core.Array[T]
}

// New returns an empty Vec with room for capacity elements. dtor may be nil.
func New[T any](capacity int, dtor Destructor[T]) Vec[T] {
	return NewWithOptions(capacity, dtor, types.Options[T]{})
}

// NewWithOptions is New with an explicit allocator, logger or name.
func NewWithOptions[T any](capacity int, dtor Destructor[T], opts types.Options[T]) Vec[T] {
	return Vec[T]{arr: core.New(capacity, slotDestructor(dtor), opts)}
}

func slotDestructor[T any](dtor Destructor[T]) func(*T) {
	if dtor == nil {
		return nil
	}
	return func(p *T) { dtor(*p) }
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.arr.Len() }

// Capacity returns the number of allocated slots.
func (v *Vec[T]) Capacity() int { return v.arr.Cap() }

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.arr.Len() == 0 }

// HasDestructor reports whether removals run a destructor.
func (v *Vec[T]) HasDestructor() bool { return v.arr.HasDestructor() }

// Get returns element i. i must be below Len.
func (v *Vec[T]) Get(i int) T {
	return *v.arr.Slot("get", i)
}

// Set destructs element i, then replaces it with x. i must be below Len.
func (v *Vec[T]) Set(i int, x T) {
	v.arr.Set(i, x)
}

// PushBack appends x, doubling the capacity first when full.
func (v *Vec[T]) PushBack(x T) {
	v.arr.Push(x)
}

// PopBack destructs and removes the last element. It returns false when the
// Vec is empty.
func (v *Vec[T]) PopBack() bool {
	return v.arr.Pop()
}

// Insert places x at index i, shifting later elements up. i may equal Len.
func (v *Vec[T]) Insert(i int, x T) {
	v.arr.Insert(i, x)
}

// Erase destructs element i and shifts later elements down.
func (v *Vec[T]) Erase(i int) {
	v.arr.Erase(i)
}

// Resize sets the capacity to exactly n. It does nothing when n <= Len, so
// n between Len and Capacity releases spare slots but never elements.
func (v *Vec[T]) Resize(n int) {
	v.arr.Resize(n)
}

// Clear destructs every element in index order. The capacity is kept.
func (v *Vec[T]) Clear() {
	v.arr.Clear()
}

// Destroy destructs every element, releases storage and resets v to the zero
// value.
func (v *Vec[T]) Destroy() {
	v.arr.Destroy()
}
