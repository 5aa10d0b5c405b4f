// Package core implements the growable-array algorithm shared by the vec and
// vector containers.
//
// An Array owns a block of slots obtained from an alloc.Allocator. len(slots)
// is the capacity; the first length slots are live. Destructors always receive
// a pointer to the slot being removed or overwritten, the front-end packages
// adapt that to their own calling convention.
//
// Invariants after every exported method returns:
//   - 0 <= length <= len(slots)
//   - slots is nil iff the capacity is 0
//   - every live slot is owed exactly one destructor call
//   - vacated slots hold the zero value
package core

import (
	"log/slog"

	"github.com/joshuapare/veckit/alloc"
	"github.com/joshuapare/veckit/fault"
	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/internal/logger"
	"github.com/joshuapare/veckit/pkg/types"
)

// Array is a growable array of T. The zero value is an empty array with no
// destructor that allocates from the Go heap on first growth.
//
// Arrays must not be copied after first use; a copy would share slots and
// run destructors twice.
type Array[T any] struct {
	slots  []T
	length int
	dtor   func(*T)
	alloc  alloc.Allocator[T]
	log    *slog.Logger
	name   string
}

// New returns an array with room for capacity elements.
// An allocation failure is a fatal contract violation.
func New[T any](capacity int, dtor func(*T), opts types.Options[T]) Array[T] {
	a := Array[T]{
		dtor:  dtor,
		alloc: opts.Allocator,
		log:   opts.Logger,
		name:  opts.Name,
	}
	slots, err := a.allocator().Alloc(capacity)
	if err != nil {
		a.violate(types.ErrKindAlloc, "new", capacity, 0, err)
	}
	a.slots = slots
	return a
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.length }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.slots) }

// HasDestructor reports whether an element destructor is installed.
func (a *Array[T]) HasDestructor() bool { return a.dtor != nil }

// Info returns a header snapshot.
func (a *Array[T]) Info() types.Info {
	return types.Info{Len: a.length, Cap: len(a.slots), HasDestructor: a.dtor != nil}
}

// Live returns the live elements. The slice aliases storage and is invalidated
// by any call that reallocates; its capacity is clipped so appending to it
// never writes into spare slots.
func (a *Array[T]) Live() []T {
	return a.slots[:a.length:a.length]
}

// Slot returns a pointer to live element i.
func (a *Array[T]) Slot(op string, i int) *T {
	a.checkIndex(op, i)
	return &a.slots[i]
}

// Set destroys element i and stores v in its place.
func (a *Array[T]) Set(i int, v T) {
	a.checkIndex("set", i)
	a.destroy(&a.slots[i])
	a.slots[i] = v
}

// Push appends v, growing first when full.
func (a *Array[T]) Push(v T) {
	if a.length == len(a.slots) {
		a.grow("push")
	}
	a.slots[a.length] = v
	a.length++
}

// Pop destroys and removes the last element. It reports false, doing
// nothing, when the array is empty.
func (a *Array[T]) Pop() bool {
	if a.length == 0 {
		return false
	}
	a.length--
	a.vacate(a.length)
	return true
}

// Insert shifts elements [i, length) up one slot and stores v at i.
// i == length appends.
func (a *Array[T]) Insert(i int, v T) {
	if i < 0 || i > a.length {
		a.violate(types.ErrKindInsertIndex, "insert", i, a.length, nil)
	}
	if a.length == len(a.slots) {
		a.grow("insert")
	}
	copy(a.slots[i+1:a.length+1], a.slots[i:a.length])
	a.slots[i] = v
	a.length++
}

// Erase destroys element i and shifts elements (i, length) down one slot.
func (a *Array[T]) Erase(i int) {
	a.checkIndex("erase", i)
	a.destroy(&a.slots[i])
	copy(a.slots[i:a.length-1], a.slots[i+1:a.length])
	a.length--
	var zero T
	a.slots[a.length] = zero
}

// Resize reallocates storage to exactly n slots. It does nothing when n does
// not exceed the live length or already equals the capacity; it never
// destroys elements.
func (a *Array[T]) Resize(n int) {
	if n <= a.length || n == len(a.slots) {
		return
	}
	a.realloc("resize", n)
}

// Clear destroys every live element in index order. Capacity is unchanged.
func (a *Array[T]) Clear() {
	for i := range a.length {
		a.destroy(&a.slots[i])
	}
	clear(a.slots[:a.length])
	a.length = 0
}

// Destroy clears the array, releases its storage and resets it to the zero
// value. Destroying an empty or already destroyed array is a no-op.
func (a *Array[T]) Destroy() {
	live := a.length
	a.Clear()
	if a.slots != nil {
		a.allocator().Free(a.slots)
	}
	if live > 0 || a.slots != nil {
		a.logger().Debug("destroy", "name", a.name, "destructed", live)
	}
	*a = Array[T]{}
}

// grow doubles the capacity, or sets it to 1 when it is 0.
func (a *Array[T]) grow(op string) {
	n, ok := buf.Double(len(a.slots))
	if !ok {
		a.violate(types.ErrKindAlloc, op, len(a.slots), len(a.slots), alloc.ErrTooLarge)
	}
	a.realloc(op, n)
}

// realloc moves storage to a block of exactly n slots, n >= length.
func (a *Array[T]) realloc(op string, n int) {
	var (
		next []T
		err  error
	)
	if a.slots == nil {
		next, err = a.allocator().Alloc(n)
	} else {
		next, err = a.allocator().Realloc(a.slots, a.length, n)
	}
	if err != nil {
		a.violate(types.ErrKindAlloc, op, n, len(a.slots), err)
	}
	a.logger().Debug("grow", "name", a.name, "op", op, "from", len(a.slots), "to", n)
	a.slots = next
}

// vacate destroys slot i and zeroes it.
func (a *Array[T]) vacate(i int) {
	a.destroy(&a.slots[i])
	var zero T
	a.slots[i] = zero
}

func (a *Array[T]) destroy(slot *T) {
	if a.dtor != nil {
		a.dtor(slot)
	}
}

func (a *Array[T]) checkIndex(op string, i int) {
	if !buf.InRange(i, a.length) {
		a.violate(types.ErrKindIndex, op, i, a.length, nil)
	}
}

func (a *Array[T]) allocator() alloc.Allocator[T] {
	if a.alloc == nil {
		a.alloc = alloc.NewHeap[T]()
	}
	return a.alloc
}

func (a *Array[T]) logger() *slog.Logger {
	if a.log != nil {
		return a.log
	}
	return logger.L
}

// violate is Violate with the array's name attached.
func (a *Array[T]) violate(kind types.ErrKind, op string, index, bound int, cause error) {
	fault.Fail(&types.Error{Kind: kind, Name: a.name, Op: op, Index: index, Bound: bound, Err: cause})
}

// Violate reports a contract violation through fault.Fail. It does not return.
func Violate(kind types.ErrKind, op string, index, bound int, cause error) {
	fault.Fail(&types.Error{Kind: kind, Op: op, Index: index, Bound: bound, Err: cause})
}
