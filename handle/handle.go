// Package handle provides opaque word-sized handles for type-erased storage.
//
// A Handle is either a small integer stored directly in the word, or an
// index into a Table that owns a Go value. A vec.Vec[Handle] whose destructor
// is Table.Release reproduces the classic "array of void pointers" container:
// integers pass through untouched while owned references are released exactly
// once when their slot is erased, overwritten or destroyed.
package handle

import (
	"io"
	"sync"

	"github.com/joshuapare/veckit/internal/logger"
)

// Handle is an opaque pointer-sized value.
type Handle uintptr

// Invalid is never returned by Table.Register.
const Invalid Handle = 0

// FromInt stores n directly in a handle.
//
// Integers below MinInt/2, that is [MinInt, MinInt/2), share their word
// representation with Table handles. A Table releasing such an integer would
// close whatever value it registered under the same word, so keep integers
// stored alongside table handles within [MinInt/2, MaxInt].
func FromInt(n int) Handle { return Handle(uintptr(n)) }

// Int recovers an integer stored with FromInt.
func (h Handle) Int() int { return int(h) }

// Table maps handles to Go values. It is safe for concurrent use.
//
// Table handles start at the most negative int and count upwards, so they
// never collide with integers of magnitude below MaxInt/2 stored via FromInt.
type Table struct {
	mu     sync.RWMutex
	values map[Handle]any
	next   Handle
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[Handle]any), next: ^Handle(0)>>1 + 1}
}

// Register stores v and returns its handle.
func (t *Table) Register(v any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := t.next
	t.next++
	t.values[h] = v
	return h
}

// Lookup returns the value registered under h.
func (t *Table) Lookup(h Handle) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.values[h]
	return v, ok
}

// Release forgets h and closes its value when it implements io.Closer.
// Unknown handles, including integers stored with FromInt, are ignored, so
// Release can be installed directly as a vec.Vec[Handle] destructor.
func (t *Table) Release(h Handle) {
	t.mu.Lock()
	v, ok := t.values[h]
	delete(t.values, h)
	t.mu.Unlock()
	if !ok {
		return
	}
	if c, isCloser := v.(io.Closer); isCloser {
		if err := c.Close(); err != nil {
			logger.Warn("handle: close failed", "handle", uintptr(h), "error", err)
		}
	}
}

// Len returns the number of registered handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}

// Lookup retrieves a handle's value and type-asserts it to T.
// Returns (value, true) on success, (zero, false) if not found or wrong type.
func Lookup[T any](t *Table, h Handle) (T, bool) {
	v, ok := t.Lookup(h)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}
