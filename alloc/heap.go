package alloc

// Heap allocates slot blocks on the Go heap.
type Heap[T any] struct {
	counters
}

// NewHeap returns a heap allocator for T.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Alloc returns a zeroed block of n slots.
func (h *Heap[T]) Alloc(n int) ([]T, error) {
	if _, err := checkSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	h.onAlloc(n)
	return make([]T, n), nil
}

// Realloc copies the live prefix of old into a new block of n slots.
func (h *Heap[T]) Realloc(old []T, live, n int) ([]T, error) {
	if err := checkRealloc(old, live, n); err != nil {
		return nil, err
	}
	var next []T
	if n > 0 {
		next = make([]T, n)
		copy(next, old[:live])
	}
	h.onRealloc(len(old), n)
	clear(old)
	return next, nil
}

// Free clears the block so anything it references can be collected.
func (h *Heap[T]) Free(block []T) {
	h.onFree(len(block))
	clear(block)
}

var _ Allocator[int] = (*Heap[int])(nil)
