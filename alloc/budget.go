package alloc

import "fmt"

// Budget wraps another allocator and fails once more than Limit slots would be live.
type Budget[T any] struct {
	counters

	inner Allocator[T]
	limit int
	live  int
}

// NewBudget returns an allocator drawing from inner that never has more than
// limit slots outstanding.
func NewBudget[T any](inner Allocator[T], limit int) *Budget[T] {
	return &Budget[T]{inner: inner, limit: limit}
}

// Limit returns the configured slot limit.
func (b *Budget[T]) Limit() int { return b.limit }

// Remaining returns how many more slots can be handed out.
func (b *Budget[T]) Remaining() int { return b.limit - b.live }

// Alloc obtains n slots from the inner allocator if the budget allows.
func (b *Budget[T]) Alloc(n int) ([]T, error) {
	if n > b.Remaining() {
		return nil, failure(fmt.Errorf("%w: want %d slots, %d of %d left", ErrBudget, n, b.Remaining(), b.limit))
	}
	block, err := b.inner.Alloc(n)
	if err != nil {
		return nil, err
	}
	b.live += len(block)
	b.onAlloc(len(block))
	return block, nil
}

// Realloc resizes old through the inner allocator if the budget allows.
func (b *Budget[T]) Realloc(old []T, live, n int) ([]T, error) {
	if delta := n - len(old); delta > b.Remaining() {
		return nil, failure(fmt.Errorf("%w: want %d more slots, %d of %d left", ErrBudget, delta, b.Remaining(), b.limit))
	}
	next, err := b.inner.Realloc(old, live, n)
	if err != nil {
		return nil, err
	}
	b.live += len(next) - len(old)
	b.onRealloc(len(old), len(next))
	return next, nil
}

// Free returns the block to the inner allocator and credits the budget.
func (b *Budget[T]) Free(block []T) {
	b.live -= len(block)
	b.onFree(len(block))
	b.inner.Free(block)
}

var _ Allocator[int] = (*Budget[int])(nil)
