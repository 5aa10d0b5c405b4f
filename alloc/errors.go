package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSpace is the parent of every allocation failure.
	ErrNoSpace = errors.New("alloc: allocation failed")

	// ErrTooLarge indicates a request whose byte size overflows or exceeds MaxBytes.
	ErrTooLarge = errors.New("alloc: request too large")

	// ErrBudget indicates a Budget allocator ran out of slots.
	ErrBudget = errors.New("alloc: slot budget exhausted")

	// ErrPointerType indicates an element type that cannot live in mapped memory.
	ErrPointerType = errors.New("alloc: element type contains pointers")

	// ErrForeignBlock indicates a block that was not handed out by this allocator.
	ErrForeignBlock = errors.New("alloc: block not owned by allocator")
)

// failure wraps a specific cause with ErrNoSpace so callers can match either.
func failure(cause error) error {
	return fmt.Errorf("%w: %w", ErrNoSpace, cause)
}
