package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies contract violations so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIndex       ErrKind = iota // get/set/erase/at index not below length
	ErrKindInsertIndex                // insert index above length
	ErrKindAlloc                      // allocator failed during construct/grow/resize
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindIndex:
		return "index out of range"
	case ErrKindInsertIndex:
		return "insert index out of range"
	case ErrKindAlloc:
		return "allocation failed"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error describes a violated container precondition.
type Error struct {
	Kind  ErrKind
	Name  string // container name from Options.Name, may be empty
	Op    string // operation name, e.g. "get" or "push"
	Index int    // offending index, or requested capacity for ErrKindAlloc
	Bound int    // length (index kinds) or current capacity (ErrKindAlloc)
	Err   error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch e.Kind {
	case ErrKindIndex:
		msg = fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Bound)
	case ErrKindInsertIndex:
		msg = fmt.Sprintf("%s: index %d out of range [0, %d]", e.Op, e.Index, e.Bound)
	case ErrKindAlloc:
		msg = fmt.Sprintf("%s: cannot allocate %d slots (capacity %d)", e.Op, e.Index, e.Bound)
	default:
		msg = fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	if e.Op == "" {
		msg = e.Kind.String()
	}
	if e.Name != "" {
		msg = e.Name + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by Kind, so errors.Is(err, ErrOutOfRange) holds for
// every index violation regardless of operation or index.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t.Op != "" {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is matching.
var (
	// ErrOutOfRange matches get/set/erase/at index violations.
	ErrOutOfRange = &Error{Kind: ErrKindIndex}
	// ErrInsertOutOfRange matches insert index violations.
	ErrInsertOutOfRange = &Error{Kind: ErrKindInsertIndex}
	// ErrAlloc matches allocation failures during construct, growth or resize.
	ErrAlloc = &Error{Kind: ErrKindAlloc}
)

// -----------------------------------------------------------------------------
// Container Metadata
// -----------------------------------------------------------------------------

// Info is a snapshot of a container header.
type Info struct {
	Len           int  // live elements
	Cap           int  // allocated slots
	HasDestructor bool // whether removals and overwrites run a destructor
}
