// Package testutil holds helpers shared by the container test suites.
package testutil

// Counter records destructor invocations.
//
// Example:
//
//	var c testutil.Counter[int]
//	v := vec.New(4, c.Value)
//	...
//	require.Equal(t, 1, c.Calls)
type Counter[T any] struct {
	Calls int // number of destructor invocations
	Seen  []T // destructed values in invocation order
}

// Value is a value-convention destructor.
func (c *Counter[T]) Value(v T) {
	c.Calls++
	c.Seen = append(c.Seen, v)
}

// Slot is a slot-reference destructor.
func (c *Counter[T]) Slot(p *T) {
	c.Value(*p)
}

// Reset forgets every recorded call.
func (c *Counter[T]) Reset() {
	c.Calls = 0
	c.Seen = nil
}
