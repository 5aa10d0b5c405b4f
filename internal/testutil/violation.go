package testutil

import (
	"errors"
	"testing"

	"github.com/joshuapare/veckit/fault"
	"github.com/joshuapare/veckit/pkg/types"
)

// RecoverViolation runs fn and returns the contract violation it raised.
// The test fails if fn returns normally or panics with anything else.
//
// Example:
//
//	verr := testutil.RecoverViolation(t, func() { v.Get(5) })
//	require.Equal(t, types.ErrKindIndex, verr.Kind)
func RecoverViolation(t *testing.T, fn func()) (verr *types.Error) {
	t.Helper()
	restore := fault.SetHandler(fault.Panic)
	defer restore()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a contract violation, call returned normally")
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected a violation error, recovered %T: %v", r, r)
			return
		}
		if !fault.IsViolation(err) {
			t.Fatalf("recovered error is not marked as a violation: %v", err)
		}
		if !errors.As(err, &verr) {
			t.Fatalf("recovered error is not a *types.Error: %v", err)
		}
	}()
	fn()
	return nil
}
