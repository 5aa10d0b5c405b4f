//go:build !unix

package fault

import "os"

// Abort writes err to standard error and exits with ExitAbort.
func Abort(err error) {
	_, _ = os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(ExitAbort)
}
