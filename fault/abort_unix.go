//go:build unix

package fault

import (
	"os"

	"golang.org/x/sys/unix"
)

// Abort writes err to standard error and exits with ExitAbort.
// Short writes are retried and EINTR/EAGAIN are tolerated; any other write
// error gives up on the message but still exits.
func Abort(err error) {
	msg := []byte(err.Error() + "\n")
	for len(msg) > 0 {
		n, werr := unix.Write(unix.Stderr, msg)
		if werr == unix.EINTR || werr == unix.EAGAIN {
			continue
		}
		if werr != nil || n == 0 {
			break
		}
		msg = msg[n:]
	}
	os.Exit(ExitAbort)
}
