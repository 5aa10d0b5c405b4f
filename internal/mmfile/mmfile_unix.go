//go:build unix

// Package mmfile provides platform-specific helpers for anonymous memory mappings.
package mmfile

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Mapped reports whether MapAnon is backed by real mappings on this platform.
const Mapped = true

// MapAnon maps size bytes of private, zero-filled, read-write memory.
// The returned cleanup unmaps the region; calling it twice is a no-op.
func MapAnon(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("mmfile: negative mapping size %d", size)
	}
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: map %d bytes: %w", size, err)
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		data = nil
		return err
	}
	return data, cleanup, nil
}
