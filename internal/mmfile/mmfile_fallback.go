//go:build !unix

// Package mmfile provides platform-specific helpers for anonymous memory mappings.
package mmfile

import "fmt"

// Mapped reports whether MapAnon is backed by real mappings on this platform.
const Mapped = false

// MapAnon allocates size bytes on the Go heap when mmap is not available.
func MapAnon(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("mmfile: negative mapping size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
