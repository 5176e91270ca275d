//go:build !unix

package thread

import "unsafe"

// attachStackBounds derives stack bounds for the calling native
// context from a current stack address and the configured default
// size. No exact bounds query is available on this platform.
func attachStackBounds(fallbackSize int) (base, limit uintptr) {
	var anchor byte
	base = roundUpPtr(uintptr(unsafe.Pointer(&anchor)), pageSize)
	return base, base - uintptr(fallbackSize)
}
