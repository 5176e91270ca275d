//go:build unix

package thread

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// attachStackBounds derives stack bounds for the calling native
// context. The base is a current stack address rounded up to a page;
// the extent comes from RLIMIT_STACK when the kernel reports a finite
// limit, falling back to fallbackSize otherwise. Exact bounds are not
// obtainable portably, so the base remains an approximation.
func attachStackBounds(fallbackSize int) (base, limit uintptr) {
	var anchor byte
	base = roundUpPtr(uintptr(unsafe.Pointer(&anchor)), pageSize)

	size := uintptr(fallbackSize)
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &rl); err == nil &&
		rl.Cur != unix.RLIM_INFINITY && rl.Cur > 0 && uintptr(rl.Cur) < base {
		size = uintptr(rl.Cur)
	}
	if size >= base {
		size = uintptr(fallbackSize)
	}
	return base, base - size
}
