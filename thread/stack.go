package thread

import "unsafe"

const pageSize = 4096

// Stack is the fixed region backing a thread's call stack. Stacks grow
// downward: Base is the high address, Limit the low one. Both bounds
// are fixed for the thread's lifetime.
//
// Spawned threads own their region; attached threads carry bounds
// derived from the native stack they arrived on, with no backing
// allocation of their own.
type Stack struct {
	mem   []byte
	base  uintptr
	limit uintptr
}

// newStack reserves a region of at least size bytes, rounded up to a
// whole number of pages. Reservation failure is unrecoverable: the
// allocator aborts the process rather than returning.
func newStack(size int) *Stack {
	if size <= 0 {
		fatalf("invalid stack size %d", size)
	}
	size = roundUp(size, pageSize)
	mem := make([]byte, size)
	limit := uintptr(unsafe.Pointer(&mem[0]))
	return &Stack{
		mem:   mem,
		base:  limit + uintptr(size),
		limit: limit,
	}
}

// Base returns the high bound of the stack region.
func (s *Stack) Base() uintptr { return s.base }

// Limit returns the low bound of the stack region.
func (s *Stack) Limit() uintptr { return s.limit }

// Size returns the extent of the region in bytes.
func (s *Stack) Size() int { return int(s.base - s.limit) }

func roundUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

func roundUpPtr(p uintptr, align uintptr) uintptr {
	return (p + align - 1) &^ (align - 1)
}
