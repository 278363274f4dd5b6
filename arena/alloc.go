package arena

import "unsafe"

// Alloc returns a pointer to a zeroed T stored inside the arena.
// The returned pointer is valid until the arena is reset or released.
// T must not be zero-sized.
func Alloc[T any](a *Arena) *T {
	var zero T
	b := a.Allocate(1, int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a zeroed slice of n elements of type T inside the arena.
// Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.Allocate(n, int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// ReallocSlice allocates a zeroed slice of n elements and copies old into its
// front. old keeps its storage; it is only reclaimed with the arena.
// Panics if old is nil. Returns nil if n <= 0.
func ReallocSlice[T any](a *Arena, n int, old []T) []T {
	if old == nil {
		panic("arena: reallocate from a nil slice")
	}
	if n <= 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	keep := min(len(old), n)
	var src []byte
	if keep > 0 {
		src = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(old))), keep*size)
	} else {
		src = []byte{}
	}
	b := a.Reallocate(n, size, int(unsafe.Alignof(zero)), src, keep)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocString copies b into the arena and returns the copy as a string.
// The string is valid until the arena is reset or released.
func AllocString(a *Arena, b []byte) string {
	if len(b) == 0 {
		return ""
	}
	dst := a.Allocate(len(b), 1, 1)
	copy(dst, b)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}
