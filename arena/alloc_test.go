package arena

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestAlloc(t *testing.T) {
	a := NewArena(1024)

	// Test basic allocation
	ptr := Alloc[int](a)
	if ptr == nil {
		t.Fatal("Alloc[int] returned nil")
	}
	if *ptr != 0 {
		t.Errorf("Alloc[int] value = %d, want 0 (zeroed)", *ptr)
	}

	// Test struct allocation
	s := Alloc[testStruct](a)
	if s == nil {
		t.Fatal("Alloc[testStruct] returned nil")
	}
	if s.a != 0 || s.b != 0 || s.c != 0 || s.d != 0 {
		t.Errorf("Alloc[testStruct] not properly zeroed: %+v", *s)
	}

	// Verify we can write to allocated memory
	*ptr = 42
	s.a = 100
	if *ptr != 42 || s.a != 100 {
		t.Error("Could not write to allocated memory")
	}
}

func TestAllocAfterReuse(t *testing.T) {
	a := NewArena(1024)

	s := Alloc[testStruct](a)
	*s = testStruct{a: 1, b: 2, c: 3, d: 4}
	a.Reset()

	again := Alloc[testStruct](a)
	require.Equal(t, unsafe.Pointer(s), unsafe.Pointer(again))
	require.Equal(t, testStruct{}, *again)
}

func TestAllocZeroSizedPanics(t *testing.T) {
	a := NewArena(1024)
	require.Panics(t, func() { Alloc[struct{}](a) })
}

func TestAllocSlice(t *testing.T) {
	a := NewArena(1024)

	// Test normal slice allocation
	slice := AllocSlice[int](a, 10)
	if len(slice) != 10 {
		t.Errorf("AllocSlice[int](10) length = %d, want 10", len(slice))
	}
	if cap(slice) != 10 {
		t.Errorf("AllocSlice[int](10) capacity = %d, want 10", cap(slice))
	}

	// Test zero size
	empty := AllocSlice[int](a, 0)
	if empty != nil {
		t.Errorf("AllocSlice[int](0) = %v, want nil", empty)
	}

	// Test negative size
	negative := AllocSlice[int](a, -1)
	if negative != nil {
		t.Errorf("AllocSlice[int](-1) = %v, want nil", negative)
	}

	// Verify all elements are zeroed and writable
	for i, v := range slice {
		if v != 0 {
			t.Errorf("slice[%d] = %d, want 0 (zeroed)", i, v)
		}
		slice[i] = i * 2
	}
	for i := range slice {
		if slice[i] != i*2 {
			t.Errorf("slice[%d] = %d, want %d", i, slice[i], i*2)
		}
	}
}

func TestReallocSlice(t *testing.T) {
	a := NewArena(1024)

	old := AllocSlice[int32](a, 3)
	copy(old, []int32{7, 8, 9})

	grown := ReallocSlice(a, 6, old)
	require.Equal(t, []int32{7, 8, 9, 0, 0, 0}, grown)
	require.Equal(t, []int32{7, 8, 9}, old)

	shrunk := ReallocSlice(a, 2, grown)
	require.Equal(t, []int32{7, 8}, shrunk)

	require.Nil(t, ReallocSlice(a, 0, old))
	require.Equal(t, []int32{0, 0}, ReallocSlice(a, 2, []int32{}))
	require.Panics(t, func() { ReallocSlice[int32](a, 4, nil) })
}

func TestAllocString(t *testing.T) {
	a := NewArena(1024)

	src := []byte("checkout")
	s := AllocString(a, src)
	src[0] = 'X'
	require.Equal(t, "checkout", s)
	require.Equal(t, 8, a.SizeInUse())

	require.Equal(t, "", AllocString(a, nil))
	require.Equal(t, 8, a.SizeInUse())
}

func TestAllocAlignment(t *testing.T) {
	a := NewArena(1024)

	// Interleave byte-sized values so every int64 needs padding
	for i := 0; i < 10; i++ {
		Alloc[int8](a)
		p := Alloc[int64](a)
		addr := uintptr(unsafe.Pointer(p))
		if addr%unsafe.Alignof(int64(0)) != 0 {
			t.Errorf("Pointer %d not properly aligned: %x", i, addr)
		}
	}
}

// TestMemoryCorruption checks that consecutive blocks do not overlap
func TestMemoryCorruption(t *testing.T) {
	a := NewArena(64 * 100)

	ptrs := make([]*[64]byte, 100)
	for i := range ptrs {
		ptrs[i] = Alloc[[64]byte](a)
		// Fill with pattern
		for j := range ptrs[i] {
			ptrs[i][j] = byte(i)
		}
	}

	// Verify patterns are intact
	for i, ptr := range ptrs {
		for j, b := range ptr {
			if b != byte(i) {
				t.Errorf("Memory corruption detected at ptr[%d][%d]: got %d, want %d", i, j, b, byte(i))
			}
		}
	}
	require.Zero(t, a.Available())
}

func BenchmarkAlloc(b *testing.B) {
	a := NewArena(1024 * 1024)

	b.Run("Alloc[int]", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Alloc[int](a)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})

	b.Run("Alloc[testStruct]", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Alloc[testStruct](a)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})
}

func BenchmarkAllocSlice(b *testing.B) {
	a := NewArena(1024 * 1024)
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("AllocSlice-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				AllocSlice[int](a, size)
				if i%100 == 99 {
					a.Reset()
				}
			}
		})

		b.Run(fmt.Sprintf("ReallocSlice-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := AllocSlice[int](a, size/2)
				ReallocSlice(a, size, s)
				if i%50 == 49 {
					a.Reset()
				}
			}
		})
	}
}
