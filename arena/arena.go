package arena

import (
	"unsafe"

	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/pavanmanishd/autocomplete/internal/logutil"
)

// DefaultCapacity is the capacity used for new arenas when none is given (64 KiB).
const DefaultCapacity = 1 << 16

// ErrExhausted is the cause of the panic raised when an allocation does not
// fit in the remaining capacity of an arena.
var ErrExhausted = errors.New("arena: out of memory")

// Arena is a bump allocator over a single region reserved up front.
// Not goroutine-safe.
type Arena struct {
	buf    []byte  // reserved region, len(buf) is the end bound
	offset uintptr // next free byte within buf
	peak   uintptr // highest offset reached since creation
}

// NewArena reserves a region of capacity bytes.
// If capacity <= 0, DefaultCapacity is used.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Arena{buf: make([]byte, capacity)}
}

// Allocate carves a zeroed block of count elements of size bytes, starting at
// an address aligned to align. It panics if size is not positive, if align is
// not a power of two, or if the block does not fit; the exhaustion panic value
// is an error whose cause is ErrExhausted.
func (a *Arena) Allocate(count, size, align int) []byte {
	start, n := a.reserve(count, size, align)
	b := a.buf[start : start+n : start+n]
	clear(b)
	return b
}

// Reallocate carves a new zeroed block exactly like Allocate and copies the
// first oldCount elements of old into it. The old block stays reserved until
// the whole arena is reset or released. old must not be nil.
func (a *Arena) Reallocate(count, size, align int, old []byte, oldCount int) []byte {
	if old == nil {
		panic("arena: reallocate from a nil block")
	}
	b := a.Allocate(count, size, align)
	copy(b, old[:oldCount*size])
	return b
}

// Fits reports whether Allocate(count, size, align) would succeed.
func (a *Arena) Fits(count, size, align int) bool {
	if a.buf == nil || size <= 0 || count < 0 || !validAlign(align) {
		return false
	}
	available := a.available(align)
	return available >= 0 && count <= available/size
}

// AllocBytes returns n zeroed bytes aligned to pointer size.
// Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	return a.Allocate(n, 1, ptrAlign)
}

// Reset rewinds the allocation cursor to the start of the region and keeps
// the region for reuse. Every block handed out before is invalidated.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.offset = 0
}

// Release drops the region and makes the arena unusable.
// Any subsequent allocation will panic.
func (a *Arena) Release() {
	a.buf = nil
	a.offset = 0
}

// reserve validates a request, advances the cursor and returns the offset and
// length of the block within buf.
func (a *Arena) reserve(count, size, align int) (int, int) {
	a.panicIfReleased()
	if size <= 0 {
		panic("arena: element size must be positive")
	}
	if count < 0 {
		panic("arena: negative element count")
	}
	if !validAlign(align) {
		panic("arena: alignment must be a power of two")
	}

	available := a.available(align)
	if available < 0 || count > available/size {
		a.exhausted(count, size, available)
	}

	start := int(a.offset + a.padding(align))
	n := count * size
	a.offset = uintptr(start + n)
	if a.offset > a.peak {
		a.peak = a.offset
	}
	return start, n
}

// available returns the bytes left after padding for align. The result is
// negative when the padding alone runs past the end of the region.
func (a *Arena) available(align int) int {
	return len(a.buf) - int(a.offset) - int(a.padding(align))
}

// padding returns the bytes needed to bring the cursor's address up to align.
func (a *Arena) padding(align int) uintptr {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf))) + a.offset
	return -addr & uintptr(align-1)
}

func (a *Arena) exhausted(count, size, available int) {
	available = max(available, 0)
	logutil.Error("arena exhausted",
		zap.Int("count", count),
		zap.Int("size", size),
		zap.Int("available", available),
		zap.Int("capacity", len(a.buf)))
	panic(errors.Annotatef(ErrExhausted, "%d elements of %d bytes requested, %d bytes available", count, size, available))
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("arena: use after Release()")
	}
}

const ptrAlign = int(unsafe.Sizeof(uintptr(0)))

func validAlign(align int) bool {
	return align > 0 && align&(align-1) == 0
}
