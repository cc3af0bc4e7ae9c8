// Package heap implements the shell's bump allocator.
//
// A Region hands out monotonically advancing slices of one fixed block of
// memory and never reclaims them. Release exists so callers can state that a
// block is no longer used, but it does nothing: memory handed out stays
// handed out for the life of the region.
package heap

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is returned when a request is larger than what is left.
	ErrOutOfMemory = errors.New("heap: out of memory")

	// ErrBadSize is returned for negative request sizes.
	ErrBadSize = errors.New("heap: negative allocation size")

	// ErrRegionSize is returned by CheckSize for unusable region sizes.
	ErrRegionSize = errors.New("heap: region size out of range")
)

// MaxSize is the largest region New accepts.
const MaxSize = 1 << 30

// CheckSize reports whether size is a valid region size, 0 to MaxSize.
func CheckSize(size int) error {
	if size < 0 || size > MaxSize {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrRegionSize, size, MaxSize)
	}

	return nil
}

// Block is a handle to one allocation inside a Region.
type Block struct {
	Offset int // relative to the start of the region
	Size   int
	base   uintptr
}

// Addr returns the region base plus Offset.
func (b Block) Addr() uintptr {
	return b.base + uintptr(b.Offset)
}

// Region is a bump-allocated heap.
type Region struct {
	base   uintptr
	mem    []byte
	cursor int
	allocs int
}

// New creates a region of size bytes whose first byte is reported at base.
// Sizes outside CheckSize's range are clamped into it.
func New(base uintptr, size int) *Region {
	size = min(max(size, 0), MaxSize)

	return &Region{
		base: base,
		mem:  make([]byte, size),
	}
}

// Allocate returns a size-byte block at the current cursor and advances it.
// A failed request leaves the region untouched.
func (r *Region) Allocate(size int) (Block, error) {
	if size < 0 {
		return Block{}, fmt.Errorf("%w: %d", ErrBadSize, size)
	}

	if size > r.Remaining() {
		return Block{}, fmt.Errorf("%w: requested %d, remaining %d", ErrOutOfMemory, size, r.Remaining())
	}

	b := Block{Offset: r.cursor, Size: size, base: r.base}
	r.cursor += size
	r.allocs++

	return b, nil
}

// Release is a no-op. Blocks are never returned to the region.
func (r *Region) Release(Block) {}

// Bytes returns the memory backing b.
func (r *Region) Bytes(b Block) []byte {
	return r.mem[b.Offset : b.Offset+b.Size : b.Offset+b.Size]
}

// BlockAt rebuilds the handle of a block previously returned by Allocate.
func (r *Region) BlockAt(offset, size int) Block {
	return Block{Offset: offset, Size: size, base: r.base}
}

// At returns n bytes starting at offset.
func (r *Region) At(offset, n int) []byte {
	return r.mem[offset : offset+n : offset+n]
}

func (r *Region) Base() uintptr { return r.base }

func (r *Region) Size() int { return len(r.mem) }

func (r *Region) Used() int { return r.cursor }

func (r *Region) Remaining() int { return len(r.mem) - r.cursor }

// Allocations counts successful Allocate calls.
func (r *Region) Allocations() int { return r.allocs }
