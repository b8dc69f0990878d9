package rvth

import (
	"fmt"

	"github.com/rvthkit/rvthkit/internal/buf"
	"github.com/rvthkit/rvthkit/internal/format"
)

// Reader is a bounded, windowed view over a sub-range of a BackingStore,
// used to access a single bank's payload independent of physical layout.
// The store is shared, not owned: it outlives every Reader derived from it,
// and closing a Reader only invalidates the Reader.
//
// A Reader has two states. It starts Open; after Close every operation
// fails with ErrReaderClosed. Each call is atomic from the caller's
// perspective: it either transfers the full requested range or fails.
type Reader struct {
	store    BackingStore
	lbaStart uint32
	lbaLen   uint32
	closed   bool
}

// NewReader returns a Reader over the window [lbaStart, lbaStart+lbaLen) in
// 512-byte sectors.
//
// lbaStart == 0 && lbaLen == 0 is a deliberate, documented overload: the
// window spans the entire backing store. This covers standalone single-bank
// disc images, which have no bank table to window against. Any other pair
// defines a strict sub-window, including a zero-length one.
func NewReader(store BackingStore, lbaStart, lbaLen uint32) *Reader {
	return &Reader{store: store, lbaStart: lbaStart, lbaLen: lbaLen}
}

// bounded reports whether the window is a strict sub-range rather than the
// whole-store sentinel.
func (r *Reader) bounded() bool {
	return r.lbaStart != 0 || r.lbaLen != 0
}

// Size returns the window length in bytes, or the full store size for the
// whole-store sentinel.
func (r *Reader) Size() int64 {
	if r.bounded() {
		return int64(r.lbaLen) * format.BlockSize
	}
	return r.store.Size()
}

// checkAccess validates an access of n bytes at window offset off. Accesses
// beyond the window end are errors, never silent truncations; callers that
// want partial transfers must clamp themselves.
func (r *Reader) checkAccess(off int64, n int) error {
	if r.closed {
		return ErrReaderClosed
	}
	if off < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrOutOfRange, off)
	}
	if r.bounded() {
		end, ok := buf.AddOverflowSafe(off, int64(n))
		if !ok || end > int64(r.lbaLen)*format.BlockSize {
			return fmt.Errorf("%w: [%d, +%d) in %d-sector window", ErrOutOfRange, off, n, r.lbaLen)
		}
	}
	return nil
}

// ReadAt reads len(p) bytes at window offset off.
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	if err := r.checkAccess(off, len(p)); err != nil {
		return 0, err
	}
	return r.store.ReadAt(p, int64(r.lbaStart)*format.BlockSize+off)
}

// WriteAt writes len(p) bytes at window offset off. The Reader does not
// invoke the writability gate; a store that has not been made writable
// refuses the write and that refusal is surfaced as the store's error.
// Gating is a handle-level concern, not a reader-level one.
func (r *Reader) WriteAt(p []byte, off int64) (int, error) {
	if err := r.checkAccess(off, len(p)); err != nil {
		return 0, err
	}
	return r.store.WriteAt(p, int64(r.lbaStart)*format.BlockSize+off)
}

// ReadLBA reads len(p) bytes starting at sector lba of the window. len(p)
// must be a multiple of the 512-byte sector size.
func (r *Reader) ReadLBA(p []byte, lba uint32) (int, error) {
	if len(p)%format.BlockSize != 0 {
		return 0, fmt.Errorf("%w: length %d not sector-aligned", ErrOutOfRange, len(p))
	}
	return r.ReadAt(p, int64(lba)*format.BlockSize)
}

// WriteLBA writes len(p) bytes starting at sector lba of the window. len(p)
// must be a multiple of the 512-byte sector size.
func (r *Reader) WriteLBA(p []byte, lba uint32) (int, error) {
	if len(p)%format.BlockSize != 0 {
		return 0, fmt.Errorf("%w: length %d not sector-aligned", ErrOutOfRange, len(p))
	}
	return r.WriteAt(p, int64(lba)*format.BlockSize)
}

// Close moves the Reader to its terminal state. The backing store is left
// open; it belongs to the RvtH handle. Close is idempotent.
func (r *Reader) Close() error {
	r.closed = true
	return nil
}
