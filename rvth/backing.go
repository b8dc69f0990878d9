package rvth

import "github.com/rvthkit/rvthkit/internal/refio"

// BackingStore is the byte range underneath an RVT-H handle: a regular disk
// image file or a block device. Implementations must support positioned I/O
// and explicit writability state. The store outlives every Reader derived
// from it and is closed when the owning RvtH is closed.
type BackingStore interface {
	// ReadAt reads len(p) bytes at absolute offset off.
	ReadAt(p []byte, off int64) (int, error)
	// WriteAt writes len(p) bytes at absolute offset off. Stores that have
	// not been made writable refuse the write with an error.
	WriteAt(p []byte, off int64) (int, error)
	// Size returns the total addressable size in bytes.
	Size() int64
	// IsDevice reports whether the store is a block device. Only device
	// stores may be escalated to writable by this layer.
	IsDevice() bool
	// IsWritable reports whether writes are currently permitted.
	IsWritable() bool
	// MakeWritable attempts to escalate the store to read-write. It is
	// idempotent and may fail for platform or privilege reasons.
	MakeWritable() error
	// Close releases the store.
	Close() error
}

var _ BackingStore = (*refio.File)(nil)
