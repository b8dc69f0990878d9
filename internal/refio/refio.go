// Package refio provides the backing store used underneath an RVT-H handle:
// positioned I/O over either a regular disk image file or a block device,
// with explicit writability state. Files are always opened read-only first;
// escalation to read-write is a separate, fallible step so callers can gate
// mutations distinctly from I/O failures.
package refio

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrClosed indicates an operation on a closed file.
	ErrClosed = errors.New("refio: file closed")
	// ErrReadOnly indicates a write to a file that has not been made writable.
	ErrReadOnly = errors.New("refio: file is read-only")
)

// File is an owned handle to a disk image file or block device.
type File struct {
	f        *os.File
	path     string
	size     int64
	isDevice bool
	writable bool
}

// Open opens the file or device at path read-only. Device size discovery is
// platform-specific: regular files use Stat, block devices use an ioctl
// where available and a seek-to-end fallback elsewhere.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	r := &File{
		f:        f,
		path:     path,
		isDevice: isBlockDevice(info.Mode()),
	}
	if r.isDevice {
		r.size, err = deviceSize(f)
	} else {
		r.size = info.Size()
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("refio: size of %s: %w", path, err)
	}
	return r, nil
}

func isBlockDevice(mode os.FileMode) bool {
	return mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0
}

// ReadAt reads len(p) bytes at absolute offset off.
func (r *File) ReadAt(p []byte, off int64) (int, error) {
	if r.f == nil {
		return 0, ErrClosed
	}
	return r.f.ReadAt(p, off)
}

// WriteAt writes len(p) bytes at absolute offset off. The file must have
// been escalated with MakeWritable first; the refusal is surfaced as an
// error rather than relying on the OS rejecting the read-only descriptor.
func (r *File) WriteAt(p []byte, off int64) (int, error) {
	if r.f == nil {
		return 0, ErrClosed
	}
	if !r.writable {
		return 0, ErrReadOnly
	}
	return r.f.WriteAt(p, off)
}

// Size returns the total addressable size in bytes.
func (r *File) Size() int64 { return r.size }

// IsDevice reports whether the handle refers to a block device rather than
// a regular image file.
func (r *File) IsDevice() bool { return r.isDevice }

// IsWritable reports whether writes are currently permitted.
func (r *File) IsWritable() bool { return r.writable }

// MakeWritable re-opens the underlying path read-write and swaps the
// descriptor. Idempotent. Privilege failures (e.g. opening a raw device
// without elevated rights) propagate from the OS.
func (r *File) MakeWritable() error {
	if r.f == nil {
		return ErrClosed
	}
	if r.writable {
		return nil
	}
	f, err := os.OpenFile(r.path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	_ = r.f.Close()
	r.f = f
	r.writable = true
	return nil
}

// Close releases the underlying descriptor. Double close is a no-op.
func (r *File) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	return err
}
