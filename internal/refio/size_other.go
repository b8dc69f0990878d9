//go:build !linux

package refio

import (
	"io"
	"os"
)

// deviceSize returns the capacity of a block device in bytes by seeking to
// the end of the descriptor. Less precise than a platform ioctl but
// portable.
func deviceSize(f *os.File) (int64, error) {
	end, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}
