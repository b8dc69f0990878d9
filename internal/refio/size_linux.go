//go:build linux

package refio

import (
	"os"

	"golang.org/x/sys/unix"
)

// deviceSize returns the capacity of a block device in bytes.
//
// Stat on a block device node reports the size of the node, not the device,
// so the BLKGETSIZE64 ioctl is required here.
func deviceSize(f *os.File) (int64, error) {
	n, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKGETSIZE64)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}
