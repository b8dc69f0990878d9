package buf

import (
	"encoding/binary"
	"fmt"
)

// zeroGroupSize is the granularity of IsZeroBlock. Emptiness checks run on
// every bank-table write and on bank deletion paths, so the scan folds eight
// 64-bit words per group into a single comparison.
const zeroGroupSize = 64

// IsZeroBlock reports whether every byte of b is zero. The length of b must
// be a multiple of 64; a violation is a programming error and panics rather
// than returning a recoverable error, since this function is never handed an
// untrusted length.
func IsZeroBlock(b []byte) bool {
	if len(b)%zeroGroupSize != 0 {
		panic(fmt.Sprintf("buf: IsZeroBlock length %d not a multiple of %d", len(b), zeroGroupSize))
	}
	for off := 0; off < len(b); off += zeroGroupSize {
		g := b[off : off+zeroGroupSize]
		x := binary.LittleEndian.Uint64(g[0:])
		x |= binary.LittleEndian.Uint64(g[8:])
		x |= binary.LittleEndian.Uint64(g[16:])
		x |= binary.LittleEndian.Uint64(g[24:])
		x |= binary.LittleEndian.Uint64(g[32:])
		x |= binary.LittleEndian.Uint64(g[40:])
		x |= binary.LittleEndian.Uint64(g[48:])
		x |= binary.LittleEndian.Uint64(g[56:])
		if x != 0 {
			return false
		}
	}
	return true
}
