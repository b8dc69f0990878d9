package rvth

import (
	"fmt"

	"github.com/rvthkit/rvthkit/internal/buf"
	"github.com/rvthkit/rvthkit/internal/format"
)

// identifyDisc recognizes the bank type of a standalone disc image from the
// magic words in its disc header. Wii images larger than a single bank must
// be dual-layer. Anything without a recognizable magic degrades to
// BankUnknown rather than failing the open.
func identifyDisc(store BackingStore) (BankType, error) {
	hdr := make([]byte, format.BlockSize)
	n := len(hdr)
	if sz := store.Size(); sz < int64(n) {
		n = int(sz)
	}
	if n < format.GCNMagicOffset+4 {
		return BankUnknown, nil
	}
	if _, err := store.ReadAt(hdr[:n], 0); err != nil {
		return BankUnknown, fmt.Errorf("rvth: read disc header: %w", err)
	}

	switch {
	case buf.U32BE(hdr[format.WiiMagicOffset:]) == format.WiiMagic:
		if store.Size() > format.BankSize {
			return BankWiiDL, nil
		}
		return BankWiiSL, nil
	case buf.U32BE(hdr[format.GCNMagicOffset:]) == format.GCNMagic:
		return BankGCN, nil
	default:
		return BankUnknown, nil
	}
}
