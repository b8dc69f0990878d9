package rvth

import (
	"time"

	"github.com/rvthkit/rvthkit/internal/format"
)

// BankEntry is the in-memory form of one bank table slot. It is populated
// from the table on open, mutated in place, and persisted only through an
// explicit RvtH.WriteBankEntry call.
//
// For non-empty, non-deleted entries LBALen is > 0 and the LBA range must
// not overlap another active bank. Overlap is a caller responsibility: this
// package persists what it is given and never reflows banks.
type BankEntry struct {
	// Type is the bank's current state tag.
	Type BankType
	// IsDeleted marks the slot for reversion to empty-on-disk. A deleted
	// entry serializes as an all-zero record regardless of its other
	// fields.
	IsDeleted bool
	// Timestamp is the creation time recorded in the table. It is
	// regenerated, not preserved, whenever the entry is written back.
	Timestamp time.Time
	// LBAStart is the payload's starting LBA in 512-byte sectors.
	LBAStart uint32
	// LBALen is the payload length in 512-byte sectors.
	LBALen uint32

	// reserved carries the entry's opaque trailing region verbatim across
	// rewrites.
	reserved [format.EntryUnknownLen]byte
}

func entryFromRaw(raw format.Entry) BankEntry {
	e := BankEntry{
		Type:      bankTypeFromMagic(raw.Type),
		Timestamp: raw.Timestamp,
		LBAStart:  raw.LBAStart,
		LBALen:    raw.LBALen,
	}
	e.reserved = raw.Reserved
	return e
}

// encode builds the 512-byte on-disk record for the entry at the time now.
// Deleted and empty entries revert the slot to all zeroes; unknown and
// dual-layer continuation types are refused.
func (e *BankEntry) encode(dst []byte, now time.Time) error {
	if e.IsDeleted || e.Type == BankEmpty {
		format.EncodeEmptyEntry(dst)
		return nil
	}
	magic, err := e.Type.diskMagic()
	if err != nil {
		return err
	}
	format.EncodeEntry(dst, magic, e.LBAStart, e.LBALen, e.reserved[:], now)
	return nil
}
