package format

import (
	"fmt"
	"time"

	"github.com/rvthkit/rvthkit/internal/buf"
)

// Header captures the bank table header record. The diagram below shows the
// on-disk layout; the non-magic words are fixed on every known device and
// are carried through for diagnostics rather than validated strictly.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------
//	 0x000   4    'N' 'H' 'C' 'D'
//	 0x004   4    0x00000001
//	 0x008   4    0x00000008
//	 0x00C   4    0x00000000
//	 0x010   4    0x002FF000
//	 0x014  492   Unknown
//
// All fields are big-endian.
type Header struct {
	Magic uint32
	X004  uint32
	X008  uint32
	X00C  uint32
	X010  uint32
}

// ParseHeader validates and extracts the bank table header. A magic
// mismatch means the store is not an RVT-H HDD image.
func ParseHeader(b []byte) (Header, error) {
	if !buf.Has(b, 0, HeaderSize) {
		return Header{}, fmt.Errorf("bank table header: %w", ErrTruncated)
	}
	if buf.ReadU32BE(b, HeaderMagicOffset) != NHCDMagic {
		return Header{}, fmt.Errorf("bank table header: %w", ErrSignatureMismatch)
	}
	return Header{
		Magic: NHCDMagic,
		X004:  buf.ReadU32BE(b, HeaderX004Offset),
		X008:  buf.ReadU32BE(b, HeaderX008Offset),
		X00C:  buf.ReadU32BE(b, HeaderX00COffset),
		X010:  buf.ReadU32BE(b, HeaderX010Offset),
	}, nil
}

// Entry is the raw decoded form of one bank table entry. Type is the
// on-disk magic; interpreting it (including degrading unrecognized magics)
// is the caller's concern so one corrupt entry never poisons the table.
type Entry struct {
	Type      uint32
	Timestamp time.Time
	LBAStart  uint32
	LBALen    uint32
	Reserved  [EntryUnknownLen]byte
}

// ParseEntry decodes a 512-byte bank entry record. A malformed timestamp is
// tolerated (the zero time is stored); only truncation is an error.
func ParseEntry(b []byte) (Entry, error) {
	if !buf.Has(b, 0, EntrySize) {
		return Entry{}, fmt.Errorf("bank entry: %w", ErrTruncated)
	}
	e := Entry{
		Type:     buf.ReadU32BE(b, EntryTypeOffset),
		LBAStart: buf.ReadU32BE(b, EntryLBAStartOffset),
		LBALen:   buf.ReadU32BE(b, EntryLBALenOffset),
	}
	copy(e.Reserved[:], b[EntryUnknownOffset:EntrySize])
	if e.Type != 0 {
		if ts, err := ParseTimestamp(b); err == nil {
			e.Timestamp = ts
		}
	}
	return e, nil
}

// EncodeEmptyEntry writes the all-zero record used for empty and deleted
// slots. dst must be at least EntrySize bytes.
func EncodeEmptyEntry(dst []byte) {
	clear(dst[:EntrySize])
}

// EncodeEntry writes a live bank entry record: type magic, the 14-byte
// ASCII zero-fill marker, a timestamp regenerated from now, the LBA range,
// and the reserved region carried over verbatim. dst must be at least
// EntrySize bytes.
func EncodeEntry(dst []byte, typeMagic, lbaStart, lbaLen uint32, reserved []byte, now time.Time) {
	clear(dst[:EntrySize])
	buf.PutU32BE(dst, EntryTypeOffset, typeMagic)
	for i := 0; i < EntryAllZeroLen; i++ {
		dst[EntryAllZeroOffset+i] = '0'
	}
	EncodeTimestamp(dst, now)
	buf.PutU32BE(dst, EntryLBAStartOffset, lbaStart)
	buf.PutU32BE(dst, EntryLBALenOffset, lbaLen)
	copy(dst[EntryUnknownOffset:EntrySize], reserved)
}
