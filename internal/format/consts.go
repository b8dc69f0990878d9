// Package format houses low-level decoders for the NHCD bank table used by
// RVT-H Reader devices and disk images. The goal is to keep the parsing
// focused, allocation-free where possible, and independent from the public
// API so higher-level packages can orchestrate the data in a more ergonomic
// form.
//
// All multi-byte integer fields on disk are big-endian.
package format

const (
	// NHCDMagic is the four-byte magic at the start of the bank table
	// header. Layout (big-endian):
	//   0x00  'N' 'H' 'C' 'D'
	NHCDMagic = 0x4E484344

	// BankTypeGCN identifies a single-layer GameCube image. ("GC1L")
	BankTypeGCN = 0x4743314C

	// BankTypeWiiSL identifies a single-layer Wii image. ("NN1L")
	BankTypeWiiSL = 0x4E4E314C

	// BankTypeWiiDL identifies the primary bank of a dual-layer Wii
	// image. ("NN2L") The continuation bank has no magic of its own.
	BankTypeWiiDL = 0x4E4E324C
)

const (
	// BlockSize is the sector size used for all LBA values.
	BlockSize = 512

	// BankCount is the number of bank slots on a real RVT-H HDD.
	BankCount = 8

	// BankTableAddress is the absolute byte offset of the bank table
	// header on an RVT-H HDD.
	BankTableAddress = 0x60000000

	// BankTableAddressLBA is BankTableAddress in 512-byte sectors.
	BankTableAddressLBA = BankTableAddress / BlockSize

	// Bank1Start is the absolute byte offset of the first bank's payload.
	// The table occupies 9 sectors: the header plus 8 entries.
	Bank1Start = 0x60001200

	// BankSize is the maximum size of a single bank in bytes. This equals
	// the size of a single-layer RVT-R disc; a standalone image larger
	// than this must be dual-layer.
	BankSize = 0x118940000

	// HeaderSize is the size of the bank table header record in bytes.
	HeaderSize = 512

	// EntrySize is the size of one bank table entry record in bytes.
	EntrySize = 512
)

// Bank table header field offsets. The non-magic words are fixed protocol
// constants on every known device.
const (
	HeaderMagicOffset   = 0x000 // 4, "NHCD"
	HeaderX004Offset    = 0x004 // 4, 0x00000001
	HeaderX008Offset    = 0x008 // 4, 0x00000008
	HeaderX00COffset    = 0x00C // 4, 0x00000000
	HeaderX010Offset    = 0x010 // 4, 0x002FF000
	HeaderUnknownOffset = 0x014 // 492, opaque
)

// Expected values of the fixed header words.
const (
	HeaderX004Value = 0x00000001
	HeaderX008Value = 0x00000008
	HeaderX00CValue = 0x00000000
	HeaderX010Value = 0x002FF000
)

// Bank entry field offsets within the 512-byte record.
const (
	EntryTypeOffset     = 0x000 // 4, type magic (0 = empty slot)
	EntryAllZeroOffset  = 0x004 // 14, ASCII '0' fill
	EntryMDateOffset    = 0x012 // 8, ASCII date, e.g. "20180112"
	EntryMTimeOffset    = 0x01A // 6, ASCII time, e.g. "222720"
	EntryLBAStartOffset = 0x020 // 4, starting LBA in 512-byte sectors
	EntryLBALenOffset   = 0x024 // 4, length in 512-byte sectors
	EntryUnknownOffset  = 0x028 // 472, opaque, preserved verbatim
)

// derived lengths.
const (
	EntryAllZeroLen  = EntryMDateOffset - EntryAllZeroOffset  // 14
	EntryMDateLen    = EntryMTimeOffset - EntryMDateOffset    // 8
	EntryMTimeLen    = EntryLBAStartOffset - EntryMTimeOffset // 6
	EntryUnknownLen  = EntrySize - EntryUnknownOffset         // 472
	HeaderUnknownLen = HeaderSize - HeaderUnknownOffset       // 492
)

// Disc header magic words, used to recognize the bank type of a standalone
// image that has no bank table.
const (
	// WiiMagic is found at offset 0x18 of a Wii disc header.
	WiiMagic = 0x5D1C9EA3
	// WiiMagicOffset is the offset of WiiMagic within the disc header.
	WiiMagicOffset = 0x18

	// GCNMagic is found at offset 0x1C of a GameCube disc header.
	GCNMagic = 0xC2339F3D
	// GCNMagicOffset is the offset of GCNMagic within the disc header.
	GCNMagicOffset = 0x1C
)
