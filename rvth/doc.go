// Package rvth provides low-level access to RVT-H Reader devices and disk
// images.
//
// # Overview
//
// An RVT-H Reader is a 500GB-class storage device divided by a fixed-layout
// bank table (the "NHCD" table) into up to 8 independently addressable
// banks, each holding a raw GameCube or Wii disc image. This package parses,
// validates, and rewrites the bank table, models bank lifecycle and type,
// and exposes a bounds-checked windowed block reader over a bank's payload.
// It works the same way against a live block device and a disk image file.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - RvtH: an opened device or image, owning the backing store and the
//     parsed bank entries
//   - BankEntry: the in-memory form of one bank table slot
//   - BankType: the closed set of bank states (empty, GameCube, Wii
//     single/dual-layer, dual-layer continuation, unknown)
//   - Reader: a windowed, bounds-checked view over one bank's payload
//   - BackingStore: the byte-range abstraction underneath everything
//
// # On-Disk Structure
//
// A full RVT-H HDD image consists of:
//
//	[banks ...] [NHCD header - 512 B] [entry 0] ... [entry 7] [banks ...]
//
// with the table located at byte 0x60000000. A standalone disc image has no
// table; it is opened as a single implicit bank spanning the whole file.
//
// # Opening an Image
//
// The primary way to open a device or image is through the Open function:
//
//	h, err := rvth.Open("/dev/sdb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close()
//
// Reads never require write access. Any mutation of the bank table first
// goes through MakeWritable, which only ever escalates device handles.
package rvth
