package rvth

import (
	"errors"
	"fmt"
	"time"

	"github.com/rvthkit/rvthkit/internal/format"
	"github.com/rvthkit/rvthkit/internal/refio"
)

// RvtH is an opened RVT-H device or disk image. It owns the backing store
// and the parsed bank entries, and dispatches every bank-table mutation
// through the writability gate and the table codec.
//
// All operations are synchronous. Concurrent Readers derived from the same
// handle are safe for read-only use; write paths must be externally
// serialized by the caller.
type RvtH struct {
	store     BackingStore
	entries   [format.BankCount]BankEntry
	bankCount int
	isHDD     bool

	// now is stubbed in tests so written timestamps are deterministic.
	now func() time.Time
}

// Open opens the device or image file at path read-only and parses its bank
// table. A store too small to contain a bank table is opened as a
// standalone single-bank image instead.
func Open(path string) (*RvtH, error) {
	store, err := refio.Open(path)
	if err != nil {
		return nil, err
	}
	h, err := OpenStore(store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return h, nil
}

// OpenStore parses the bank table of an already-opened backing store and
// returns a handle owning it. On failure the caller keeps ownership of the
// store.
//
// A device store must carry a valid NHCD magic; a mismatch rejects it with
// ErrNotRVTH. A regular image file large enough to hold a table is tried
// the same way first, but falls back to standalone identification on a
// magic mismatch, since dual-layer disc images extend past the table
// offset. Smaller files are standalone images outright.
func OpenStore(store BackingStore) (*RvtH, error) {
	h := &RvtH{store: store, now: time.Now}

	if store.Size() >= format.Bank1Start {
		err := h.openHDD()
		if err == nil {
			return h, nil
		}
		if store.IsDevice() || !errors.Is(err, ErrNotRVTH) {
			return nil, err
		}
	}
	if err := h.openStandalone(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *RvtH) openHDD() error {
	table := make([]byte, format.HeaderSize+format.BankCount*format.EntrySize)
	if _, err := h.store.ReadAt(table, format.BankTableAddress); err != nil {
		return fmt.Errorf("rvth: read bank table: %w", err)
	}

	if _, err := format.ParseHeader(table[:format.HeaderSize]); err != nil {
		return fmt.Errorf("%w: %v", ErrNotRVTH, err)
	}

	for i := 0; i < format.BankCount; i++ {
		off := format.HeaderSize + i*format.EntrySize
		raw, err := format.ParseEntry(table[off : off+format.EntrySize])
		if err != nil {
			return fmt.Errorf("rvth: bank %d: %w", i, err)
		}
		h.entries[i] = entryFromRaw(raw)
	}

	// The slot after a dual-layer primary is its continuation; the table
	// itself carries no magic for it.
	for i := 0; i < format.BankCount-1; i++ {
		if h.entries[i].Type == BankWiiDL {
			h.entries[i+1].Type = BankWiiDLBank2
		}
	}

	h.bankCount = format.BankCount
	h.isHDD = true
	return nil
}

func (h *RvtH) openStandalone() error {
	t, err := identifyDisc(h.store)
	if err != nil {
		return err
	}
	h.entries[0] = BankEntry{
		Type:   t,
		LBALen: uint32(h.store.Size() / format.BlockSize),
	}
	h.bankCount = 1
	h.isHDD = false
	return nil
}

// Close releases the backing store. The handle is unusable afterwards.
func (h *RvtH) Close() error {
	if h.store == nil {
		return nil
	}
	err := h.store.Close()
	h.store = nil
	return err
}

// IsHDD reports whether the store carries a real bank table, as opposed to
// a standalone single-bank disc image.
func (h *RvtH) IsHDD() bool { return h.isHDD }

// BankCount returns the number of addressable banks: 8 for an HDD, 1 for a
// standalone image.
func (h *RvtH) BankCount() int { return h.bankCount }

// BankEntry returns a pointer to the in-memory entry for bank index.
// Mutations through the pointer take effect on disk only after
// WriteBankEntry.
func (h *RvtH) BankEntry(bank int) (*BankEntry, error) {
	if bank < 0 || bank >= h.bankCount {
		return nil, fmt.Errorf("%w: %d", ErrBankOutOfRange, bank)
	}
	return &h.entries[bank], nil
}

// MakeWritable is the gate in front of every mutation: a no-op when the
// store is already writable, an escalation attempt for device stores, and
// ErrNotADevice for standalone image files, which this layer never
// auto-escalates.
func (h *RvtH) MakeWritable() error {
	if h.store.IsWritable() {
		return nil
	}
	if !h.store.IsDevice() {
		return ErrNotADevice
	}
	return h.store.MakeWritable()
}

// WriteBankEntry persists the in-memory entry for bank to its table slot.
//
// Preconditions are checked in order, each with a distinct error: the
// handle must be an HDD image (ErrNotHDDImage), the index must be in range
// (ErrBankOutOfRange), and the writability gate must pass. Serializing an
// unknown or dual-layer continuation entry is refused before any I/O. The
// write is not transactional, but a single call only ever touches the one
// 512-byte slot.
func (h *RvtH) WriteBankEntry(bank int) error {
	if !h.isHDD {
		return ErrNotHDDImage
	}
	if bank < 0 || bank >= h.bankCount {
		return fmt.Errorf("%w: %d", ErrBankOutOfRange, bank)
	}
	if err := h.MakeWritable(); err != nil {
		return err
	}

	var record [format.EntrySize]byte
	if err := h.entries[bank].encode(record[:], h.now()); err != nil {
		return err
	}

	// Slot 0 of the table region is the header itself; entries follow it.
	off := int64(format.BankTableAddressLBA+bank+1) * format.BlockSize
	n, err := h.store.WriteAt(record[:], off)
	if err != nil {
		return fmt.Errorf("rvth: write bank %d entry: %w", bank, err)
	}
	if n != format.EntrySize {
		return fmt.Errorf("rvth: write bank %d entry: short write (%d of %d)", bank, n, format.EntrySize)
	}
	return nil
}

// DeleteBank marks the bank deleted and persists the all-zero record,
// logically reverting the slot to empty-on-disk. The payload itself is not
// touched, so the image can be recovered with UndeleteBank until the bank
// is overwritten.
func (h *RvtH) DeleteBank(bank int) error {
	e, err := h.writableEntry(bank)
	if err != nil {
		return err
	}
	if e.Type == BankEmpty {
		return ErrBankEmpty
	}
	if e.IsDeleted {
		return ErrBankIsDeleted
	}
	e.IsDeleted = true
	if err := h.WriteBankEntry(bank); err != nil {
		e.IsDeleted = false
		return err
	}
	return nil
}

// UndeleteBank clears the deleted flag and rewrites the full entry record.
func (h *RvtH) UndeleteBank(bank int) error {
	e, err := h.writableEntry(bank)
	if err != nil {
		return err
	}
	if !e.IsDeleted {
		return ErrBankNotDeleted
	}
	e.IsDeleted = false
	if err := h.WriteBankEntry(bank); err != nil {
		e.IsDeleted = true
		return err
	}
	return nil
}

// writableEntry validates the common delete/undelete preconditions: HDD
// image, index in range, and a bank type the codec is allowed to write.
func (h *RvtH) writableEntry(bank int) (*BankEntry, error) {
	if !h.isHDD {
		return nil, ErrNotHDDImage
	}
	e, err := h.BankEntry(bank)
	if err != nil {
		return nil, err
	}
	switch e.Type {
	case BankUnknown:
		return nil, ErrBankUnknown
	case BankWiiDLBank2:
		return nil, ErrBankDL2
	}
	return e, nil
}

// OpenReader returns a Reader over the payload of bank. Empty banks have no
// payload and the continuation bank of a dual-layer image is never
// independently selectable; both are refused. For a standalone image the
// Reader spans the entire backing store.
func (h *RvtH) OpenReader(bank int) (*Reader, error) {
	e, err := h.BankEntry(bank)
	if err != nil {
		return nil, err
	}
	switch e.Type {
	case BankEmpty:
		return nil, ErrBankEmpty
	case BankWiiDLBank2:
		return nil, ErrBankDL2
	}
	if !h.isHDD {
		return NewReader(h.store, 0, 0), nil
	}
	return NewReader(h.store, e.LBAStart, e.LBALen), nil
}
