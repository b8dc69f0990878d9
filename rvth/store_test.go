package rvth

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rvthkit/rvthkit/internal/format"
)

var errStoreReadOnly = errors.New("store is read-only")

// memStore is an in-memory BackingStore. The byte range is sparse so tests
// can model a multi-gigabyte device without allocating it: unwritten bytes
// read as zero.
type memStore struct {
	size       int64
	device     bool
	writable   bool
	escalate   error // returned by MakeWritable when not already writable
	data       map[int64]byte
	writeCalls int
	closed     bool
}

func newMemStore(size int64) *memStore {
	return &memStore{size: size, data: make(map[int64]byte)}
}

func (m *memStore) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > m.size {
		return 0, io.ErrUnexpectedEOF
	}
	for i := range p {
		p[i] = m.data[off+int64(i)]
	}
	return len(p), nil
}

func (m *memStore) WriteAt(p []byte, off int64) (int, error) {
	m.writeCalls++
	if !m.writable {
		return 0, errStoreReadOnly
	}
	if off < 0 || off+int64(len(p)) > m.size {
		return 0, io.ErrUnexpectedEOF
	}
	for i, b := range p {
		m.data[off+int64(i)] = b
	}
	return len(p), nil
}

func (m *memStore) Size() int64      { return m.size }
func (m *memStore) IsDevice() bool   { return m.device }
func (m *memStore) IsWritable() bool { return m.writable }

func (m *memStore) MakeWritable() error {
	if m.writable {
		return nil
	}
	if m.escalate != nil {
		return m.escalate
	}
	m.writable = true
	return nil
}

func (m *memStore) Close() error {
	m.closed = true
	return nil
}

func (m *memStore) put(off int64, b []byte) {
	for i, v := range b {
		m.data[off+int64(i)] = v
	}
}

func (m *memStore) slot(bank int) []byte {
	off := int64(format.BankTableAddressLBA+bank+1) * format.BlockSize
	b := make([]byte, format.EntrySize)
	for i := range b {
		b[i] = m.data[off+int64(i)]
	}
	return b
}

// tableEntry is the raw material for buildHDDStore fixtures.
type tableEntry struct {
	typ      uint32 // on-disk magic, 0 for empty
	lbaStart uint32
	lbaLen   uint32
}

// buildHDDStore lays down a valid NHCD header plus the given entries on a
// sparse 500GB-class device store.
func buildHDDStore(t *testing.T, entries ...tableEntry) *memStore {
	t.Helper()
	m := newMemStore(0x746A000000) // ~500GB
	m.device = true

	hdr := make([]byte, format.HeaderSize)
	binary.BigEndian.PutUint32(hdr[format.HeaderMagicOffset:], format.NHCDMagic)
	binary.BigEndian.PutUint32(hdr[format.HeaderX004Offset:], format.HeaderX004Value)
	binary.BigEndian.PutUint32(hdr[format.HeaderX008Offset:], format.HeaderX008Value)
	binary.BigEndian.PutUint32(hdr[format.HeaderX010Offset:], format.HeaderX010Value)
	m.put(format.BankTableAddress, hdr)

	for i, e := range entries {
		if e.typ == 0 {
			continue
		}
		rec := make([]byte, format.EntrySize)
		binary.BigEndian.PutUint32(rec[format.EntryTypeOffset:], e.typ)
		copy(rec[format.EntryMDateOffset:], "20180112")
		copy(rec[format.EntryMTimeOffset:], "222720")
		binary.BigEndian.PutUint32(rec[format.EntryLBAStartOffset:], e.lbaStart)
		binary.BigEndian.PutUint32(rec[format.EntryLBALenOffset:], e.lbaLen)
		m.put(int64(format.BankTableAddressLBA+i+1)*format.BlockSize, rec)
	}
	return m
}

// fixedNow pins the handle clock so encoded timestamps are predictable.
var fixedNow = time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

func openFixture(t *testing.T, m *memStore) *RvtH {
	t.Helper()
	h, err := OpenStore(m)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	h.now = func() time.Time { return fixedNow }
	return h
}
