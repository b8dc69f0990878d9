package rvth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvthkit/rvthkit/internal/format"
)

func TestReaderWindowBounds(t *testing.T) {
	m := newMemStore(1 << 20)
	r := NewReader(m, 100, 10) // 10-sector window: 5120 bytes

	// One byte short of the boundary is fine.
	_, err := r.ReadAt(make([]byte, 1), 5119)
	require.NoError(t, err)

	// Exactly at the boundary is out of range, never a silent truncation.
	_, err = r.ReadAt(make([]byte, 1), 5120)
	require.ErrorIs(t, err, ErrOutOfRange)

	// Crossing the boundary from inside is rejected whole.
	_, err = r.ReadAt(make([]byte, 2), 5118)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = r.ReadAt(make([]byte, 1), -1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestReaderTranslatesOffsets(t *testing.T) {
	m := newMemStore(1 << 20)
	m.put(100*format.BlockSize+7, []byte{0xC3})

	r := NewReader(m, 100, 10)
	p := make([]byte, 1)
	_, err := r.ReadAt(p, 7)
	require.NoError(t, err)
	assert.Equal(t, byte(0xC3), p[0])
}

func TestReaderFullStoreSentinel(t *testing.T) {
	m := newMemStore(1 << 20)
	r := NewReader(m, 0, 0)

	// The all-zero pair means "entire backing store", not an empty window.
	assert.Equal(t, m.Size(), r.Size())

	p := make([]byte, format.BlockSize)
	_, err := r.ReadAt(p, m.Size()-format.BlockSize)
	require.NoError(t, err)
}

func TestReaderZeroLengthWindow(t *testing.T) {
	m := newMemStore(1 << 20)
	r := NewReader(m, 100, 0) // lba_start != 0: a strict (empty) sub-window

	assert.Equal(t, int64(0), r.Size())
	_, err := r.ReadAt(make([]byte, 1), 0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestReaderWriteSurfacesStoreRefusal(t *testing.T) {
	m := newMemStore(1 << 20)
	r := NewReader(m, 0, 16)

	// The Reader performs no gating of its own; the read-only store's
	// refusal comes straight back.
	_, err := r.WriteAt(make([]byte, format.BlockSize), 0)
	require.ErrorIs(t, err, errStoreReadOnly)

	require.NoError(t, m.MakeWritable())
	_, err = r.WriteAt([]byte{1, 2, 3}, 512)
	require.NoError(t, err)
	assert.Equal(t, byte(2), m.data[513])
}

func TestReaderLBAHelpers(t *testing.T) {
	m := newMemStore(1 << 20)
	m.writable = true
	r := NewReader(m, 4, 8)

	sector := make([]byte, format.BlockSize)
	sector[0] = 0xEE
	_, err := r.WriteLBA(sector, 2)
	require.NoError(t, err)
	assert.Equal(t, byte(0xEE), m.data[6*format.BlockSize])

	got := make([]byte, format.BlockSize)
	_, err = r.ReadLBA(got, 2)
	require.NoError(t, err)
	assert.Equal(t, byte(0xEE), got[0])

	// Unaligned lengths are refused before any translation.
	_, err = r.ReadLBA(make([]byte, 100), 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = r.WriteLBA(make([]byte, 100), 0)
	require.ErrorIs(t, err, ErrOutOfRange)

	// LBA windows bound exactly like byte offsets.
	_, err = r.ReadLBA(sector, 8)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestReaderClosedIsTerminal(t *testing.T) {
	m := newMemStore(1 << 20)
	r := NewReader(m, 0, 16)
	require.NoError(t, r.Close())

	_, err := r.ReadAt(make([]byte, 1), 0)
	require.ErrorIs(t, err, ErrReaderClosed)
	_, err = r.WriteAt(make([]byte, 1), 0)
	require.ErrorIs(t, err, ErrReaderClosed)

	// Close is idempotent and the store stays open.
	require.NoError(t, r.Close())
	assert.False(t, m.closed)
}

func TestConcurrentReaders(t *testing.T) {
	m := newMemStore(1 << 20)
	m.put(0, []byte{0xAA})
	m.put(512*format.BlockSize, []byte{0xBB})

	// Readers hold no shared cursor state; overlapping windows are safe
	// for read-only use.
	r1 := NewReader(m, 0, 1024)
	r2 := NewReader(m, 512, 512)

	done := make(chan error, 2)
	go func() {
		p := make([]byte, 1)
		_, err := r1.ReadAt(p, 0)
		done <- err
	}()
	go func() {
		p := make([]byte, 1)
		_, err := r2.ReadAt(p, 0)
		done <- err
	}()
	require.NoError(t, <-done)
	require.NoError(t, <-done)
}
