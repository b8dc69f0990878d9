package format

import (
	"fmt"
	"time"
)

const (
	mdateLayout = "20060102"
	mtimeLayout = "150405"
)

// EncodeTimestamp writes t into the fixed-width ASCII date and time fields
// of an entry record. The buffer must be at least EntrySize bytes.
func EncodeTimestamp(b []byte, t time.Time) {
	t = t.UTC()
	copy(b[EntryMDateOffset:EntryMDateOffset+EntryMDateLen], t.Format(mdateLayout))
	copy(b[EntryMTimeOffset:EntryMTimeOffset+EntryMTimeLen], t.Format(mtimeLayout))
}

// ParseTimestamp converts the ASCII date and time fields of an entry record
// into a time.Time. Garbage fields return ErrBadTimestamp; callers generally
// treat the timestamp as informational and keep the entry.
func ParseTimestamp(b []byte) (time.Time, error) {
	mdate := string(b[EntryMDateOffset : EntryMDateOffset+EntryMDateLen])
	mtime := string(b[EntryMTimeOffset : EntryMTimeOffset+EntryMTimeLen])
	t, err := time.Parse(mdateLayout+mtimeLayout, mdate+mtime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrBadTimestamp, mdate, mtime)
	}
	return t, nil
}
