package rvth

import "errors"

// Domain errors are distinct, comparable values: callers can tell a policy
// refusal apart from an underlying I/O failure with errors.Is. I/O errors
// from the backing store are wrapped, never replaced.
var (
	// ErrNotRVTH indicates the store has no valid NHCD bank table magic.
	ErrNotRVTH = errors.New("rvth: not an RVT-H image")

	// ErrNotHDDImage indicates a bank-table operation on a standalone disc
	// image, which has no table.
	ErrNotHDDImage = errors.New("rvth: standalone disc image has no bank table")

	// ErrBankOutOfRange indicates a bank index >= the bank count.
	ErrBankOutOfRange = errors.New("rvth: bank index out of range")

	// ErrBankUnknown indicates an operation on a bank whose type could not
	// be recognized. Unknown banks are observe-only.
	ErrBankUnknown = errors.New("rvth: unknown bank type")

	// ErrBankDL2 indicates an operation on the second bank of a dual-layer
	// image, which is never independently selectable or writable.
	ErrBankDL2 = errors.New("rvth: second bank of a dual-layer image")

	// ErrBankEmpty indicates an operation that requires a populated bank.
	ErrBankEmpty = errors.New("rvth: bank is empty")

	// ErrBankIsDeleted indicates a delete of an already-deleted bank.
	ErrBankIsDeleted = errors.New("rvth: bank is already deleted")

	// ErrBankNotDeleted indicates an undelete of a bank that is not deleted.
	ErrBankNotDeleted = errors.New("rvth: bank is not deleted")

	// ErrNotADevice indicates a writability escalation on a store that is
	// not a device file. Standalone image files are never auto-escalated.
	ErrNotADevice = errors.New("rvth: not a device file")

	// ErrReaderClosed indicates an operation on a closed Reader.
	ErrReaderClosed = errors.New("rvth: reader is closed")

	// ErrOutOfRange indicates an access beyond a Reader's window. Accesses
	// are never silently truncated.
	ErrOutOfRange = errors.New("rvth: access beyond window bounds")
)
