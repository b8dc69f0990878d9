package rvth

// RVT-H Reader USB bridge identifiers, used by enumeration backends to
// filter candidate storage devices.
const (
	ReaderUSBVID = 0x057e
	ReaderUSBPID = 0x0304
)

// QueryEntry describes one candidate RVT-H Reader device found by an
// enumeration backend. This package consumes only DeviceName and Size; the
// descriptive strings are carried through for presentation layers.
type QueryEntry struct {
	// DeviceName is the OS path of the device, e.g. "/dev/sdc" or
	// "\\.\PhysicalDrive3". It is what Open expects.
	DeviceName string

	// USB bridge descriptors.
	USBVendor  string
	USBProduct string
	USBSerial  string

	// HDD descriptors, as reported through the bridge.
	HDDVendor   string
	HDDModel    string
	HDDFirmware string

	// Size is the HDD capacity in bytes.
	Size int64
}

// DeviceScanner enumerates candidate RVT-H Reader devices over a platform
// storage API. Implementations live outside this package; the scan result
// is an owned slice, valid independently of the scanner.
type DeviceScanner interface {
	// QueryDevices returns every attached RVT-H Reader. An empty slice
	// with a nil error means none were found.
	QueryDevices() ([]QueryEntry, error)
}
