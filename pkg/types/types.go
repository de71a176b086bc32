package types

// Device represents one NVMe device discovered by enumeration.
type Device struct {
	Path     string // device node, e.g. /dev/nvme0n1
	Model    string
	Serial   string
	Firmware string
	Capacity *int64 // bytes, nil when the tool reported none
}

// HealthReport holds SMART-style health attributes for a device.
// Every field is optional; a nil field renders as "Unknown" without
// affecting any other field.
type HealthReport struct {
	Temperature      *int64 // raw controller units (Kelvin-like)
	AvailableSpare   *int64 // percent
	SpareThreshold   *int64 // percent
	PercentageUsed   *int64 // percent of rated life
	DataUnitsRead    *int64
	DataUnitsWritten *int64
	PowerCycles      *int64
	PowerOnHours     *int64
	UnsafeShutdowns  *int64
	MediaErrors      *int64
	ErrorLogEntries  *int64
}

// ErrorLog wraps the device error-log entries. A nil *ErrorLog means the
// query produced no data; a non-nil value with empty Entries means the
// device has no errors logged. The renderer treats the two differently.
type ErrorLog struct {
	Entries []ErrorLogEntry
}

// ErrorLogEntry is a single logged controller error.
type ErrorLogEntry struct {
	ErrorCount *int64
	CommandID  *int64
	Status     *int64
}

// FirmwareSlot describes one firmware slot on a device. Slot numbers are
// assigned by 1-based position in the returned list, not by any field
// inside the tool output.
type FirmwareSlot struct {
	Slot     int
	Revision string
	Valid    *bool
	Active   *bool
}

// SelfTestStatus reports the device's self-test state. Empty strings
// render as "Unknown".
type SelfTestStatus struct {
	CurrentOperation string
	LastResult       string
}

// Telemetry bundles a device with its four optional telemetry records.
// Each record is independently nullable; the renderer omits sections
// whose record is absent.
type Telemetry struct {
	Device        Device
	Health        *HealthReport
	ErrorLog      *ErrorLog
	FirmwareSlots []FirmwareSlot
	SelfTest      *SelfTestStatus
}
