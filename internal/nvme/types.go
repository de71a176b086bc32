package nvme

import "encoding/json"

// listOutput represents the JSON output from nvme list -o json
type listOutput struct {
	Devices []listDevice `json:"Devices"`
}

// listDevice is a single entry of the device list.
type listDevice struct {
	DevicePath   string `json:"DevicePath"`
	ModelNumber  string `json:"ModelNumber"`
	SerialNumber string `json:"SerialNumber"`
	Firmware     string `json:"Firmware"`
	PhysicalSize *int64 `json:"PhysicalSize"`
	UsedBytes    *int64 `json:"UsedBytes"`
}

// smartLogOutput represents the JSON output from nvme smart-log -o json.
// Fields are pointers so that attributes missing from the tool output stay
// distinguishable from zero values.
type smartLogOutput struct {
	Temperature      *int64 `json:"temperature"`
	AvailableSpare   *int64 `json:"avail_spare"`
	SpareThreshold   *int64 `json:"spare_thresh"`
	PercentageUsed   *int64 `json:"percent_used"`
	DataUnitsRead    *int64 `json:"data_units_read"`
	DataUnitsWritten *int64 `json:"data_units_written"`
	PowerCycles      *int64 `json:"power_cycles"`
	PowerOnHours     *int64 `json:"power_on_hours"`
	UnsafeShutdowns  *int64 `json:"unsafe_shutdowns"`
	MediaErrors      *int64 `json:"media_errors"`
	ErrorLogEntries  *int64 `json:"num_err_log_entries"`
}

// errorLogOutput represents the JSON output from nvme error-log -o json
type errorLogOutput struct {
	ErrorLog []errorLogEntry `json:"error_log"`
}

// errorLogEntry is a single error entry from the error log
type errorLogEntry struct {
	ErrorCount *int64 `json:"error_count"`
	CommandID  *int64 `json:"cid"`
	Status     *int64 `json:"status"`
}

// fwLogOutput represents the JSON output from nvme fw-log -o json. The
// slot list is kept raw because real-world output has been seen to mix
// non-object garbage between slot records.
type fwLogOutput struct {
	FwLog []json.RawMessage `json:"fw_log"`
}

// fwSlot is one well-formed slot record inside fw_log.
type fwSlot struct {
	Revision *string `json:"revision"`
	Valid    *bool   `json:"valid"`
	Active   *bool   `json:"active"`
}

// selfTestOutput represents the JSON output from
// nvme device-self-test <dev> -n 0 -o json
type selfTestOutput struct {
	CurrentOperation string `json:"current_operation"`
	Result           string `json:"result"`
}
