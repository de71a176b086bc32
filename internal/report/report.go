// Package report renders collected device telemetry as text. Rendering is
// a pure function of the records: no external command is invoked here, and
// no section depends on another section's data being present.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tiger423/nvme-util/internal/utils"
	"github.com/tiger423/nvme-util/pkg/types"
)

const unknown = "Unknown"

// Render writes the report for one device. Sections whose telemetry record
// is absent are omitted outright; individual missing fields inside a
// present section render as "Unknown".
func Render(w io.Writer, t types.Telemetry) {
	renderHeader(w, t.Device)

	if t.Health != nil {
		renderHealth(w, t.Health)
	}
	if t.ErrorLog != nil {
		renderErrorLog(w, t.ErrorLog)
	}
	if len(t.FirmwareSlots) > 0 {
		renderFirmwareSlots(w, t.FirmwareSlots)
	}
	if t.SelfTest != nil {
		renderSelfTest(w, t.SelfTest)
	}
}

func renderHeader(w io.Writer, d types.Device) {
	fmt.Fprintf(w, "\n=== %s ===\n", d.Path)
	fmt.Fprintf(w, "Model: %s\n", stringOrUnknown(d.Model))
	fmt.Fprintf(w, "Serial: %s\n", stringOrUnknown(d.Serial))
	fmt.Fprintf(w, "Firmware: %s\n", stringOrUnknown(d.Firmware))
	fmt.Fprintf(w, "Capacity: %s\n", utils.FormatBytesPtr(d.Capacity))
}

func renderHealth(w io.Writer, h *types.HealthReport) {
	fmt.Fprintf(w, "\n--- SMART / Health Info ---\n")
	fmt.Fprintf(w, "Temperature: %s\n", temperature(h.Temperature))
	fmt.Fprintf(w, "Available Spare: %s (Threshold: %s)\n",
		percent(h.AvailableSpare), percent(h.SpareThreshold))
	fmt.Fprintf(w, "Percentage Used: %s\n", percent(h.PercentageUsed))
	fmt.Fprintf(w, "Data Units Read: %s\n", number(h.DataUnitsRead))
	fmt.Fprintf(w, "Data Units Written: %s\n", number(h.DataUnitsWritten))
	fmt.Fprintf(w, "Power Cycles: %s\n", number(h.PowerCycles))
	fmt.Fprintf(w, "Power On Hours: %s\n", number(h.PowerOnHours))
	fmt.Fprintf(w, "Unsafe Shutdowns: %s\n", number(h.UnsafeShutdowns))
	fmt.Fprintf(w, "Media Errors: %s\n", number(h.MediaErrors))
	fmt.Fprintf(w, "Error Log Entries: %s\n", number(h.ErrorLogEntries))
}

func renderErrorLog(w io.Writer, log *types.ErrorLog) {
	fmt.Fprintf(w, "\n--- Error Log ---\n")
	if len(log.Entries) == 0 {
		fmt.Fprintf(w, "  No errors logged.\n")
		return
	}
	for _, e := range log.Entries {
		fmt.Fprintf(w, "  ErrorCount=%s, CmdID=%s, Status=%s\n",
			number(e.ErrorCount), number(e.CommandID), number(e.Status))
	}
}

func renderFirmwareSlots(w io.Writer, slots []types.FirmwareSlot) {
	fmt.Fprintf(w, "\n--- Firmware Slots ---\n")
	for _, s := range slots {
		fmt.Fprintf(w, "  Slot %d: Revision=%s, Active=%s, Valid=%s\n",
			s.Slot, s.Revision, boolean(s.Active), boolean(s.Valid))
	}
}

func renderSelfTest(w io.Writer, st *types.SelfTestStatus) {
	fmt.Fprintf(w, "\n--- Device Self-Test Status ---\n")
	fmt.Fprintf(w, "Current Operation: %s\n", stringOrUnknown(st.CurrentOperation))
	fmt.Fprintf(w, "Last Result: %s\n", stringOrUnknown(st.LastResult))
}

// temperature renders the raw Kelvin-like value together with its Celsius
// conversion. The raw value is trusted as-is; implausible readings still
// render both forms.
func temperature(v *int64) string {
	if v == nil {
		return unknown
	}
	return fmt.Sprintf("%d K (%.1f °C)", *v, float64(*v)-273.15)
}

func number(v *int64) string {
	if v == nil {
		return unknown
	}
	return strconv.FormatInt(*v, 10)
}

func percent(v *int64) string {
	if v == nil {
		return unknown
	}
	return strconv.FormatInt(*v, 10) + "%"
}

func boolean(v *bool) string {
	if v == nil {
		return unknown
	}
	return strconv.FormatBool(*v)
}

func stringOrUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
