// Package nvme wraps the nvme-cli tool: it invokes the external binary,
// parses its JSON output, and normalizes the result into telemetry records.
// Every query degrades to "no data" on failure; nothing in this package
// returns a partially corrupt structure.
package nvme

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tiger423/nvme-util/internal/utils"
	"github.com/tiger423/nvme-util/pkg/types"
)

// Self-test modes accepted by StartSelfTest.
const (
	SelfTestShort = "short"
	SelfTestLong  = "long"
)

// unknown is the placeholder applied when the tool omits a string field.
const unknown = "Unknown"

// selfTestCodes maps a self-test mode to the code passed to
// nvme device-self-test -s.
var selfTestCodes = map[string]string{
	SelfTestShort: "1",
	SelfTestLong:  "2",
}

// Tool represents the nvme CLI tool.
type Tool struct {
	bin string
	run Runner
	log *zap.Logger
}

// New creates a Tool invoking the given binary through the runner.
func New(bin string, run Runner, log *zap.Logger) *Tool {
	return &Tool{bin: bin, run: run, log: log}
}

// IsAvailable checks if the nvme CLI is available on the system.
func (t *Tool) IsAvailable() bool {
	return utils.CommandExists(t.bin)
}

// GetVersion returns the nvme CLI version.
func (t *Tool) GetVersion() string {
	if !t.IsAvailable() {
		return ""
	}

	version, err := utils.GetToolVersion(t.bin, "version")
	if err != nil {
		return "unknown"
	}
	return version
}

// ListDevices returns the NVMe devices reported by nvme list, in the
// tool's original order. A missing or malformed device list yields an
// empty slice, not an error.
func (t *Tool) ListDevices(ctx context.Context) []types.Device {
	var out listOutput
	if !t.runJSON(ctx, &out, "list", "-o", "json") {
		return nil
	}

	devices := make([]types.Device, 0, len(out.Devices))
	for _, d := range out.Devices {
		dev := types.Device{
			Path:     d.DevicePath,
			Model:    stringOr(d.ModelNumber, unknown),
			Serial:   stringOr(d.SerialNumber, unknown),
			Firmware: stringOr(d.Firmware, unknown),
			Capacity: d.PhysicalSize,
		}
		if dev.Capacity == nil {
			dev.Capacity = d.UsedBytes
		}
		devices = append(devices, dev)
	}
	return devices
}

// SmartLog returns the SMART/health attributes for a device, or nil when
// the query fails.
func (t *Tool) SmartLog(ctx context.Context, device string) *types.HealthReport {
	var out smartLogOutput
	if !t.runJSON(ctx, &out, "smart-log", device, "-o", "json") {
		return nil
	}

	return &types.HealthReport{
		Temperature:      out.Temperature,
		AvailableSpare:   out.AvailableSpare,
		SpareThreshold:   out.SpareThreshold,
		PercentageUsed:   out.PercentageUsed,
		DataUnitsRead:    out.DataUnitsRead,
		DataUnitsWritten: out.DataUnitsWritten,
		PowerCycles:      out.PowerCycles,
		PowerOnHours:     out.PowerOnHours,
		UnsafeShutdowns:  out.UnsafeShutdowns,
		MediaErrors:      out.MediaErrors,
		ErrorLogEntries:  out.ErrorLogEntries,
	}
}

// ErrorLog returns the device error log, or nil when the query fails.
// A device with no logged errors yields a non-nil log with no entries.
func (t *Tool) ErrorLog(ctx context.Context, device string) *types.ErrorLog {
	var out errorLogOutput
	if !t.runJSON(ctx, &out, "error-log", device, "-o", "json") {
		return nil
	}

	log := &types.ErrorLog{Entries: make([]types.ErrorLogEntry, 0, len(out.ErrorLog))}
	for _, e := range out.ErrorLog {
		log.Entries = append(log.Entries, types.ErrorLogEntry{
			ErrorCount: e.ErrorCount,
			CommandID:  e.CommandID,
			Status:     e.Status,
		})
	}
	return log
}

// FirmwareLog returns the device firmware slots. Malformed entries in the
// tool's slot list are skipped without consuming a slot number; slots are
// numbered by 1-based position in the returned list.
func (t *Tool) FirmwareLog(ctx context.Context, device string) []types.FirmwareSlot {
	var out fwLogOutput
	if !t.runJSON(ctx, &out, "fw-log", device, "-o", "json") {
		return nil
	}

	var slots []types.FirmwareSlot
	for _, raw := range out.FwLog {
		var s fwSlot
		if err := json.Unmarshal(raw, &s); err != nil || !isJSONObject(raw) {
			continue
		}

		slot := types.FirmwareSlot{
			Slot:     len(slots) + 1,
			Revision: unknown,
			Valid:    s.Valid,
			Active:   s.Active,
		}
		if s.Revision != nil {
			slot.Revision = *s.Revision
		}
		slots = append(slots, slot)
	}
	return slots
}

// SelfTestStatus returns the current self-test operation and last result
// for a device, or nil when the query fails.
func (t *Tool) SelfTestStatus(ctx context.Context, device string) *types.SelfTestStatus {
	var out selfTestOutput
	if !t.runJSON(ctx, &out, "device-self-test", device, "-n", "0", "-o", "json") {
		return nil
	}

	return &types.SelfTestStatus{
		CurrentOperation: out.CurrentOperation,
		LastResult:       out.Result,
	}
}

// StartSelfTest issues a self-test start command and returns the raw
// acknowledgment text. The mode is validated before anything is invoked;
// the call is fire-and-forget and does not wait for test completion.
func (t *Tool) StartSelfTest(ctx context.Context, device, mode string) (string, error) {
	code, ok := selfTestCodes[mode]
	if !ok {
		return "", fmt.Errorf("invalid self-test mode %q", mode)
	}

	out, err := t.runText(ctx, "device-self-test", device, "-s", code)
	if err != nil {
		return "", err
	}
	return out, nil
}

// runJSON invokes the tool and unmarshals its stdout into out. Execution
// failure and parse failure are handled identically: one diagnostic naming
// the command, and false to the caller.
func (t *Tool) runJSON(ctx context.Context, out any, args ...string) bool {
	raw, err := t.run.Run(ctx, t.bin, args...)
	if err != nil {
		t.log.Warn("command failed", zap.String("cmd", t.cmdline(args)), zap.Error(err))
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		t.log.Warn("command output is not valid JSON",
			zap.String("cmd", t.cmdline(args)), zap.Error(err))
		return false
	}
	return true
}

// runText invokes the tool and returns trimmed stdout.
func (t *Tool) runText(ctx context.Context, args ...string) (string, error) {
	raw, err := t.run.Run(ctx, t.bin, args...)
	if err != nil {
		t.log.Warn("command failed", zap.String("cmd", t.cmdline(args)), zap.Error(err))
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (t *Tool) cmdline(args []string) string {
	return t.bin + " " + strings.Join(args, " ")
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// isJSONObject reports whether raw is a JSON object. json.Unmarshal into a
// struct happily accepts null, so a positional slot entry additionally has
// to start with '{' to count.
func isJSONObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}
