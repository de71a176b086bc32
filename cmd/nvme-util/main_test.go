package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tiger423/nvme-util/pkg/types"
)

func i64(v int64) *int64 { return &v }

// fakeTool drives the inspect loop without a real nvme-cli.
type fakeTool struct {
	available      bool
	devices        []types.Device
	health         *types.HealthReport
	selfTestOutput string
	selfTestCalls  []string
}

func (f *fakeTool) IsAvailable() bool { return f.available }
func (f *fakeTool) ListDevices(context.Context) []types.Device { return f.devices }
func (f *fakeTool) SmartLog(context.Context, string) *types.HealthReport {
	return f.health
}
func (f *fakeTool) ErrorLog(context.Context, string) *types.ErrorLog {
	return &types.ErrorLog{}
}
func (f *fakeTool) FirmwareLog(context.Context, string) []types.FirmwareSlot { return nil }
func (f *fakeTool) SelfTestStatus(context.Context, string) *types.SelfTestStatus {
	return nil
}
func (f *fakeTool) StartSelfTest(_ context.Context, device, mode string) (string, error) {
	f.selfTestCalls = append(f.selfTestCalls, device+" "+mode)
	if f.selfTestOutput == "" {
		return "", errors.New("exit status 1")
	}
	return f.selfTestOutput, nil
}

func TestInspectNoDevices(t *testing.T) {
	tool := &fakeTool{available: true}

	var buf bytes.Buffer
	require.NoError(t, inspect(context.Background(), &buf, tool, zap.NewNop(), ""))

	assert.Equal(t, "No NVMe devices found.\n", buf.String())
}

func TestInspectToolMissing(t *testing.T) {
	tool := &fakeTool{available: false, devices: []types.Device{{Path: "/dev/nvme0n1"}}}

	var buf bytes.Buffer
	require.NoError(t, inspect(context.Background(), &buf, tool, zap.NewNop(), ""))

	// Enumeration is skipped entirely when the tool is absent.
	assert.Equal(t, "No NVMe devices found.\n", buf.String())
}

func TestInspectRendersEachDevice(t *testing.T) {
	tool := &fakeTool{
		available: true,
		devices: []types.Device{
			{Path: "/dev/nvme0n1", Model: "A", Serial: "S1", Firmware: "F1"},
			{Path: "/dev/nvme1n1", Model: "B", Serial: "S2", Firmware: "F2"},
		},
		health: &types.HealthReport{Temperature: i64(311)},
	}

	var buf bytes.Buffer
	require.NoError(t, inspect(context.Background(), &buf, tool, zap.NewNop(), ""))
	out := buf.String()

	assert.Contains(t, out, "Detected 2 NVMe SSD(s).\n")
	assert.Less(t, strings.Index(out, "=== /dev/nvme0n1 ==="), strings.Index(out, "=== /dev/nvme1n1 ==="))
	assert.Contains(t, out, "Temperature: 311 K (37.9 °C)\n")
	assert.Empty(t, tool.selfTestCalls)
}

func TestInspectStartsSelfTestPerDevice(t *testing.T) {
	tool := &fakeTool{
		available:      true,
		devices:        []types.Device{{Path: "/dev/nvme0n1"}},
		selfTestOutput: "Device self-test started",
	}

	var buf bytes.Buffer
	require.NoError(t, inspect(context.Background(), &buf, tool, zap.NewNop(), "short"))
	out := buf.String()

	assert.Contains(t, out, "Starting short self-test on /dev/nvme0n1...\n")
	assert.Contains(t, out, "Self-test command output:\nDevice self-test started\n")
	assert.Equal(t, []string{"/dev/nvme0n1 short"}, tool.selfTestCalls)
}

func TestInspectSelfTestFailureIsNotFatal(t *testing.T) {
	tool := &fakeTool{
		available: true,
		devices:   []types.Device{{Path: "/dev/nvme0n1"}},
		// StartSelfTest fails
		selfTestOutput: "",
	}

	var buf bytes.Buffer
	require.NoError(t, inspect(context.Background(), &buf, tool, zap.NewNop(), "long"))

	assert.Contains(t, buf.String(), "Starting long self-test on /dev/nvme0n1...\n")
	assert.NotContains(t, buf.String(), "Self-test command output:")
}

func TestSelfTestFlagValidation(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"", false},
		{"short", false},
		{"long", false},
		{"extended", true},
		{"1", true},
	}

	for _, tt := range tests {
		t.Run("mode "+tt.mode, func(t *testing.T) {
			selfTestMode = tt.mode
			defer func() { selfTestMode = "" }()

			err := rootCmd.PreRunE(rootCmd, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
