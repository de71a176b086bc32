package nvme

import (
	"context"

	"github.com/tiger423/nvme-util/pkg/types"
)

// Querier defines the operations the inspection pipeline needs from the
// external NVMe tool. Decoupling the collector and report loop from the
// concrete Tool lets them run against a fake in tests.
type Querier interface {
	// IsAvailable checks if the tool is available on the system
	IsAvailable() bool

	// ListDevices enumerates attached NVMe devices
	ListDevices(ctx context.Context) []types.Device

	// SmartLog returns SMART/health attributes, nil on failure
	SmartLog(ctx context.Context, device string) *types.HealthReport

	// ErrorLog returns the device error log, nil on failure
	ErrorLog(ctx context.Context, device string) *types.ErrorLog

	// FirmwareLog returns the device firmware slots
	FirmwareLog(ctx context.Context, device string) []types.FirmwareSlot

	// SelfTestStatus returns the self-test state, nil on failure
	SelfTestStatus(ctx context.Context, device string) *types.SelfTestStatus

	// StartSelfTest issues a self-test start command
	StartSelfTest(ctx context.Context, device, mode string) (string, error)
}

var _ Querier = (*Tool)(nil)
