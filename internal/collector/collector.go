// Package collector gathers per-device telemetry from the NVMe tool.
package collector

import (
	"context"

	"go.uber.org/zap"

	"github.com/tiger423/nvme-util/internal/nvme"
	"github.com/tiger423/nvme-util/pkg/types"
)

// Collector runs the telemetry queries for one device at a time. Queries
// are issued sequentially in a fixed order; each failure is isolated and
// leaves the other records untouched.
type Collector struct {
	tool nvme.Querier
	log  *zap.Logger
}

// New creates a new collector
func New(tool nvme.Querier, log *zap.Logger) *Collector {
	return &Collector{tool: tool, log: log}
}

// Collect runs the four telemetry queries for a device and bundles the
// results. Records for failed queries stay nil.
func (c *Collector) Collect(ctx context.Context, dev types.Device) types.Telemetry {
	c.log.Debug("collecting telemetry", zap.String("device", dev.Path))

	t := types.Telemetry{Device: dev}
	t.Health = c.tool.SmartLog(ctx, dev.Path)
	t.ErrorLog = c.tool.ErrorLog(ctx, dev.Path)
	t.FirmwareSlots = c.tool.FirmwareLog(ctx, dev.Path)
	t.SelfTest = c.tool.SelfTestStatus(ctx, dev.Path)
	return t
}
