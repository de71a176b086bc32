package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tiger423/nvme-util/internal/collector"
	"github.com/tiger423/nvme-util/internal/config"
	"github.com/tiger423/nvme-util/internal/nvme"
	"github.com/tiger423/nvme-util/internal/report"
	"github.com/tiger423/nvme-util/pkg/types"
)

var (
	selfTestMode string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "nvme-util",
	Short: "NVMe SSD inspector",
	Long: `nvme-util inventories attached NVMe devices via nvme-cli, prints a
health report for each, and can optionally start a device self-test.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		switch selfTestMode {
		case "", nvme.SelfTestShort, nvme.SelfTestLong:
			return nil
		default:
			return fmt.Errorf("invalid --self-test value %q (choose %q or %q)",
				selfTestMode, nvme.SelfTestShort, nvme.SelfTestLong)
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&selfTestMode, "self-test", "",
		"run a self-test on all NVMe drives (short|long)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "",
		"log level, overrides NVME_UTIL_LOG_LEVEL")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := setupLogger(cfg.LogLevel)
	defer logger.Sync()

	tool := nvme.New(cfg.Binary, nvme.NewRunner(cfg.CommandTimeout), logger)
	if tool.IsAvailable() {
		logger.Debug("using nvme-cli", zap.String("version", tool.GetVersion()))
	}
	return inspect(cmd.Context(), os.Stdout, tool, logger, selfTestMode)
}

// inspect enumerates devices and prints the per-device report, starting a
// self-test afterwards when a mode was requested. Devices are processed
// strictly one at a time.
func inspect(ctx context.Context, w io.Writer, tool nvme.Querier, logger *zap.Logger, selfTest string) error {
	var devices []types.Device
	if tool.IsAvailable() {
		devices = tool.ListDevices(ctx)
	} else {
		logger.Warn("nvme-cli not installed; install it with your package manager")
	}

	if len(devices) == 0 {
		fmt.Fprintln(w, "No NVMe devices found.")
		return nil
	}
	fmt.Fprintf(w, "Detected %d NVMe SSD(s).\n", len(devices))

	c := collector.New(tool, logger)
	for _, dev := range devices {
		report.Render(w, c.Collect(ctx, dev))

		if selfTest == "" {
			continue
		}
		fmt.Fprintf(w, "\nStarting %s self-test on %s...\n", selfTest, dev.Path)
		out, err := tool.StartSelfTest(ctx, dev.Path, selfTest)
		if err != nil || out == "" {
			continue
		}
		fmt.Fprintf(w, "\nSelf-test command output:\n%s\n", out)
	}
	return nil
}

func setupLogger(level string) *zap.Logger {
	loggerCfg := zap.NewDevelopmentConfig()
	loggerCfg.OutputPaths = []string{"stderr"}
	loggerCfg.ErrorOutputPaths = []string{"stderr"}

	if atomicLevel, err := zap.ParseAtomicLevel(level); err == nil {
		loggerCfg.Level = atomicLevel
	}

	logger, err := loggerCfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
