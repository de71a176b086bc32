package nvme

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Runner executes an external command and returns its standard output.
// The production implementation shells out; tests substitute a fake so
// parsing and reporting can run without a real nvme-cli.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands synchronously via os/exec. A non-zero timeout
// is applied per invocation through the context; zero leaves the call
// unbounded.
type execRunner struct {
	timeout time.Duration
}

// NewRunner creates a Runner backed by os/exec.
func NewRunner(timeout time.Duration) Runner {
	return &execRunner{timeout: timeout}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}
