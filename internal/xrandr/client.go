package xrandr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yourusername/gigarandr/internal/logging"
	"github.com/yourusername/gigarandr/internal/types"
)

const DefaultBinary = "xrandr"

var (
	// ErrQueryFailed is returned when the inventory query cannot run or exits non-zero
	ErrQueryFailed = errors.New("xrandr query failed")
	// ErrApplyFailed is returned when the layout command cannot run or exits non-zero
	ErrApplyFailed = errors.New("xrandr apply failed")
)

// Runner executes an external command and captures its output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs real processes. No timeout is applied.
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Client talks to the xrandr binary
type Client struct {
	Runner Runner
	Binary string
}

// NewClient creates a client using the given binary, or xrandr when empty
func NewClient(binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{Runner: ExecRunner{}, Binary: binary}
}

// Result holds the captured output of an apply invocation
type Result struct {
	Stdout string
	Stderr string
}

// Query runs `xrandr --query` and returns the connected monitors
func (c *Client) Query(ctx context.Context) ([]types.Monitor, error) {
	logging.Debug().Str("binary", c.Binary).Msg("querying monitors")

	stdout, stderr, err := c.Runner.Run(ctx, c.Binary, "--query")
	if err != nil {
		return nil, wrapExecError(ErrQueryFailed, err, stderr)
	}

	monitors := ParseQuery(string(stdout))
	logging.Debug().Int("count", len(monitors)).Msg("parsed inventory")
	return monitors, nil
}

// Apply runs xrandr with the given arguments. Stderr is returned even on
// success so callers can surface it.
func (c *Client) Apply(ctx context.Context, args []string) (Result, error) {
	logging.Info().Str("command", c.CommandLine(args)).Msg("applying layout")

	stdout, stderr, err := c.Runner.Run(ctx, c.Binary, args...)
	res := Result{
		Stdout: strings.TrimSpace(string(stdout)),
		Stderr: strings.TrimSpace(string(stderr)),
	}
	if err != nil {
		return res, wrapExecError(ErrApplyFailed, err, stderr)
	}
	return res, nil
}

// CommandLine renders the full command for display
func (c *Client) CommandLine(args []string) string {
	return strings.Join(append([]string{c.Binary}, args...), " ")
}

func wrapExecError(sentinel, err error, stderr []byte) error {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return fmt.Errorf("%w: %v: %s", sentinel, err, msg)
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}
