package xrandr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dockedQuery = `Screen 0: minimum 320 x 200, current 2560 x 2520, maximum 16384 x 16384
eDP-1 connected primary 1920x1080+0+1440 (normal left inverted right x axis y axis) 344mm x 194mm
   1920x1080     60.01*+  60.01    59.97    59.96    48.00
   1680x1050     59.95    59.88
   1280x1024     60.02
HDMI-1 connected 2560x1440+0+0 (normal left inverted right x axis y axis) 597mm x 336mm
   2560x1440     59.95*+  74.97
   1920x1080     60.00    50.00    59.94
DP-1 disconnected (normal left inverted right x axis y axis)
DP-2 connected (normal left inverted right x axis y axis)
   3840x2160     60.00 +  30.00
   1920x1080i    60.00
HDMI-2 disconnected 1920x1080+1920+0 (normal left inverted right x axis y axis) 0mm x 0mm
`

type fakeRunner struct {
	stdout string
	stderr string
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func TestParseQuery(t *testing.T) {
	monitors := ParseQuery(dockedQuery)
	require.Len(t, monitors, 3)

	edp := monitors[0]
	assert.Equal(t, "eDP-1", edp.Name)
	assert.True(t, edp.Primary)
	assert.Equal(t, 1920, edp.Width)
	assert.Equal(t, 1080, edp.Height)
	assert.Equal(t, 0, edp.X)
	assert.Equal(t, 1440, edp.Y)
	require.Len(t, edp.Modes, 3)
	assert.True(t, edp.Modes[0].Current)
	assert.True(t, edp.Modes[0].Preferred)
	assert.Equal(t, []float64{60.01, 60.01, 59.97, 59.96, 48.00}, edp.Modes[0].Rates)

	hdmi := monitors[1]
	assert.Equal(t, "HDMI-1", hdmi.Name)
	assert.False(t, hdmi.Primary)
	assert.Equal(t, 2560, hdmi.Width)
	assert.Equal(t, 1440, hdmi.Height)
	assert.InDelta(t, 74.97, hdmi.Modes[0].MaxRate(), 0.001)

	dp := monitors[2]
	assert.Equal(t, "DP-2", dp.Name)
	assert.False(t, dp.Sized(), "inactive output has no current geometry")
	require.Len(t, dp.Modes, 2)
	assert.True(t, dp.Modes[0].Preferred, "preferred marker separated by a space")
	assert.False(t, dp.Modes[0].Current)
	assert.Equal(t, 1920, dp.Modes[1].Width, "interlaced mode parsed")

	w, h, ok := dp.Size()
	assert.True(t, ok)
	assert.Equal(t, 3840, w)
	assert.Equal(t, 2160, h)
}

func TestParseQuery_NegativeOffset(t *testing.T) {
	monitors := ParseQuery("DP-3 connected 1280x1024-1280+0 (normal) 0mm x 0mm\n")
	require.Len(t, monitors, 1)
	assert.Equal(t, -1280, monitors[0].X)
	assert.Equal(t, 0, monitors[0].Y)
	assert.Equal(t, 1280, monitors[0].Width)
}

func TestParseQuery_GeometryWithoutOffset(t *testing.T) {
	monitors := ParseQuery("VGA-1 connected 1024x768 (normal)\n")
	require.Len(t, monitors, 1)
	assert.Equal(t, 1024, monitors[0].Width)
	assert.Equal(t, 768, monitors[0].Height)
}

func TestParseQuery_Empty(t *testing.T) {
	assert.Empty(t, ParseQuery(""))
	assert.Empty(t, ParseQuery("Screen 0: minimum 8 x 8, current 0 x 0\nDP-1 disconnected\n"))
}

func TestClientQuery(t *testing.T) {
	runner := &fakeRunner{stdout: dockedQuery}
	c := &Client{Runner: runner, Binary: "xrandr"}

	monitors, err := c.Query(context.Background())
	require.NoError(t, err)
	assert.Len(t, monitors, 3)
	assert.Equal(t, "xrandr", runner.gotName)
	assert.Equal(t, []string{"--query"}, runner.gotArgs)
}

func TestClientQuery_Failure(t *testing.T) {
	runner := &fakeRunner{stderr: "Can't open display\n", err: errors.New("exit status 1")}
	c := &Client{Runner: runner, Binary: "xrandr"}

	_, err := c.Query(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.Contains(t, err.Error(), "Can't open display")
}

func TestClientApply(t *testing.T) {
	runner := &fakeRunner{stderr: "warning: output DP-9 not found; ignoring\n"}
	c := &Client{Runner: runner, Binary: "xrandr"}
	args := []string{"--output", "HDMI-1", "--auto", "--primary"}

	res, err := c.Apply(context.Background(), args)
	require.NoError(t, err)
	assert.Equal(t, args, runner.gotArgs)
	assert.Equal(t, "warning: output DP-9 not found; ignoring", res.Stderr)
}

func TestClientApply_Failure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	c := &Client{Runner: runner, Binary: "xrandr"}

	_, err := c.Apply(context.Background(), []string{"--output", "HDMI-1", "--auto"})
	assert.ErrorIs(t, err, ErrApplyFailed)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultBinary, c.Binary)
	assert.IsType(t, ExecRunner{}, c.Runner)
	assert.Equal(t, "xrandr --output eDP-1 --auto", c.CommandLine([]string{"--output", "eDP-1", "--auto"}))
}
