package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesConsoleAndFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() {
		Close()
		Logger = prev
	})

	var console bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "nested", "gigarandr.log")

	require.NoError(t, Init(Options{LogFile: logPath, Console: &console, NoColor: true}))

	Info().Str("monitor", "eDP-1").Msg("configured")
	Debug().Msg("hidden at info level")

	assert.Contains(t, console.String(), "configured")
	assert.Contains(t, console.String(), "monitor=eDP-1")
	assert.NotContains(t, console.String(), "hidden at info level")

	Close()
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"msg":"configured"`)
	assert.Contains(t, line, `"time":`)
}

func TestInitDebugLevel(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	var console bytes.Buffer
	require.NoError(t, Init(Options{Console: &console, NoColor: true, Debug: true}))

	Debug().Msg("visible")
	assert.Contains(t, console.String(), "visible")
}

func TestInitUnwritableLogFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	var console bytes.Buffer
	err := Init(Options{LogFile: filepath.Join(blocker, "sub", "x.log"), Console: &console, NoColor: true})
	assert.Error(t, err)

	Warn().Msg("still logging")
	assert.Contains(t, console.String(), "still logging")
}

func TestSetOutput(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	var buf bytes.Buffer
	SetOutput(&buf)
	Warn().Str("keyword", "external-3").Msg("unresolved")

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"keyword":"external-3"`)
}
