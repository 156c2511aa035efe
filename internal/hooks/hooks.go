// Package hooks runs user-defined shell commands at lifecycle phases.
package hooks

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/yourusername/gigarandr/internal/logging"
	"github.com/yourusername/gigarandr/internal/types"
)

// ExecFunc runs one shell command. The default runs `<shell> -c <command>`.
type ExecFunc func(ctx context.Context, shell, command string, stdout, stderr io.Writer) error

// Runner executes hook commands. Hooks are best-effort: a failing command
// is logged and the remaining commands still run.
type Runner struct {
	Shell  string    // Defaults to "sh"
	Stdout io.Writer // Defaults to os.Stdout
	Stderr io.Writer // Defaults to os.Stderr
	DryRun bool      // Log commands instead of running them
	Exec   ExecFunc  // Defaults to shellExec
}

// Run executes commands for stage in declared order and reports how many failed
func (r *Runner) Run(ctx context.Context, stage types.Stage, commands []string) int {
	if len(commands) == 0 {
		logging.Debug().Str("stage", string(stage)).Msg("no hooks configured")
		return 0
	}

	failed := 0
	for i, command := range commands {
		if r.DryRun {
			logging.Info().Str("stage", string(stage)).Int("hook", i).Str("command", command).Msg("dry-run: would run hook")
			continue
		}

		logging.Info().Str("stage", string(stage)).Int("hook", i).Str("command", command).Msg("running hook")
		if err := r.exec()(ctx, r.shell(), command, r.stdout(), r.stderr()); err != nil {
			failed++
			logging.Warn().Str("stage", string(stage)).Int("hook", i).Str("command", command).Err(err).Msg("hook failed")
		}
	}
	return failed
}

func (r *Runner) shell() string {
	if r.Shell == "" {
		return "sh"
	}
	return r.Shell
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}

func (r *Runner) exec() ExecFunc {
	if r.Exec == nil {
		return shellExec
	}
	return r.Exec
}

func shellExec(ctx context.Context, shell, command string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
