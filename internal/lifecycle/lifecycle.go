// Package lifecycle runs one monitor sync: hooks, inventory, layout, apply
// and state, in that order.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/gigarandr/internal/config"
	"github.com/yourusername/gigarandr/internal/layout"
	"github.com/yourusername/gigarandr/internal/logging"
	"github.com/yourusername/gigarandr/internal/state"
	"github.com/yourusername/gigarandr/internal/types"
	"github.com/yourusername/gigarandr/internal/xrandr"
)

// ErrNoMonitors is returned when the inventory reports no connected outputs
var ErrNoMonitors = errors.New("no connected monitors detected")

// Display queries and reconfigures outputs. *xrandr.Client implements it.
type Display interface {
	Query(ctx context.Context) ([]types.Monitor, error)
	Apply(ctx context.Context, args []string) (xrandr.Result, error)
	CommandLine(args []string) string
}

// StateStore remembers which monitors were active. *state.Store implements it.
type StateStore interface {
	Load() state.MonitorState
	Save(st state.MonitorState) error
}

// HookRunner runs the commands of one stage. *hooks.Runner implements it.
type HookRunner interface {
	Run(ctx context.Context, stage types.Stage, commands []string) int
}

// Deps are the collaborators of a run
type Deps struct {
	Config  *config.Config
	Display Display
	State   StateStore
	Hooks   HookRunner
	DryRun  bool // Build and report the command without applying or saving
}

// Report summarizes what a run saw and did
type Report struct {
	RunID          string             `json:"run_id"`
	Monitors       []types.Monitor    `json:"monitors"`
	Previous       state.MonitorState `json:"previous,omitempty"`
	Plan           *layout.Plan       `json:"plan,omitempty"`
	Vanished       []string           `json:"vanished,omitempty"`
	Command        string             `json:"command,omitempty"` // Empty when there was nothing to apply
	NothingToApply bool               `json:"nothing_to_apply,omitempty"`
	Applied        bool               `json:"applied"`
	ApplyStderr    string             `json:"apply_stderr,omitempty"`
	HookFailures   int                `json:"hook_failures"`
	StateSaved     bool               `json:"state_saved"`
}

// Run performs a full sync
func Run(ctx context.Context, d Deps) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	prev := logging.Replace(logging.With().Str("run_id", report.RunID).Logger())
	defer logging.Replace(prev)

	logging.Info().Bool("dry_run", d.DryRun).Msg("starting monitor sync")

	report.HookFailures += runHooks(ctx, d, types.StagePresync)

	if err := plan(ctx, d, report); err != nil {
		logging.Error().Err(err).Msg("sync aborted")
		return report, err
	}

	if report.NothingToApply {
		logging.Warn().Msg("nothing to apply, leaving outputs unchanged")
	} else if d.DryRun {
		logging.Info().Str("command", report.Command).Msg("dry-run: would apply layout")
	} else {
		res, err := d.Display.Apply(ctx, report.Plan.Args())
		report.ApplyStderr = res.Stderr
		if err != nil {
			logging.Error().Err(err).Str("command", report.Command).Msg("failed to apply layout")
			return report, err
		}
		if res.Stderr != "" {
			logging.Warn().Str("stderr", res.Stderr).Msg("xrandr reported warnings")
		}
		report.Applied = true
	}

	report.HookFailures += runHooks(ctx, d, types.StageSync)

	if d.DryRun {
		logging.Info().Strs("active", state.ActiveSet(report.Monitors).Names()).Msg("dry-run: would save state")
	} else if err := d.State.Save(state.ActiveSet(report.Monitors)); err != nil {
		logging.Warn().Err(err).Msg("failed to save monitor state")
	} else {
		report.StateSaved = true
	}

	report.HookFailures += runHooks(ctx, d, types.StagePostsync)

	logging.Info().
		Int("monitors", len(report.Monitors)).
		Bool("applied", report.Applied).
		Int("hook_failures", report.HookFailures).
		Msg("monitor sync finished")
	return report, nil
}

// Plan queries the inventory and builds the layout without side effects
func Plan(ctx context.Context, d Deps) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	prev := logging.Replace(logging.With().Str("run_id", report.RunID).Logger())
	defer logging.Replace(prev)

	if err := plan(ctx, d, report); err != nil {
		return report, err
	}
	return report, nil
}

func plan(ctx context.Context, d Deps, report *Report) error {
	monitors, err := d.Display.Query(ctx)
	if err != nil {
		return fmt.Errorf("failed to read monitor inventory: %w", err)
	}
	if len(monitors) == 0 {
		return ErrNoMonitors
	}
	report.Monitors = monitors

	names := make([]string, len(monitors))
	for i, m := range monitors {
		names[i] = m.Name
	}
	logging.Info().Strs("monitors", names).Msg("detected monitors")

	report.Previous = d.State.Load()

	b := layout.Builder{Resolver: layout.Resolver{LaptopPatterns: d.Config.Settings.LaptopPatterns}}
	p, err := b.Build(monitors, d.Config.Monitors)
	report.Plan = p
	if errors.Is(err, layout.ErrNothingToApply) {
		report.NothingToApply = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to build layout: %w", err)
	}

	report.Vanished = p.DisableVanished(monitors, report.Previous)
	report.Command = d.Display.CommandLine(p.Args())
	return nil
}

func runHooks(ctx context.Context, d Deps, stage types.Stage) int {
	if d.Hooks == nil || d.Config == nil {
		return 0
	}
	return d.Hooks.Run(ctx, stage, d.Config.Hooks.ForStage(stage))
}
