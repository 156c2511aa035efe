package layout

import (
	"errors"
	"strconv"

	"github.com/yourusername/gigarandr/internal/config"
	"github.com/yourusername/gigarandr/internal/logging"
	"github.com/yourusername/gigarandr/internal/state"
	"github.com/yourusername/gigarandr/internal/types"
)

// ErrNothingToApply means no configuration entry resolved; xrandr must not run
var ErrNothingToApply = errors.New("no monitor configuration entry matched the connected monitors")

// OutputDirective is the configuration of a single output in a Plan
type OutputDirective struct {
	Name     string          `json:"name"`               // Resolved connector name
	Source   string          `json:"source,omitempty"`   // Keyword from configuration, empty for generated entries
	Mode     string          `json:"mode,omitempty"`     // Explicit mode, empty means --auto
	Off      bool            `json:"off,omitempty"`      // Disable the output
	Primary  bool            `json:"primary,omitempty"`  // Emit --primary
	Position *PlacedPosition `json:"position,omitempty"` // Relative placement, nil if none
	Rate     *float64        `json:"rate,omitempty"`     // Refresh rate, nil if none
}

// PlacedPosition is a position whose reference resolved to a connected output
type PlacedPosition struct {
	Direction types.Direction `json:"direction"`
	Relative  string          `json:"relative"`
}

// Args renders the directive's xrandr tokens
func (d OutputDirective) Args() []string {
	args := []string{"--output", d.Name}
	if d.Off {
		return append(args, "--off")
	}
	if d.Mode != "" {
		args = append(args, "--mode", d.Mode)
	} else {
		args = append(args, "--auto")
	}
	if d.Primary {
		args = append(args, "--primary")
	}
	if d.Position != nil {
		args = append(args, d.Position.Direction.Flag(), d.Position.Relative)
	}
	if d.Rate != nil {
		args = append(args, "--rate", FormatRate(*d.Rate))
	}
	return args
}

// Plan is the ordered set of output directives for one xrandr invocation
type Plan struct {
	Outputs []OutputDirective `json:"outputs"`
}

// Args renders the full xrandr argument list in directive order
func (p *Plan) Args() []string {
	var args []string
	for _, d := range p.Outputs {
		args = append(args, d.Args()...)
	}
	return args
}

// Empty reports whether the plan has no directives
func (p *Plan) Empty() bool {
	return p == nil || len(p.Outputs) == 0
}

// DisableVanished appends --off directives for monitors active in the
// previous run that are no longer connected. Names are sorted so repeated
// runs emit the same sequence.
func (p *Plan) DisableVanished(monitors []types.Monitor, previous state.MonitorState) []string {
	vanished := previous.Missing(monitors)
	for _, name := range vanished {
		logging.Info().Str("monitor", name).Msg("disabling monitor that is no longer connected")
		p.Outputs = append(p.Outputs, OutputDirective{Name: name, Off: true})
	}
	return vanished
}

// FormatRate renders a refresh rate as the shortest decimal text
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// Builder turns configuration entries into a Plan
type Builder struct {
	Resolver Resolver
}

// Build builds a plan using the default resolver
func Build(monitors []types.Monitor, entries []config.MonitorConfig) (*Plan, error) {
	return Builder{}.Build(monitors, entries)
}

// Build walks entries in declared order and emits one directive per entry
// whose name resolves. Returns ErrNothingToApply when none do.
func (b Builder) Build(monitors []types.Monitor, entries []config.MonitorConfig) (*Plan, error) {
	plan := &Plan{}

	for i, entry := range entries {
		name, ok := b.Resolver.Resolve(monitors, entry.Name)
		if !ok {
			logging.Warn().Int("entry", i).Str("name", entry.Name).Msg("skipping monitor entry")
			continue
		}

		d := OutputDirective{
			Name:    name,
			Source:  entry.Name,
			Mode:    entry.Mode,
			Off:     entry.Off,
			Primary: entry.Primary && !entry.Off,
		}

		if !entry.Off {
			if entry.Position != "" {
				d.Position = b.placement(monitors, i, name, entry.Position)
			}
			if entry.RefreshRate != nil {
				rate := *entry.RefreshRate
				d.Rate = &rate
			}
		}

		logging.Debug().Int("entry", i).Str("monitor", name).Strs("args", d.Args()).Msg("built directive")
		plan.Outputs = append(plan.Outputs, d)
	}

	if plan.Empty() {
		return plan, ErrNothingToApply
	}
	return plan, nil
}

// placement resolves a position clause. Any failure drops only the clause.
func (b Builder) placement(monitors []types.Monitor, entry int, self, raw string) *PlacedPosition {
	pos, err := types.ParsePosition(raw)
	if err != nil {
		logging.Warn().Int("entry", entry).Str("monitor", self).Err(err).Msg("ignoring position")
		return nil
	}

	ref, ok := b.Resolver.ResolveKeyword(monitors, pos.Reference)
	if !ok {
		logging.Warn().Int("entry", entry).Str("monitor", self).Str("position", raw).Msg("ignoring position with unresolved reference")
		return nil
	}
	if ref == self {
		logging.Warn().Int("entry", entry).Str("monitor", self).Str("position", raw).Msg("ignoring position relative to itself")
		return nil
	}

	return &PlacedPosition{Direction: pos.Direction, Relative: ref}
}
