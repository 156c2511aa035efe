package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/gigarandr/internal/layout"
	"github.com/yourusername/gigarandr/internal/state"
	"github.com/yourusername/gigarandr/internal/types"
)

// PrintMonitorsTable prints the connected monitor inventory
func PrintMonitorsTable(w io.Writer, monitors []types.Monitor, resolver layout.Resolver) {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Geometry", "Preferred", "Max Rate", "Modes", "Type")

	externals := 0
	for _, m := range monitors {
		var indicators []string
		if m.Primary {
			indicators = append(indicators, "primary")
		}
		if resolver.IsLaptop(m.Name) {
			indicators = append(indicators, "laptop")
		} else {
			externals++
			indicators = append(indicators, fmt.Sprintf("external-%d", externals))
		}

		preferred, rate := "-", "-"
		if p := m.PreferredMode(); p != nil {
			preferred = p.String()
			if r := p.MaxRate(); r > 0 {
				rate = layout.FormatRate(r)
			}
		}

		table.Append(
			m.Name,
			m.GeometryString(),
			preferred,
			rate,
			fmt.Sprintf("%d", len(m.Modes)),
			strings.Join(indicators, ", "),
		)
	}

	table.Render()
}

// PrintPlanTable prints one row per output directive followed by the
// command line that applies them
func PrintPlanTable(w io.Writer, plan *layout.Plan, command string) {
	if plan.Empty() {
		fmt.Fprintln(w, "Nothing to apply: no configuration entry matched the connected monitors")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Output", "Entry", "Mode", "Primary", "Position", "Rate")

	for i, d := range plan.Outputs {
		source := d.Source
		if source == "" {
			source = "(vanished)"
		}

		mode := "auto"
		switch {
		case d.Off:
			mode = "off"
		case d.Mode != "":
			mode = d.Mode
		}

		primary := ""
		if d.Primary {
			primary = "yes"
		}

		position := "-"
		if d.Position != nil {
			position = d.Position.Direction.String() + " " + d.Position.Relative
		}

		rate := "-"
		if d.Rate != nil {
			rate = layout.FormatRate(*d.Rate)
		}

		table.Append(fmt.Sprintf("%d", i+1), d.Name, source, mode, primary, position, rate)
	}

	table.Render()
	fmt.Fprintf(w, "\n%s\n", command)
}

// PrintStatus prints the monitors recorded by the last sync and how long ago it ran
func PrintStatus(w io.Writer, st state.MonitorState, lastSync time.Time, synced bool) {
	if !synced {
		fmt.Fprintln(w, "Last sync: never")
	} else {
		fmt.Fprintf(w, "Last sync: %s (%s)\n", humanize.Time(lastSync), lastSync.Format(time.RFC3339))
	}

	names := st.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No monitors recorded")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("Monitor", "Active")
	for _, name := range names {
		table.Append(name, "yes")
	}
	table.Render()
}
