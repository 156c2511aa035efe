package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/gigarandr/internal/config"
	"github.com/yourusername/gigarandr/internal/layout"
	"github.com/yourusername/gigarandr/internal/lifecycle"
	"github.com/yourusername/gigarandr/internal/output"
	"github.com/yourusername/gigarandr/internal/state"
	"github.com/yourusername/gigarandr/internal/xrandr"
)

var (
	showASCII  bool
	showWidth  int
	showHeight int
)

// syncCmd runs the full lifecycle
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Detect monitors and apply the configured layout",
	Long: `Runs presync hooks, queries xrandr, builds and applies the layout,
runs sync hooks, records the active monitors and runs postsync hooks.

Monitors that were active last time but are no longer connected are
switched off. With --dry-run nothing is executed or saved.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report, err := lifecycle.Run(cmd.Context(), newDeps(cfg, dryRun))
	if jsonOutput {
		if jerr := printJSON(report); jerr != nil {
			return jerr
		}
		return err
	}
	if err != nil {
		return err
	}

	switch {
	case report.NothingToApply:
		fmt.Println("Nothing to apply: no configuration entry matched the connected monitors")
	case dryRun:
		fmt.Println(report.Command)
	default:
		printSuccess(fmt.Sprintf("Applied layout to %d monitor(s)", len(report.Monitors)))
	}
	if report.HookFailures > 0 {
		keyColor.Fprintf(os.Stderr, "%d hook(s) failed, see log for details\n", report.HookFailures)
	}
	return nil
}

// monitorsCmd lists connected outputs
var monitorsCmd = &cobra.Command{
	Use:     "monitors",
	Aliases: []string{"list"},
	Short:   "List connected monitors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		monitors, err := xrandr.NewClient(cfg.Settings.Xrandr).Query(cmd.Context())
		if err != nil {
			return err
		}
		if len(monitors) == 0 {
			return lifecycle.ErrNoMonitors
		}

		if jsonOutput {
			return printJSON(monitors)
		}
		output.PrintMonitorsTable(os.Stdout, monitors, layout.Resolver{LaptopPatterns: cfg.Settings.LaptopPatterns})
		return nil
	},
}

// planCmd prints the command a sync would run
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the xrandr command the current config produces",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := buildPlan(cmd)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(report)
		}
		output.PrintPlanTable(os.Stdout, report.Plan, report.Command)
		return nil
	},
}

// showCmd draws the arrangement a sync would produce
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the planned monitor arrangement",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := buildPlan(cmd)
		if err != nil {
			return err
		}

		rects := layout.Arrange(report.Plan, report.Monitors)
		if jsonOutput {
			return printJSON(rects)
		}

		opts := output.DefaultVisualizationOptions()
		if showASCII {
			opts.UseUnicode = false
		}
		if showWidth > 0 {
			opts.MaxWidth = showWidth
		}
		if showHeight > 0 {
			opts.MaxHeight = showHeight
		}

		output.PrintArrangement(os.Stdout, output.VisualizeArrangement(report.Plan, rects, opts))
		return nil
	},
}

// statusCmd reports what the last sync recorded
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show monitors recorded by the last sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := state.NewStore(paths.StateFile)
		st := store.Load()
		modTime, synced := store.ModTime()

		if jsonOutput {
			result := map[string]interface{}{
				"state_file": paths.StateFile,
				"active":     st.Names(),
			}
			if synced {
				result["last_sync"] = modTime.Format(time.RFC3339)
			}
			return printJSON(result)
		}

		infoColor.Println(paths.StateFile)
		output.PrintStatus(os.Stdout, st, modTime, synced)
		return nil
	},
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Writes the default configuration to the config path. The format follows
the file extension (.json, .yaml/.yml or .toml). An existing file is kept
unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if force {
			if err := config.Write(paths.ConfigFile, config.DefaultConfig()); err != nil {
				return err
			}
			printSuccess("Wrote " + paths.ConfigFile)
			return nil
		}

		created, err := config.Ensure(paths.ConfigFile)
		if err != nil {
			return err
		}
		if !created {
			return fmt.Errorf("%s already exists (use --force to overwrite)", paths.ConfigFile)
		}
		printSuccess("Wrote " + paths.ConfigFile)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the files gigarandr reads and writes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return printJSON(map[string]string{
				"config": paths.ConfigFile,
				"state":  paths.StateFile,
				"log":    paths.LogFile,
			})
		}
		for _, kv := range [][2]string{
			{"config", paths.ConfigFile},
			{"state", paths.StateFile},
			{"log", paths.LogFile},
		} {
			keyColor.Printf("%-7s", kv[0])
			fmt.Println(kv[1])
		}
		return nil
	},
}

// buildPlan loads config and builds the layout without side effects
func buildPlan(cmd *cobra.Command) (*lifecycle.Report, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return lifecycle.Plan(cmd.Context(), newDeps(cfg, true))
}
