package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yourusername/gigarandr/internal/config"
	"github.com/yourusername/gigarandr/internal/hooks"
	"github.com/yourusername/gigarandr/internal/lifecycle"
	"github.com/yourusername/gigarandr/internal/logging"
	"github.com/yourusername/gigarandr/internal/state"
	"github.com/yourusername/gigarandr/internal/xrandr"
)

var (
	configPath string
	statePath  string
	logPath    string
	jsonOutput bool
	noColor    bool
	debugMode  bool
	dryRun     bool

	paths config.Paths

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd syncs monitors when run without a subcommand
var rootCmd = &cobra.Command{
	Use:   "gigarandr",
	Short: "Apply a declarative monitor layout with xrandr",
	Long: `gigarandr detects connected monitors and arranges them according to
~/.config/gigarandr/config.json.

Monitor entries refer to outputs by connector name or by keyword
(laptop, largest, smallest, external-N). Hooks run before the layout is
applied (presync), right after it (sync) and at the end (postsync).

Run it on login or from a hotplug event. Without a subcommand it syncs.`,
	Version:           "0.3.0",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runSync,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.json, .yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Monitor state file")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "JSON log file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the xrandr command without running hooks, xrandr or saving state")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the xrandr command without running hooks, xrandr or saving state")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "Use ASCII box characters")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Drawing width in columns (default: terminal width)")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "Drawing height in rows (default: terminal height)")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	logging.Close()

	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

// setup resolves paths, colour and logging before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if noColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	defaults, err := config.DefaultPaths()
	if err != nil {
		return err
	}
	paths = defaults
	if configPath != "" {
		paths.ConfigFile = configPath
	}
	if statePath != "" {
		paths.StateFile = statePath
	}
	if logPath != "" {
		paths.LogFile = logPath
	}

	if err := logging.Init(logging.Options{
		LogFile: paths.LogFile,
		NoColor: noColor || !isTerminal(os.Stderr),
		Debug:   debugMode,
	}); err != nil {
		logging.Warn().Str("path", paths.LogFile).Err(err).Msg("cannot open log file, logging to stderr only")
	}
	return nil
}

// loadConfig writes the default config on first run and loads it
func loadConfig() (*config.Config, error) {
	created, err := config.Ensure(paths.ConfigFile)
	if err != nil {
		return nil, err
	}
	if created {
		logging.Info().Str("path", paths.ConfigFile).Msg("wrote default configuration")
	}
	return config.LoadConfig(paths.ConfigFile)
}

// newDeps wires the real collaborators for a run
func newDeps(cfg *config.Config, dry bool) lifecycle.Deps {
	store := state.NewStore(paths.StateFile)
	if !dry {
		if err := store.Ensure(); err != nil {
			logging.Warn().Str("path", paths.StateFile).Err(err).Msg("cannot create state file")
		}
	}

	// Hook output must not corrupt JSON on stdout
	var hookOut io.Writer = os.Stdout
	if jsonOutput {
		hookOut = os.Stderr
	}

	return lifecycle.Deps{
		Config:  cfg,
		Display: xrandr.NewClient(cfg.Settings.Xrandr),
		State:   store,
		Hooks:   &hooks.Runner{Stdout: hookOut, DryRun: dry},
		DryRun:  dry,
	}
}

// Helper functions

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if color.NoColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}

func printSuccess(msg string) {
	if color.NoColor {
		fmt.Println(msg)
	} else {
		successColor.Print("✓ ")
		fmt.Println(msg)
	}
}
