package config

import "github.com/yourusername/gigarandr/internal/types"

// Config is the root configuration structure
type Config struct {
	Monitors []MonitorConfig `yaml:"monitors" json:"monitors" toml:"monitors"`
	Hooks    HooksConfig     `yaml:"hooks" json:"hooks" toml:"hooks"`
	Settings Settings        `yaml:"settings,omitempty" json:"settings,omitempty" toml:"settings,omitempty"`
}

// MonitorConfig is one declarative monitor entry. Order matters: entries
// are emitted to xrandr in the order they are declared.
type MonitorConfig struct {
	Name        string   `yaml:"name" json:"name" toml:"name"`                                                       // Keyword or connector name
	Primary     bool     `yaml:"primary,omitempty" json:"primary,omitempty" toml:"primary,omitempty"`                // Emit --primary
	Position    string   `yaml:"position,omitempty" json:"position,omitempty" toml:"position,omitempty"`             // "<direction> <keyword>"
	RefreshRate *float64 `yaml:"refresh_rate,omitempty" json:"refresh_rate,omitempty" toml:"refresh_rate,omitempty"` // Emit --rate
	Mode        string   `yaml:"mode,omitempty" json:"mode,omitempty" toml:"mode,omitempty"`                         // Explicit "<w>x<h>" instead of --auto
	Off         bool     `yaml:"off,omitempty" json:"off,omitempty" toml:"off,omitempty"`                            // Disable the output
}

// HooksConfig holds shell commands run at each lifecycle phase
type HooksConfig struct {
	Presync  []string `yaml:"presync" json:"presync" toml:"presync"`
	Sync     []string `yaml:"sync" json:"sync" toml:"sync"`
	Postsync []string `yaml:"postsync" json:"postsync" toml:"postsync"`
}

// Settings contains global application settings
type Settings struct {
	LaptopPatterns []string `yaml:"laptop_patterns,omitempty" json:"laptop_patterns,omitempty" toml:"laptop_patterns,omitempty"` // Built-in panel connector prefixes
	Xrandr         string   `yaml:"xrandr,omitempty" json:"xrandr,omitempty" toml:"xrandr,omitempty"`                            // Path to the xrandr binary
}

// ForStage returns the commands configured for a lifecycle phase
func (h HooksConfig) ForStage(stage types.Stage) []string {
	switch stage {
	case types.StagePresync:
		return h.Presync
	case types.StageSync:
		return h.Sync
	case types.StagePostsync:
		return h.Postsync
	default:
		return nil
	}
}
