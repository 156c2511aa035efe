package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir  = ".config/gigarandr"
	DefaultConfigFile = "config.json"
	DefaultStateFile  = "monitor_state.json"
	DefaultLogDir     = ".local/state/gigarandr"
	DefaultLogFile    = "gigarandr.log"
)

// Paths locates every file the tool reads or writes. It is built once at
// startup and passed to the components that need it.
type Paths struct {
	ConfigFile string
	StateFile  string
	LogFile    string
}

// DefaultPaths returns the paths under the user's home directory
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return PathsUnder(home), nil
}

// PathsUnder returns the default layout rooted at home
func PathsUnder(home string) Paths {
	configDir := filepath.Join(home, DefaultConfigDir)
	return Paths{
		ConfigFile: filepath.Join(configDir, DefaultConfigFile),
		StateFile:  filepath.Join(configDir, DefaultStateFile),
		LogFile:    filepath.Join(home, DefaultLogDir, DefaultLogFile),
	}
}

// DefaultConfig returns the configuration written on first run: the
// largest monitor above the laptop panel, and echo hooks for each phase.
func DefaultConfig() *Config {
	return &Config{
		Monitors: []MonitorConfig{
			{Name: "laptop", Position: "below largest"},
			{Name: "largest", Primary: true, Position: "above laptop"},
		},
		Hooks: HooksConfig{
			Presync:  []string{"echo 'PreSync Hook: Starting...'"},
			Sync:     []string{"echo 'Sync Hook: Adjusting monitor settings...'"},
			Postsync: []string{"echo 'PostSync Hook: Clean-up operations completed.'"},
		},
	}
}

// Ensure writes the default configuration to path if no file exists.
// Returns true when a file was created.
func Ensure(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := Write(path, DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}

// Write serializes cfg in the format implied by the path's extension
func Write(path string, cfg *Config) error {
	format, err := formatFromPath(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from path. The format is chosen by
// extension: .json, .yaml/.yml or .toml.
func LoadConfig(path string) (*Config, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadConfigFromBytes(data, format)
}

// LoadConfigFromBytes loads configuration from raw bytes.
// format should be "json", "yaml" or "toml". Unknown fields are rejected.
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("config file is empty")
	}

	var cfg Config

	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func formatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("unsupported config format: %s", ext)
	}
}
