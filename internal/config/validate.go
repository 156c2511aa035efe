package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for errors. Position strings are not
// checked here: a malformed position only drops that clause at build time.
func (c *Config) Validate() error {
	for i, m := range c.Monitors {
		if err := validateMonitor(&m); err != nil {
			if m.Name != "" {
				return fmt.Errorf("monitor %d (%s): %w", i, m.Name, err)
			}
			return fmt.Errorf("monitor %d: %w", i, err)
		}
	}

	if err := validateHooks(&c.Hooks); err != nil {
		return fmt.Errorf("hooks: %w", err)
	}

	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	return nil
}

func validateMonitor(m *MonitorConfig) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("missing name")
	}
	if m.RefreshRate != nil && *m.RefreshRate <= 0 {
		return fmt.Errorf("refresh_rate must be positive, got %v", *m.RefreshRate)
	}
	if m.Mode != "" {
		if _, _, err := ParseMode(m.Mode); err != nil {
			return err
		}
	}
	if m.Off && (m.Primary || m.Position != "" || m.RefreshRate != nil || m.Mode != "") {
		return fmt.Errorf("off cannot be combined with primary, position, refresh_rate or mode")
	}
	return nil
}

func validateHooks(h *HooksConfig) error {
	for stage, cmds := range map[string][]string{"presync": h.Presync, "sync": h.Sync, "postsync": h.Postsync} {
		for i, cmd := range cmds {
			if strings.TrimSpace(cmd) == "" {
				return fmt.Errorf("%s command %d is empty", stage, i)
			}
		}
	}
	return nil
}

func validateSettings(s *Settings) error {
	for i, p := range s.LaptopPatterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("laptop_patterns entry %d is empty", i)
		}
	}
	return nil
}
