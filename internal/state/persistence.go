package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yourusername/gigarandr/internal/logging"
)

// Store persists MonitorState as a JSON object at Path
type Store struct {
	Path string
}

// NewStore creates a store for the given file
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Ensure creates the state file as an empty object if it doesn't exist
func (s *Store) Ensure() error {
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat state file: %w", err)
	}
	return s.Save(MonitorState{})
}

// Load reads the previous state. A missing, unreadable or corrupt file
// yields an empty state so a sync can still proceed.
func (s *Store) Load() MonitorState {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Warn().Str("path", s.Path).Err(err).Msg("failed to read state file, starting empty")
		}
		return MonitorState{}
	}

	var st MonitorState
	if err := json.Unmarshal(data, &st); err != nil {
		logging.Warn().Str("path", s.Path).Err(err).Msg("failed to parse state file, starting empty")
		return MonitorState{}
	}
	if st == nil {
		st = MonitorState{}
	}
	return st
}

// Save replaces the state file wholesale
func (s *Store) Save(st MonitorState) error {
	// Ensure directory exists
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if st == nil {
		st = MonitorState{}
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Write atomically using temp file + rename
	tmpPath := s.Path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename state file: %w", err)
	}

	return nil
}

// ModTime reports when the state file was last written
func (s *Store) ModTime() (time.Time, bool) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
