package state

import (
	"sort"

	"github.com/yourusername/gigarandr/internal/types"
)

// MonitorState maps monitor names to whether they were active after the
// last successful sync
type MonitorState map[string]bool

// ActiveSet builds the state recorded after configuring the given inventory
func ActiveSet(monitors []types.Monitor) MonitorState {
	s := make(MonitorState, len(monitors))
	for _, m := range monitors {
		s[m.Name] = true
	}
	return s
}

// Names returns the active monitor names in sorted order
func (s MonitorState) Names() []string {
	names := make([]string, 0, len(s))
	for name, active := range s {
		if active {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Missing returns active names that are not present in monitors, sorted
func (s MonitorState) Missing(monitors []types.Monitor) []string {
	var missing []string
	for _, name := range s.Names() {
		if types.FindMonitor(monitors, name) == nil {
			missing = append(missing, name)
		}
	}
	return missing
}
