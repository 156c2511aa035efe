package layout

import (
	"strings"

	"github.com/yourusername/gigarandr/internal/logging"
	"github.com/yourusername/gigarandr/internal/types"
)

// DefaultLaptopPatterns are connector prefixes used by built-in panels
var DefaultLaptopPatterns = []string{"eDP", "LVDS", "DSI"}

// Resolver maps monitor keywords to connected monitor names
type Resolver struct {
	LaptopPatterns []string // Connector prefixes, DefaultLaptopPatterns when empty
}

// Resolve resolves keyword against monitors using the default laptop patterns
func Resolve(monitors []types.Monitor, keyword string) (string, bool) {
	return Resolver{}.Resolve(monitors, keyword)
}

// IsLaptop reports whether name looks like a built-in panel
func (r Resolver) IsLaptop(name string) bool {
	patterns := r.LaptopPatterns
	if len(patterns) == 0 {
		patterns = DefaultLaptopPatterns
	}
	for _, p := range patterns {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Resolve returns the monitor name a keyword refers to. Failures are
// logged as warnings and reported through the bool.
func (r Resolver) Resolve(monitors []types.Monitor, keyword string) (string, bool) {
	kw, err := types.ParseKeyword(keyword)
	if err != nil {
		logging.Warn().Str("keyword", keyword).Err(err).Msg("cannot resolve monitor keyword")
		return "", false
	}
	return r.ResolveKeyword(monitors, kw)
}

// ResolveKeyword resolves an already-parsed keyword
func (r Resolver) ResolveKeyword(monitors []types.Monitor, kw types.Keyword) (string, bool) {
	var (
		name string
		ok   bool
	)

	switch kw.Kind {
	case types.KeywordLaptop:
		name, ok = r.laptop(monitors)
	case types.KeywordLargest:
		name, ok = bySize(monitors, func(a, best int) bool { return a > best })
	case types.KeywordSmallest:
		name, ok = bySize(monitors, func(a, best int) bool { return a < best })
	case types.KeywordExternal:
		name, ok = r.external(monitors, kw.Index)
	default:
		if types.FindMonitor(monitors, kw.Name) != nil {
			name, ok = kw.Name, true
		}
	}

	if !ok {
		logging.Warn().Str("keyword", kw.String()).Int("monitors", len(monitors)).Msg("monitor keyword did not match any connected monitor")
		return "", false
	}
	logging.Debug().Str("keyword", kw.String()).Str("monitor", name).Msg("resolved keyword")
	return name, true
}

func (r Resolver) laptop(monitors []types.Monitor) (string, bool) {
	for _, m := range monitors {
		if r.IsLaptop(m.Name) {
			return m.Name, true
		}
	}
	return "", false
}

// external returns the index-th (1-based) non-laptop monitor
func (r Resolver) external(monitors []types.Monitor, index int) (string, bool) {
	if index < 1 {
		return "", false
	}
	n := 0
	for _, m := range monitors {
		if r.IsLaptop(m.Name) {
			continue
		}
		n++
		if n == index {
			return m.Name, true
		}
	}
	return "", false
}

// bySize picks the sized monitor for which better(area, bestArea) holds
// against every earlier candidate. Ties keep the first in inventory order.
func bySize(monitors []types.Monitor, better func(area, best int) bool) (string, bool) {
	found := false
	var bestName string
	var bestArea int

	for _, m := range monitors {
		if _, _, ok := m.Size(); !ok {
			continue
		}
		area := m.Area()
		if !found || better(area, bestArea) {
			bestName, bestArea, found = m.Name, area, true
		}
	}

	if !found {
		logging.Warn().Msg("no monitor reports a size")
	}
	return bestName, found
}
