package types

import "fmt"

// Monitor is one connected output as reported by the inventory query
type Monitor struct {
	Name    string `json:"name"`              // Connector name, e.g. "eDP-1"
	Width   int    `json:"width,omitempty"`   // Current width in pixels, 0 if unknown
	Height  int    `json:"height,omitempty"`  // Current height in pixels, 0 if unknown
	X       int    `json:"x"`                 // Current x offset
	Y       int    `json:"y"`                 // Current y offset
	Primary bool   `json:"primary,omitempty"` // Reported as primary
	Modes   []Mode `json:"modes,omitempty"`   // Supported modes in the order listed
}

// Mode is one supported resolution and its refresh rates
type Mode struct {
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Rates     []float64 `json:"rates,omitempty"`
	Current   bool      `json:"current,omitempty"`   // Marked "*"
	Preferred bool      `json:"preferred,omitempty"` // Marked "+"
}

// Sized reports whether the current geometry is known
func (m Monitor) Sized() bool {
	return m.Width > 0 && m.Height > 0
}

// Size returns the monitor's dimensions. Inactive outputs have no current
// geometry, so the preferred mode and then the first listed mode are used.
func (m Monitor) Size() (width, height int, ok bool) {
	if m.Sized() {
		return m.Width, m.Height, true
	}
	if p := m.PreferredMode(); p != nil {
		return p.Width, p.Height, true
	}
	return 0, 0, false
}

// Area returns width*height of Size, or 0 when unknown
func (m Monitor) Area() int {
	w, h, ok := m.Size()
	if !ok {
		return 0
	}
	return w * h
}

// PreferredMode returns the "+" mode, the first mode, or nil
func (m Monitor) PreferredMode() *Mode {
	for i := range m.Modes {
		if m.Modes[i].Preferred {
			return &m.Modes[i]
		}
	}
	if len(m.Modes) > 0 {
		return &m.Modes[0]
	}
	return nil
}

// GeometryString formats the current geometry like xrandr does
func (m Monitor) GeometryString() string {
	if !m.Sized() {
		return "-"
	}
	return fmt.Sprintf("%dx%d%+d%+d", m.Width, m.Height, m.X, m.Y)
}

// String formats the mode as "<w>x<h>"
func (md Mode) String() string {
	return fmt.Sprintf("%dx%d", md.Width, md.Height)
}

// MaxRate returns the highest listed refresh rate, 0 if none
func (md Mode) MaxRate() float64 {
	var best float64
	for _, r := range md.Rates {
		if r > best {
			best = r
		}
	}
	return best
}

// FindMonitor returns the monitor with the given name, or nil
func FindMonitor(monitors []Monitor, name string) *Monitor {
	for i := range monitors {
		if monitors[i].Name == name {
			return &monitors[i]
		}
	}
	return nil
}
