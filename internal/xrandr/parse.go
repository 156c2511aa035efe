package xrandr

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/gigarandr/internal/types"
)

var (
	// 1920x1080, 1920x1080+0+0, 2560x1440-1920+0
	geometryRe = regexp.MustCompile(`^(\d+)x(\d+)(?:([+-]\d+)([+-]\d+))?$`)
	// 1920x1080 or 1920x1080i as the first token of a mode line
	modeRe = regexp.MustCompile(`^(\d+)x(\d+)i?$`)
	// 60.00*+, 59.94, 50.00+
	rateRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([*+ ]*)$`)
)

const connectedMarker = "connected"

// ParseQuery parses `xrandr --query` output into connected monitors, in
// the order xrandr lists them.
func ParseQuery(output string) []types.Monitor {
	var monitors []types.Monitor
	var current *types.Monitor

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Mode lines are indented and belong to the last output header
		if line[0] == ' ' || line[0] == '\t' {
			if current != nil {
				if mode, ok := parseModeLine(line); ok {
					current.Modes = append(current.Modes, mode)
				}
			}
			continue
		}

		if current != nil {
			monitors = append(monitors, *current)
			current = nil
		}

		if m, ok := parseOutputLine(line); ok {
			current = &m
		}
	}
	if current != nil {
		monitors = append(monitors, *current)
	}

	return monitors
}

// parseOutputLine parses an output header such as
// "eDP-1 connected primary 1920x1080+0+0 (normal left ...) 344mm x 194mm".
// Returns false for disconnected outputs and the Screen summary line.
func parseOutputLine(line string) (types.Monitor, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] != connectedMarker {
		return types.Monitor{}, false
	}

	m := types.Monitor{Name: fields[0]}
	for _, tok := range fields[2:] {
		if tok == "primary" {
			m.Primary = true
			continue
		}
		if w, h, x, y, ok := parseGeometry(tok); ok {
			m.Width, m.Height, m.X, m.Y = w, h, x, y
			break
		}
	}
	return m, true
}

// parseGeometry parses "<w>x<h>" with an optional "+x+y" offset
func parseGeometry(tok string) (w, h, x, y int, ok bool) {
	match := geometryRe.FindStringSubmatch(tok)
	if match == nil {
		return 0, 0, 0, 0, false
	}
	w, _ = strconv.Atoi(match[1])
	h, _ = strconv.Atoi(match[2])
	if match[3] != "" {
		x, _ = strconv.Atoi(match[3])
		y, _ = strconv.Atoi(match[4])
	}
	if w == 0 || h == 0 {
		return 0, 0, 0, 0, false
	}
	return w, h, x, y, true
}

// parseModeLine parses "   1920x1080     60.00*+  59.97    48.00"
func parseModeLine(line string) (types.Mode, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return types.Mode{}, false
	}
	match := modeRe.FindStringSubmatch(fields[0])
	if match == nil {
		return types.Mode{}, false
	}

	mode := types.Mode{}
	mode.Width, _ = strconv.Atoi(match[1])
	mode.Height, _ = strconv.Atoi(match[2])

	for i := 1; i < len(fields); i++ {
		tok := fields[i]
		// A lone "+" is printed when the preferred marker is separated by a space
		if tok == "+" {
			mode.Preferred = true
			continue
		}
		rm := rateRe.FindStringSubmatch(tok)
		if rm == nil {
			continue
		}
		rate, err := strconv.ParseFloat(rm[1], 64)
		if err != nil {
			continue
		}
		mode.Rates = append(mode.Rates, rate)
		if strings.Contains(rm[2], "*") {
			mode.Current = true
		}
		if strings.Contains(rm[2], "+") {
			mode.Preferred = true
		}
	}
	return mode, true
}
