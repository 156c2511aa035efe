package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/yourusername/gigarandr/internal/layout"
	"github.com/yourusername/gigarandr/internal/types"
)

// VisualizationOptions controls the arrangement drawing
type VisualizationOptions struct {
	UseUnicode bool
	MaxWidth   int // Columns available
	MaxHeight  int // Rows available for the drawing
}

// DefaultVisualizationOptions sizes the drawing to the terminal
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		MaxWidth:   width,
		MaxHeight:  max(height-8, 8),
	}
}

// VisualizeArrangement draws each output rectangle as a labelled box,
// followed by a legend with exact geometry. Primary outputs are marked *.
func VisualizeArrangement(plan *layout.Plan, rects map[string]types.Rect, opts VisualizationOptions) string {
	if len(rects) == 0 {
		return "(no outputs enabled)\n"
	}

	primary := make(map[string]bool)
	if plan != nil {
		for _, d := range plan.Outputs {
			primary[d.Name] = d.Primary
		}
	}

	names := sortedByPosition(rects)
	bounds := rects[names[0]]
	for _, name := range names[1:] {
		bounds = bounds.Union(rects[name])
	}

	vp := NewViewport(bounds, opts.MaxWidth, opts.MaxHeight)
	cols, rows := vp.Used()
	canvas := NewCanvas(cols, rows, opts.UseUnicode)

	for _, name := range names {
		r := rects[name]
		x, y, w, h := vp.Project(r)
		canvas.Box(x, y, w, h)

		label := name
		if primary[name] {
			label += " *"
		}
		lines := []string{label, fmt.Sprintf("%dx%d", r.Width, r.Height)}
		inner := h - 2
		if inner < len(lines) {
			lines = lines[:max(inner, 0)]
		}
		top := y + 1 + (inner-len(lines))/2
		for i, line := range lines {
			canvas.CenteredText(x+1, top+i, w-2, line)
		}
	}

	var sb strings.Builder
	sb.WriteString(canvas.String())
	sb.WriteString("\n\n")
	for _, name := range names {
		r := rects[name]
		marker := ""
		if primary[name] {
			marker = "  primary"
		}
		fmt.Fprintf(&sb, "  %-10s %dx%d+%d+%d%s\n", name, r.Width, r.Height, r.X, r.Y, marker)
	}
	fmt.Fprintf(&sb, "\nScreen: %dx%d\n", bounds.Width, bounds.Height)
	return sb.String()
}

// PrintArrangement writes a rendered arrangement, in cyan when colour is on
func PrintArrangement(w io.Writer, rendered string) {
	if color.NoColor {
		fmt.Fprint(w, rendered)
		return
	}
	color.New(color.FgCyan).Fprint(w, rendered)
}

// sortedByPosition orders outputs top to bottom, then left to right
func sortedByPosition(rects map[string]types.Rect) []string {
	names := make([]string, 0, len(rects))
	for name := range rects {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := rects[names[i]], rects[names[j]]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return names[i] < names[j]
	})
	return names
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks the locale for UTF-8
func supportsUnicode() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToUpper(os.Getenv(key))
		if strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8") {
			return true
		}
	}
	return false
}
