package layout

import (
	"github.com/yourusername/gigarandr/internal/config"
	"github.com/yourusername/gigarandr/internal/types"
)

// Arrange computes where each enabled output in the plan will sit in the
// virtual screen, following xrandr's relative placement rules. Outputs
// without a resolvable position are laid out left to right after the
// outputs placed so far. The result is shifted so the top-left is 0,0.
func Arrange(plan *Plan, monitors []types.Monitor) map[string]types.Rect {
	rects := make(map[string]types.Rect)
	if plan.Empty() {
		return rects
	}

	// Later directives for the same output override earlier ones
	order := make([]string, 0, len(plan.Outputs))
	final := make(map[string]OutputDirective)
	for _, d := range plan.Outputs {
		if _, seen := final[d.Name]; !seen {
			order = append(order, d.Name)
		}
		final[d.Name] = d
	}

	pending := make([]string, 0, len(order))
	for _, name := range order {
		if final[name].Off {
			continue
		}
		pending = append(pending, name)
	}

	// Relative placements may reference outputs listed later, so keep
	// sweeping until nothing new can be placed.
	for len(pending) > 0 {
		progressed := false
		next := pending[:0]

		for _, name := range pending {
			d := final[name]
			w, h := directiveSize(d, monitors)

			if d.Position == nil {
				if len(rects) == 0 {
					rects[name] = types.Rect{Width: w, Height: h}
					progressed = true
					continue
				}
				next = append(next, name)
				continue
			}

			ref, ok := rects[d.Position.Relative]
			if !ok {
				next = append(next, name)
				continue
			}
			rects[name] = placeRelative(d.Position.Direction, ref, w, h)
			progressed = true
		}

		pending = next
		if !progressed && len(pending) > 0 {
			// Unanchored output: put it to the right of everything placed
			name := pending[0]
			w, h := directiveSize(final[name], monitors)
			rects[name] = types.Rect{X: boundsOf(rects).Right(), Width: w, Height: h}
			pending = pending[1:]
		}
	}

	return normalize(rects)
}

func placeRelative(dir types.Direction, ref types.Rect, w, h int) types.Rect {
	switch dir {
	case types.DirAbove:
		return types.Rect{X: ref.X, Y: ref.Y - h, Width: w, Height: h}
	case types.DirBelow:
		return types.Rect{X: ref.X, Y: ref.Bottom(), Width: w, Height: h}
	case types.DirLeftOf:
		return types.Rect{X: ref.X - w, Y: ref.Y, Width: w, Height: h}
	case types.DirRightOf:
		return types.Rect{X: ref.Right(), Y: ref.Y, Width: w, Height: h}
	default:
		return types.Rect{X: ref.X, Y: ref.Y, Width: w, Height: h}
	}
}

// directiveSize uses the explicit mode when set, else the monitor's size
func directiveSize(d OutputDirective, monitors []types.Monitor) (int, int) {
	if d.Mode != "" {
		if w, h, err := config.ParseMode(d.Mode); err == nil {
			return w, h
		}
	}
	if m := types.FindMonitor(monitors, d.Name); m != nil {
		if w, h, ok := m.Size(); ok {
			return w, h
		}
	}
	// Unknown geometry still needs a box to draw
	return 1920, 1080
}

func boundsOf(rects map[string]types.Rect) types.Rect {
	first := true
	var b types.Rect
	for _, r := range rects {
		if first {
			b, first = r, false
			continue
		}
		b = b.Union(r)
	}
	return b
}

func normalize(rects map[string]types.Rect) map[string]types.Rect {
	if len(rects) == 0 {
		return rects
	}
	b := boundsOf(rects)
	for name, r := range rects {
		r.X -= b.X
		r.Y -= b.Y
		rects[name] = r
	}
	return rects
}
