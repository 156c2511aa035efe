package output

import (
	"math"

	"github.com/yourusername/gigarandr/internal/types"
)

// CellAspect is the height:width ratio of a terminal character cell
const CellAspect = 2.0

// Viewport maps virtual-screen pixels onto terminal cells with a single
// scale factor, so relative monitor sizes stay visible.
type Viewport struct {
	Bounds types.Rect // Pixel area being drawn
	Cols   int        // Canvas width in cells
	Rows   int        // Canvas height in cells
	Scale  float64    // Cells per pixel horizontally
}

// NewViewport fits bounds into a cols by rows canvas
func NewViewport(bounds types.Rect, cols, rows int) *Viewport {
	cols = max(cols, 10)
	rows = max(rows, 5)
	w := float64(max(bounds.Width, 1))
	h := float64(max(bounds.Height, 1))

	// Leave the last column and row free so right/bottom edges are drawn
	scale := math.Min(float64(cols-1)/w, float64(rows-1)*CellAspect/h)

	return &Viewport{Bounds: bounds, Cols: cols, Rows: rows, Scale: scale}
}

// Project converts a pixel rectangle to cell coordinates. Boxes are at
// least 3x2 cells so a drawn outline is still recognisable.
func (v *Viewport) Project(r types.Rect) (x, y, w, h int) {
	x = int(math.Round(float64(r.X-v.Bounds.X) * v.Scale))
	y = int(math.Round(float64(r.Y-v.Bounds.Y) * v.Scale / CellAspect))
	right := int(math.Round(float64(r.Right()-v.Bounds.X) * v.Scale))
	bottom := int(math.Round(float64(r.Bottom()-v.Bounds.Y) * v.Scale / CellAspect))

	w = max(right-x+1, 3)
	h = max(bottom-y+1, 2)

	if x+w > v.Cols {
		w = max(v.Cols-x, 0)
	}
	if y+h > v.Rows {
		h = max(v.Rows-y, 0)
	}
	return x, y, w, h
}

// Used reports the number of cell columns and rows the bounds occupy
func (v *Viewport) Used() (cols, rows int) {
	_, _, w, h := v.Project(v.Bounds)
	return w, h
}
