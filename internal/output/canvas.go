package output

import (
	"strings"
	"unicode/utf8"
)

// BoxStyle is the set of runes used to outline a monitor
type BoxStyle struct {
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
	Horizontal, Vertical    rune
}

var (
	// ASCIIStyle works on any terminal
	ASCIIStyle = BoxStyle{'+', '+', '+', '+', '-', '|'}

	// UnicodeStyle uses box drawing characters
	UnicodeStyle = BoxStyle{'┌', '┐', '└', '┘', '─', '│'}
)

// Canvas is a fixed-size grid of runes. Writes outside the grid are dropped.
type Canvas struct {
	Width  int
	Height int
	rows   [][]rune
	style  BoxStyle
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int, useUnicode bool) *Canvas {
	width, height = max(width, 0), max(height, 0)
	rows := make([][]rune, height)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(" ", width))
	}

	style := ASCIIStyle
	if useUnicode {
		style = UnicodeStyle
	}
	return &Canvas{Width: width, Height: height, rows: rows, style: style}
}

// Set writes r at column x, row y
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.rows[y][x] = r
}

// At returns the rune at column x, row y, or a space outside the grid
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return ' '
	}
	return c.rows[y][x]
}

// Box outlines a w by h rectangle whose top-left corner is x, y
func (c *Canvas) Box(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1

	for i := x + 1; i < right; i++ {
		c.Set(i, y, c.style.Horizontal)
		c.Set(i, bottom, c.style.Horizontal)
	}
	for j := y + 1; j < bottom; j++ {
		c.Set(x, j, c.style.Vertical)
		c.Set(right, j, c.style.Vertical)
	}
	c.Set(x, y, c.style.TopLeft)
	c.Set(right, y, c.style.TopRight)
	c.Set(x, bottom, c.style.BottomLeft)
	c.Set(right, bottom, c.style.BottomRight)
}

// Text writes s starting at x, y without wrapping
func (c *Canvas) Text(x, y int, s string) {
	i := 0
	for _, r := range s {
		c.Set(x+i, y, r)
		i++
	}
}

// CenteredText writes s centered in the span [x, x+width), truncating it
// when it doesn't fit
func (c *Canvas) CenteredText(x, y, width int, s string) {
	if width <= 0 {
		return
	}
	n := utf8.RuneCountInString(s)
	if n > width {
		s = string([]rune(s)[:width])
		n = width
	}
	c.Text(x+(width-n)/2, y, s)
}

// String joins the rows, trimming trailing spaces from each
func (c *Canvas) String() string {
	lines := make([]string, len(c.rows))
	for y, row := range c.rows {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
