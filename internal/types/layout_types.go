package types

import "strings"

// Rect represents pixel bounds in the virtual screen
type Rect struct {
	X      int `json:"x"`      // Left edge
	Y      int `json:"y"`      // Top edge
	Width  int `json:"width"`  // Width in pixels
	Height int `json:"height"` // Height in pixels
}

// Point represents a 2D coordinate
type Point struct {
	X int
	Y int
}

// Right returns the x coordinate just past the right edge
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate just past the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center point of a Rect
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Union returns the smallest Rect containing both r and other
func (r Rect) Union(other Rect) Rect {
	left := min(r.X, other.X)
	top := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Direction is the relative placement of one output against another
type Direction int

const (
	DirAbove Direction = iota
	DirBelow
	DirLeftOf
	DirRightOf
	DirSameAs
)

// String returns the configuration keyword for a Direction
func (d Direction) String() string {
	switch d {
	case DirAbove:
		return "above"
	case DirBelow:
		return "below"
	case DirLeftOf:
		return "left-of"
	case DirRightOf:
		return "right-of"
	case DirSameAs:
		return "same-as"
	default:
		return "unknown"
	}
}

// Flag returns the xrandr option for a Direction
func (d Direction) Flag() string {
	return "--" + d.String()
}

// MarshalText encodes a Direction by its keyword
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection converts a configuration keyword to Direction.
// "left" and "right" are accepted as short forms.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "above":
		return DirAbove, true
	case "below":
		return DirBelow, true
	case "left-of", "left":
		return DirLeftOf, true
	case "right-of", "right":
		return DirRightOf, true
	case "same-as":
		return DirSameAs, true
	default:
		return 0, false
	}
}

// Stage identifies a lifecycle phase at which hooks run
type Stage string

const (
	StagePresync  Stage = "presync"
	StageSync     Stage = "sync"
	StagePostsync Stage = "postsync"
)

// Stages lists the lifecycle phases in execution order
var Stages = []Stage{StagePresync, StageSync, StagePostsync}
