package types

import (
	"fmt"
	"strconv"
	"strings"
)

// KeywordKind categorizes a monitor reference
type KeywordKind int

const (
	KeywordLiteral  KeywordKind = iota // Connector name
	KeywordLaptop                      // Built-in panel
	KeywordLargest                     // Biggest area
	KeywordSmallest                    // Smallest area
	KeywordExternal                    // Nth non-laptop monitor
)

// String returns a readable name for the kind
func (k KeywordKind) String() string {
	switch k {
	case KeywordLiteral:
		return "literal"
	case KeywordLaptop:
		return "laptop"
	case KeywordLargest:
		return "largest"
	case KeywordSmallest:
		return "smallest"
	case KeywordExternal:
		return "external"
	default:
		return "unknown"
	}
}

const externalPrefix = "external-"

// Keyword is a parsed monitor reference
type Keyword struct {
	Kind  KeywordKind
	Index int    // 1-based, only for KeywordExternal
	Name  string // Literal name, only for KeywordLiteral
}

// String renders the keyword back to its configuration form
func (k Keyword) String() string {
	switch k.Kind {
	case KeywordLiteral:
		return k.Name
	case KeywordExternal:
		return fmt.Sprintf("%s%d", externalPrefix, k.Index)
	default:
		return k.Kind.String()
	}
}

// KeywordError reports an "external-N" reference with an invalid N
type KeywordError struct {
	Input string
}

func (e *KeywordError) Error() string {
	return fmt.Sprintf("invalid external index in %q: expected external-N with N >= 1", e.Input)
}

// ParseKeyword classifies a monitor reference. Keywords match without regard
// to case, like directions; connector names are kept as written.
func ParseKeyword(s string) (Keyword, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch lower {
	case "laptop":
		return Keyword{Kind: KeywordLaptop}, nil
	case "largest":
		return Keyword{Kind: KeywordLargest}, nil
	case "smallest":
		return Keyword{Kind: KeywordSmallest}, nil
	}

	if rest, ok := strings.CutPrefix(lower, externalPrefix); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return Keyword{}, &KeywordError{Input: s}
		}
		return Keyword{Kind: KeywordExternal, Index: n}, nil
	}

	return Keyword{Kind: KeywordLiteral, Name: s}, nil
}

// PositionErrorKind identifies why a position clause failed to parse
type PositionErrorKind int

const (
	PositionMissingReference PositionErrorKind = iota // No whitespace, e.g. "above"
	PositionUnknownDirection                          // First word is not a direction
	PositionBadReference                              // Reference keyword is invalid
)

// String returns a readable name for the kind
func (k PositionErrorKind) String() string {
	switch k {
	case PositionMissingReference:
		return "missing reference"
	case PositionUnknownDirection:
		return "unknown direction"
	case PositionBadReference:
		return "bad reference"
	default:
		return "unknown"
	}
}

// PositionError reports a malformed position clause
type PositionError struct {
	Kind  PositionErrorKind
	Input string
	Err   error // Underlying keyword error, if any
}

func (e *PositionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid position %q: %s: %v", e.Input, e.Kind, e.Err)
	}
	return fmt.Sprintf("invalid position %q: %s", e.Input, e.Kind)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// Position places an output relative to another
type Position struct {
	Direction Direction
	Reference Keyword
}

// String renders the position back to its configuration form
func (p Position) String() string {
	return p.Direction.String() + " " + p.Reference.String()
}

// ParsePosition parses "<direction> <reference>", splitting on the first
// whitespace run. Example: "below largest".
func ParsePosition(s string) (Position, error) {
	trimmed := strings.TrimSpace(s)
	idx := strings.IndexAny(trimmed, " \t")
	if idx < 0 {
		return Position{}, &PositionError{Kind: PositionMissingReference, Input: s}
	}

	dirWord := trimmed[:idx]
	refWord := strings.TrimSpace(trimmed[idx+1:])

	dir, ok := ParseDirection(dirWord)
	if !ok {
		return Position{}, &PositionError{Kind: PositionUnknownDirection, Input: s}
	}

	ref, err := ParseKeyword(refWord)
	if err != nil {
		return Position{}, &PositionError{Kind: PositionBadReference, Input: s, Err: err}
	}

	return Position{Direction: dir, Reference: ref}, nil
}
