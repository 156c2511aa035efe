package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var modePattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

// ParseMode parses an xrandr mode name such as "1920x1080"
func ParseMode(s string) (width, height int, err error) {
	s = strings.TrimSpace(s)
	matches := modePattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid mode format: %q (expected <width>x<height>)", s)
	}
	width, _ = strconv.Atoi(matches[1])
	height, _ = strconv.Atoi(matches[2])
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("invalid mode format: %q (zero dimension)", s)
	}
	return width, height, nil
}
