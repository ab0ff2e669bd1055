package pdfdoc

import (
	"fmt"
	"strings"
)

// ParseHex parses "#RRGGBB". Unknown input gives Black.
func ParseHex(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var c Color
	if len(s) != 6 {
		return c
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}
	}
	return c
}
