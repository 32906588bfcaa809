package grid

import (
	"regexp"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SanitizeColor returns a lower-cased "#rgb" or "#rrggbb" value, or "" when
// the input is not a hex color.
func SanitizeColor(raw string) string {
	raw = strings.TrimSpace(raw)
	if !hexColorPattern.MatchString(raw) {
		return ""
	}
	return "#" + strings.ToLower(strings.TrimPrefix(raw, "#"))
}
