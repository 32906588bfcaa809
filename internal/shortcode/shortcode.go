// Package shortcode expands [schedule ...] directives embedded in free text.
//
//	[schedule]                          default schedule
//	[schedule id="spring" hide_old="1"] named schedule, past matchdays hidden
//	[[schedule id="spring"]]            escaped, emitted literally without the outer brackets
package shortcode

import (
	"regexp"
	"strings"
)

// Tag is the directive name.
const Tag = "schedule"

var (
	directivePattern = regexp.MustCompile(`\[?\[` + Tag + `(\s[^\]]*)?\]\]?`)
	attrPattern      = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"']+))`)
)

// Directive is one parsed [schedule] occurrence.
type Directive struct {
	Slug    string
	HideOld bool
	Attrs   map[string]string
}

// RenderFunc produces the replacement for one directive. Returning "" removes it.
type RenderFunc func(d Directive) (string, error)

// Parse returns every directive in text, in order. Escaped directives are skipped.
func Parse(text string) []Directive {
	var out []Directive
	for _, m := range directivePattern.FindAllStringSubmatch(text, -1) {
		if escaped(m[0]) {
			continue
		}
		out = append(out, newDirective(m[1]))
	}
	return out
}

// Expand replaces every directive in text with render's output. The first
// render error aborts expansion.
func Expand(text string, render RenderFunc) (string, error) {
	var (
		b    strings.Builder
		last int
	)
	for _, loc := range directivePattern.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:loc[0]])
		last = loc[1]

		match := text[loc[0]:loc[1]]
		if escaped(match) {
			b.WriteString(match[1 : len(match)-1])
			continue
		}
		var attrs string
		if loc[2] >= 0 {
			attrs = text[loc[2]:loc[3]]
		}
		html, err := render(newDirective(attrs))
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(match, "[[") {
			b.WriteByte('[')
		}
		b.WriteString(html)
		if strings.HasSuffix(match, "]]") {
			b.WriteByte(']')
		}
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

func escaped(match string) bool {
	return strings.HasPrefix(match, "[[") && strings.HasSuffix(match, "]]")
}

func newDirective(raw string) Directive {
	attrs := parseAttrs(raw)
	d := Directive{Attrs: attrs}
	d.Slug = strings.TrimSpace(attrs["id"])
	if d.Slug == "" {
		d.Slug = strings.TrimSpace(attrs["slug"])
	}
	d.HideOld = truthy(attrs["hide_old"])
	return d
}

func parseAttrs(raw string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrPattern.FindAllStringSubmatch(raw, -1) {
		key := strings.ToLower(m[1])
		if _, seen := attrs[key]; seen {
			continue
		}
		switch {
		case m[2] != "":
			attrs[key] = m[2]
		case m[3] != "":
			attrs[key] = m[3]
		default:
			attrs[key] = m[4]
		}
	}
	return attrs
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
