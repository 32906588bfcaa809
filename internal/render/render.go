// Package render turns schedule views into HTML.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/preston-bernstein/schedule-grid-service/internal/app/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/grid"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("render").Funcs(template.FuncMap{
	"background": background,
	"badge":      badge,
}).ParseFS(templateFS, "templates/*.html.tmpl"))

// Schedule writes the schedule fragment: one article per matchday.
func Schedule(w io.Writer, view schedules.View) error {
	return templates.ExecuteTemplate(w, "schedule", view)
}

// Page writes a complete HTML document around the schedule fragment.
func Page(w io.Writer, view schedules.View) error {
	return templates.ExecuteTemplate(w, "page", view)
}

// ScheduleString renders the fragment into a string.
func ScheduleString(view schedules.View) (string, error) {
	var buf bytes.Buffer
	if err := Schedule(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Colors reach the templates already sanitized; sanitizing again keeps the
// CSS context safe for callers that build views by hand.
func background(color string) template.CSS {
	if c := grid.SanitizeColor(color); c != "" {
		return template.CSS("background-color:" + c)
	}
	return ""
}

func badge(bg, fg string) template.CSS {
	var parts []string
	if c := grid.SanitizeColor(bg); c != "" {
		parts = append(parts, "background-color:"+c)
	}
	if c := grid.SanitizeColor(fg); c != "" {
		parts = append(parts, "color:"+c)
	}
	return template.CSS(strings.Join(parts, ";"))
}
