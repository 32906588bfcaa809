// Package grid flattens a matchday's nested field/time structure into a
// row/column grid that renderers can walk without further lookups.
package grid

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
)

// DefaultNoMatchMessage is shown for matchdays flagged as having no matches
// when the author left the message blank.
const DefaultNoMatchMessage = "No matches scheduled for this matchday."

// Notice replaces the grid for matchdays without matches.
type Notice struct {
	Message string `json:"message"`
}

// Column is one field block header.
type Column struct {
	Label           string `json:"label"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// Cell is one time/field intersection. Scheduled is false when the field has
// no slot at that time; team ids of zero are unset.
type Cell struct {
	Scheduled  bool `json:"scheduled"`
	HomeTeamID int  `json:"homeTeamId,omitempty"`
	AwayTeamID int  `json:"awayTeamId,omitempty"`
}

// Row is one distinct time label with a cell per column.
type Row struct {
	Time  string `json:"time"`
	Cells []Cell `json:"cells"`
}

// Grid is the flattened matchday.
type Grid struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Result is either a notice or a grid for one matchday.
type Result struct {
	Date   string  `json:"date,omitempty"`
	Notice *Notice `json:"notice,omitempty"`
	Grid   Grid    `json:"grid"`
}

// Empty reports whether there is nothing to render.
func (r Result) Empty() bool {
	return r.Notice == nil && len(r.Grid.Columns) == 0
}

// Flattener carries the configurable fallback text. The zero value uses
// DefaultNoMatchMessage.
type Flattener struct {
	NoMatchMessage string
}

// Flatten uses the package defaults.
func Flatten(md schedules.Matchday) Result {
	return Flattener{}.Flatten(md)
}

// Flatten turns a matchday into a notice or a grid. It never fails; missing
// data degrades to positional labels and unscheduled cells.
func (f Flattener) Flatten(md schedules.Matchday) Result {
	res := Result{Date: md.Date}
	if md.NoMatch {
		res.Notice = &Notice{Message: f.noMatchMessage(md.NoMatchMessage)}
		return res
	}
	if len(md.Fields) == 0 {
		return res
	}

	columns := make([]Column, 0, len(md.Fields))
	for i, field := range md.Fields {
		columns = append(columns, Column{
			Label:           ColumnLabel(field.Name, i+1),
			BackgroundColor: SanitizeColor(field.BackgroundColor),
		})
	}

	labels := TimeLabels(md.Fields)
	rows := make([]Row, 0, len(labels))
	for _, label := range labels {
		cells := make([]Cell, 0, len(md.Fields))
		for _, field := range md.Fields {
			cells = append(cells, cellAt(field, label))
		}
		rows = append(rows, Row{Time: label, Cells: cells})
	}

	res.Grid = Grid{Columns: columns, Rows: rows}
	return res
}

func (f Flattener) noMatchMessage(msg string) string {
	if msg = strings.TrimSpace(msg); msg != "" {
		return msg
	}
	if f.NoMatchMessage != "" {
		return f.NoMatchMessage
	}
	return DefaultNoMatchMessage
}

// ColumnLabel returns the trimmed field name or "Field N" for blank names.
func ColumnLabel(name string, position int) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return "Field " + strconv.Itoa(position)
}

// TimeLabels returns the distinct trimmed, non-empty time labels of all
// fields in first-seen order. Labels are compared as exact strings.
func TimeLabels(fields []schedules.FieldBlock) []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for _, field := range fields {
		for _, slot := range field.Times {
			label := strings.TrimSpace(slot.Time)
			if label == "" {
				continue
			}
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}
	return labels
}

// cellAt returns the first slot matching label; later duplicates are ignored.
func cellAt(field schedules.FieldBlock, label string) Cell {
	for _, slot := range field.Times {
		if strings.TrimSpace(slot.Time) == label {
			return Cell{
				Scheduled:  true,
				HomeTeamID: slot.HomeTeamID,
				AwayTeamID: slot.AwayTeamID,
			}
		}
	}
	return Cell{}
}
