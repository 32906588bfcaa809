package schedules

import (
	"github.com/preston-bernstein/schedule-grid-service/internal/grid"
)

// Options tune a single render.
type Options struct {
	// HidePast drops matchdays dated before Today.
	HidePast bool
	// Today overrides the service clock (YYYYMMDD).
	Today string
}

// CellView is a grid cell with teams resolved for display.
type CellView struct {
	Scheduled bool             `json:"scheduled"`
	Home      grid.TeamDisplay `json:"home"`
	Away      grid.TeamDisplay `json:"away"`
}

// RowView is one time row.
type RowView struct {
	Time  string     `json:"time"`
	Cells []CellView `json:"cells"`
}

// MatchdayView is a flattened matchday ready for a template.
type MatchdayView struct {
	Date        string        `json:"date,omitempty"`
	ISODate     string        `json:"isoDate,omitempty"`
	DisplayDate string        `json:"displayDate,omitempty"`
	Notice      *grid.Notice  `json:"notice,omitempty"`
	Columns     []grid.Column `json:"columns,omitempty"`
	Rows        []RowView     `json:"rows,omitempty"`
}

// View is everything a renderer needs for one schedule.
type View struct {
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	Matchdays    []MatchdayView `json:"matchdays"`
	ShowFullLink bool           `json:"showFullLink"`
	FullURL      string         `json:"fullUrl,omitempty"`
}
