package grid

import "github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"

// FilterPast drops matchdays dated strictly before today. Dates are compact
// YYYYMMDD strings so lexical order is calendar order. Undated matchdays are
// kept. hidden reports whether anything was dropped.
func FilterPast(matchdays []schedules.Matchday, today string) (visible []schedules.Matchday, hidden bool) {
	visible = make([]schedules.Matchday, 0, len(matchdays))
	for _, md := range matchdays {
		if md.Date != "" && today != "" && md.Date < today {
			hidden = true
			continue
		}
		visible = append(visible, md)
	}
	return visible, hidden
}
