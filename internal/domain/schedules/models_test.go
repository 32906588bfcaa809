package schedules

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewSummaryCountsMatchdays(t *testing.T) {
	published := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := Schedule{
		ID:           7,
		Slug:         "spring",
		Title:        "Spring League",
		PublishedAt:  published,
		ScheduleDate: "20250301",
		Matchdays:    []Matchday{{Date: "20250301"}, {Date: "20250308"}},
	}

	sum := NewSummary(s)
	if sum.ID != 7 || sum.Slug != "spring" || sum.Title != "Spring League" {
		t.Fatalf("unexpected summary identity %+v", sum)
	}
	if !sum.PublishedAt.Equal(published) || sum.ScheduleDate != "20250301" {
		t.Fatalf("unexpected summary dates %+v", sum)
	}
	if sum.Matchdays != 2 {
		t.Fatalf("expected 2 matchdays, got %d", sum.Matchdays)
	}
}

func TestTimeSlotOmitsUnsetTeams(t *testing.T) {
	data, err := json.Marshal(TimeSlot{Time: "9:00"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"time":"9:00"}` {
		t.Fatalf("unexpected encoding %s", data)
	}
}
