package schedules

import "time"

// TimeSlot is one kickoff time on a field. Time is a free-text label used as a
// grouping key; team ids of zero mean "not assigned yet".
type TimeSlot struct {
	Time       string `json:"time" yaml:"time"`
	HomeTeamID int    `json:"homeTeamId,omitempty" yaml:"home_team"`
	AwayTeamID int    `json:"awayTeamId,omitempty" yaml:"away_team"`
}

// FieldBlock holds the time slots of one playing field for a matchday.
type FieldBlock struct {
	Name            string     `json:"name" yaml:"name"`
	BackgroundColor string     `json:"backgroundColor,omitempty" yaml:"background_color"`
	Times           []TimeSlot `json:"times" yaml:"times"`
}

// Matchday is one day of play. Date is a compact YYYYMMDD string and may be empty.
type Matchday struct {
	Date           string       `json:"date,omitempty" yaml:"date"`
	NoMatch        bool         `json:"noMatch,omitempty" yaml:"no_match"`
	NoMatchMessage string       `json:"noMatchMessage,omitempty" yaml:"no_match_message"`
	Fields         []FieldBlock `json:"fields" yaml:"fields"`
}

// Schedule is a published schedule with its ordered matchdays.
type Schedule struct {
	ID           int        `json:"id" yaml:"id"`
	Slug         string     `json:"slug" yaml:"slug"`
	Title        string     `json:"title" yaml:"title"`
	PublishedAt  time.Time  `json:"publishedAt" yaml:"published_at"`
	ScheduleDate string     `json:"scheduleDate,omitempty" yaml:"schedule_date"`
	Matchdays    []Matchday `json:"matchdays" yaml:"matchdays"`
}

// Summary is the list payload returned by /schedules.
type Summary struct {
	ID           int       `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	PublishedAt  time.Time `json:"publishedAt"`
	ScheduleDate string    `json:"scheduleDate,omitempty"`
	Matchdays    int       `json:"matchdays"`
}

// NewSummary builds a Summary from a schedule.
func NewSummary(s Schedule) Summary {
	return Summary{
		ID:           s.ID,
		Slug:         s.Slug,
		Title:        s.Title,
		PublishedAt:  s.PublishedAt,
		ScheduleDate: s.ScheduleDate,
		Matchdays:    len(s.Matchdays),
	}
}
