// Package sqlite stores teams and schedules in a SQLite database and serves
// them as a content provider. Matchdays are kept as a JSON column.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers"
)

// Source is the name the provider reports in logs and metrics.
const Source = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS teams (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	background_color TEXT NOT NULL DEFAULT '',
	text_color TEXT NOT NULL DEFAULT '',
	logo_url TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS schedules (
	slug TEXT PRIMARY KEY,
	id INTEGER NOT NULL DEFAULT 0,
	title TEXT NOT NULL DEFAULT '',
	published_at TEXT NOT NULL DEFAULT '',
	schedule_date TEXT NOT NULL DEFAULT '',
	matchdays TEXT NOT NULL DEFAULT '[]'
);`

// Store is a SQLite-backed content store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.Migrate(context.Background()); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return s, nil
}

// Migrate creates missing tables.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SaveTeam inserts or replaces a team by id.
func (s *Store) SaveTeam(ctx context.Context, t teams.Team) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO teams (id, name, background_color, text_color, logo_url) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, background_color = excluded.background_color,
			text_color = excluded.text_color, logo_url = excluded.logo_url`,
		t.ID, t.Name, t.BackgroundColor, t.TextColor, t.LogoURL)
	if err != nil {
		return fmt.Errorf("save team %d: %w", t.ID, err)
	}
	return nil
}

// SaveSchedule inserts or replaces a schedule by slug. Existing rows keep
// their position in the listing order.
func (s *Store) SaveSchedule(ctx context.Context, sc schedules.Schedule) error {
	b, err := json.Marshal(sc.Matchdays)
	if err != nil {
		return fmt.Errorf("encode matchdays: %w", err)
	}
	published := ""
	if !sc.PublishedAt.IsZero() {
		published = sc.PublishedAt.UTC().Format(time.RFC3339Nano)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO schedules (slug, id, title, published_at, schedule_date, matchdays) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET id = excluded.id, title = excluded.title, published_at = excluded.published_at,
			schedule_date = excluded.schedule_date, matchdays = excluded.matchdays`,
		sc.Slug, sc.ID, sc.Title, published, sc.ScheduleDate, string(b))
	if err != nil {
		return fmt.Errorf("save schedule %q: %w", sc.Slug, err)
	}
	return nil
}

// FetchContent reads every team and schedule in insertion order.
func (s *Store) FetchContent(ctx context.Context) (domain.Content, error) {
	teamList, err := s.teams(ctx)
	if err != nil {
		return domain.Content{}, err
	}
	scheduleList, err := s.schedules(ctx)
	if err != nil {
		return domain.Content{}, err
	}
	return providers.Normalize(Source, domain.Content{Teams: teamList, Schedules: scheduleList})
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) teams(ctx context.Context) ([]teams.Team, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, background_color, text_color, logo_url FROM teams ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []teams.Team
	for rows.Next() {
		var t teams.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.BackgroundColor, &t.TextColor, &t.LogoURL); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) schedules(ctx context.Context) ([]schedules.Schedule, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, id, title, published_at, schedule_date, matchdays FROM schedules ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []schedules.Schedule
	for rows.Next() {
		var (
			sc        schedules.Schedule
			published string
			matchdays string
		)
		if err := rows.Scan(&sc.Slug, &sc.ID, &sc.Title, &published, &sc.ScheduleDate, &matchdays); err != nil {
			return nil, err
		}
		if published != "" {
			ts, err := time.Parse(time.RFC3339Nano, published)
			if err != nil {
				return nil, &providers.InvalidContentError{Source: Source, Reason: fmt.Sprintf("schedule %q published_at: %v", sc.Slug, err)}
			}
			sc.PublishedAt = ts
		}
		if err := json.Unmarshal([]byte(matchdays), &sc.Matchdays); err != nil {
			return nil, &providers.InvalidContentError{Source: Source, Reason: fmt.Sprintf("schedule %q matchdays: %v", sc.Slug, err)}
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
