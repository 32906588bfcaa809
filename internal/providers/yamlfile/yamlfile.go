// Package yamlfile loads teams and schedules from a directory of YAML files:
//
//	<dir>/teams.yaml          list of teams
//	<dir>/schedules/*.yaml    one schedule per file, loaded in file-name order
package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers"
)

const (
	// Source is the name the provider reports in logs and metrics.
	Source = "yaml"

	teamsFile    = "teams.yaml"
	schedulesDir = "schedules"
)

// Provider reads content from Dir on every fetch.
type Provider struct {
	Dir string
}

// New creates a YAML directory provider.
func New(dir string) *Provider {
	return &Provider{Dir: dir}
}

// FetchContent reads and normalizes the directory contents.
func (p *Provider) FetchContent(ctx context.Context) (domain.Content, error) {
	info, err := os.Stat(p.Dir)
	if err != nil {
		return domain.Content{}, fmt.Errorf("stat content dir: %w", err)
	}
	if !info.IsDir() {
		return domain.Content{}, &providers.InvalidContentError{Source: Source, Reason: fmt.Sprintf("%s is not a directory", p.Dir)}
	}

	teamList, err := LoadTeams(filepath.Join(p.Dir, teamsFile))
	if err != nil {
		return domain.Content{}, err
	}

	paths, err := scheduleFiles(filepath.Join(p.Dir, schedulesDir))
	if err != nil {
		return domain.Content{}, err
	}
	scheduleList := make([]schedules.Schedule, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return domain.Content{}, err
		}
		sc, err := LoadSchedule(path)
		if err != nil {
			return domain.Content{}, err
		}
		if strings.TrimSpace(sc.Slug) == "" {
			sc.Slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		scheduleList = append(scheduleList, sc)
	}

	return providers.Normalize(Source, domain.Content{Teams: teamList, Schedules: scheduleList})
}

// LoadTeams reads a teams file. A missing file yields no teams.
func LoadTeams(path string) ([]teams.Team, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read teams: %w", err)
	}
	var out []teams.Team
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, &providers.InvalidContentError{Source: Source, Reason: fmt.Sprintf("%s: %v", path, err)}
	}
	return out, nil
}

// LoadSchedule reads a single schedule file.
func LoadSchedule(path string) (schedules.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schedules.Schedule{}, fmt.Errorf("read schedule: %w", err)
	}
	var sc schedules.Schedule
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return schedules.Schedule{}, &providers.InvalidContentError{Source: Source, Reason: fmt.Sprintf("%s: %v", path, err)}
	}
	return sc, nil
}

func scheduleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read schedules dir: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
