package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
)

// WriteYAMLContent lays content out as a YAML content directory under dir:
// teams.yaml plus one schedules/<slug>.yaml per schedule.
func WriteYAMLContent(t *testing.T, dir string, content domain.Content) {
	t.Helper()
	if err := writeYAMLContent(dir, content); err != nil {
		t.Fatalf("failed to write yaml content: %v", err)
	}
}

func writeYAMLContent(dir string, content domain.Content) error {
	if err := os.MkdirAll(filepath.Join(dir, "schedules"), 0o755); err != nil {
		return err
	}
	if err := writeYAML(filepath.Join(dir, "teams.yaml"), content.Teams); err != nil {
		return err
	}
	for _, sc := range content.Schedules {
		if err := writeYAML(filepath.Join(dir, "schedules", sc.Slug+".yaml"), sc); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
