package providers

import (
	"context"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
)

// ContentProvider loads the published teams and schedules from a content source.
// Implementations return normalized content: compact YYYYMMDD dates, trimmed
// slugs, unique team ids and schedule slugs.
type ContentProvider interface {
	FetchContent(ctx context.Context) (domain.Content, error)
}
