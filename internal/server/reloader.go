package server

import (
	"context"

	"github.com/preston-bernstein/schedule-grid-service/internal/reloader"
)

// Reloader defines the content reload behavior the server drives.
type Reloader interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Trigger(ctx context.Context) error
	Status() reloader.Status
}
