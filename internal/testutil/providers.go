package testutil

import (
	"context"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers"
)

// GoodProvider returns the provided content with no error.
type GoodProvider struct {
	Content domain.Content
}

func (p GoodProvider) FetchContent(ctx context.Context) (domain.Content, error) {
	_ = ctx
	return p.Content, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchContent(ctx context.Context) (domain.Content, error) {
	_ = ctx
	return domain.Content{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchContent(ctx context.Context) (domain.Content, error) {
	_ = ctx
	return domain.Content{}, providers.ErrProviderUnavailable
}

// NotifyingProvider returns content and closes notify channel on first fetch.
type NotifyingProvider struct {
	Content domain.Content
	Notify  chan struct{}
}

func (p *NotifyingProvider) FetchContent(ctx context.Context) (domain.Content, error) {
	_ = ctx
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Content, nil
}
