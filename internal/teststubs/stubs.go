package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
)

// StubProvider is a test double for providers.ContentProvider.
type StubProvider struct {
	mu      sync.Mutex
	Content domain.Content
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// Set swaps the returned content and error; safe while a reloader is running.
func (s *StubProvider) Set(content domain.Content, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Content = content
	s.Err = err
}

// FetchContent returns configured content and error while tracking calls.
func (s *StubProvider) FetchContent(ctx context.Context) (domain.Content, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Content, s.Err
}

// StubSink is a test double for reloader.Sink.
type StubSink struct {
	mu       sync.Mutex
	Replaced []domain.Content
}

// Replace records the content for verification in tests.
func (s *StubSink) Replace(content domain.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Replaced = append(s.Replaced, content)
}

// Last returns the most recently replaced content.
func (s *StubSink) Last() (domain.Content, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Replaced) == 0 {
		return domain.Content{}, false
	}
	return s.Replaced[len(s.Replaced)-1], true
}
