package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/schedule-grid-service/internal/providers"
)

// normalizeProviderName returns a lower-cased source name, deriving it from
// the instance when not configured. Metrics and logs key on this value.
func normalizeProviderName(raw string, provider providers.ContentProvider) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
