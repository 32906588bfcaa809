package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no content source is configured.
var ErrProviderUnavailable = errors.New("content provider unavailable")

// InvalidContentError reports content that loaded but cannot be served.
// Retrying will not fix it.
type InvalidContentError struct {
	Source string
	Reason string
}

func (e *InvalidContentError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid content: %s", e.Reason)
	}
	return fmt.Sprintf("%s: invalid content: %s", e.Source, e.Reason)
}

// AsInvalidContentError attempts to unwrap an error into an InvalidContentError.
func AsInvalidContentError(err error) (*InvalidContentError, bool) {
	var invErr *InvalidContentError
	if errors.As(err, &invErr) {
		return invErr, true
	}
	return nil, false
}
