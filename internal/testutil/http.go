package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const maxBodySnippet = 512

// Serve executes a request against the provided handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// ServeRequest executes the given request against the handler.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus verifies the response status code.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if err := statusError(rr, want); err != nil {
		t.Fatal(err)
	}
}

// DecodeJSON decodes the recorder body into dest, failing the test on error.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := decodeJSONBody(rr, dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// AssertBodyContains fails unless every fragment appears in the response body.
func AssertBodyContains(t *testing.T, rr *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := rr.Body.String()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Fatalf("expected body to contain %q, got %s", f, snippet(body))
		}
	}
}

func statusError(rr *httptest.ResponseRecorder, want int) error {
	if rr.Code == want {
		return nil
	}
	return fmt.Errorf("expected status %d, got %d body=%s", want, rr.Code, snippet(rr.Body.String()))
}

func decodeJSONBody(rr *httptest.ResponseRecorder, dest any) error {
	return json.NewDecoder(rr.Body).Decode(dest)
}

func snippet(body string) string {
	if len(body) > maxBodySnippet {
		return body[:maxBodySnippet] + "..."
	}
	return body
}
