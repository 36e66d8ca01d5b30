// Package testutil provides shared helpers for bioseek package tests:
// stub upstream servers and transport-failure endpoints.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// JSONServer starts a stub server that answers every request with the given
// status and JSON payload. The server is closed when the test ends.
func JSONServer(t *testing.T, status int, payload any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if payload != nil {
			if err := json.NewEncoder(w).Encode(payload); err != nil {
				t.Errorf("stub encode failed: %v", err)
			}
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// StatusServer starts a stub server that answers with only a status code and
// an empty body, e.g. 204 for the archive's no-content case.
func StatusServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}

// DeadServerURL returns a URL that refuses connections, for simulating
// transport failures.
func DeadServerURL(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()
	return url
}
