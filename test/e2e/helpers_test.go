// ABOUTME: Test helpers for E2E testing.
// ABOUTME: Starts a preview server backed by a temporary history database.

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/2389/bdas/internal/projects"
	"github.com/2389/bdas/internal/server"
	"github.com/2389/bdas/internal/store"
)

// TestServer wraps a test HTTP server with its store
type TestServer struct {
	Server *httptest.Server
	Store  *store.Store
	DBPath string
}

// StartTestServer creates a store in a temp dir and serves entries over HTTP
func StartTestServer(t *testing.T, entries []projects.Entry) *TestServer {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "e2e.db")
	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	srv := httptest.NewServer(server.New(entries, server.WithStore(s)).Handler())

	ts := &TestServer{Server: srv, Store: s, DBPath: dbPath}
	t.Cleanup(func() {
		srv.Close()
		s.Close()
	})
	return ts
}

// Get performs a GET and returns the response; the caller closes the body
func (ts *TestServer) Get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.Server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// GetJSON performs a GET, asserts the status, and decodes the body into v
func (ts *TestServer) GetJSON(t *testing.T, path string, wantStatus int, v any) {
	t.Helper()
	resp := ts.Get(t, path)
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s status = %d, want %d: %s", path, resp.StatusCode, wantStatus, body)
	}
	if v == nil {
		return
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("GET %s decode: %v", path, err)
	}
}
