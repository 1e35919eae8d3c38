// ABOUTME: Tests for request log storage operations.
// ABOUTME: Covers filtering, ordering and time-window counts across zones.

package store

import (
	"testing"
	"time"
)

func TestLogRequest_AndFilter(t *testing.T) {
	s := setupTestDB(t)

	logs := []*RequestLog{
		{Project: "Sales_Dashboard", Method: "GET", Path: "/projects/Sales_Dashboard", StatusCode: 200, DurationMs: 3},
		{Project: "Sales_Dashboard", Method: "GET", Path: "/projects/Sales_Dashboard/xlsx", StatusCode: 200, DurationMs: 12},
		{Project: "SalesXDashboard", Method: "GET", Path: "/projects/SalesXDashboard", StatusCode: 200, DurationMs: 2},
		{Project: "", Method: "GET", Path: "/categories", StatusCode: 200, DurationMs: 1},
		{Project: "Nope", Method: "GET", Path: "/projects/Nope/dictionary", StatusCode: 404, DurationMs: 1},
	}
	for _, l := range logs {
		if err := s.LogRequest(l); err != nil {
			t.Fatalf("LogRequest() error = %v", err)
		}
	}

	tests := []struct {
		name  string
		query *RequestLogQuery
		want  int
	}{
		{"all", &RequestLogQuery{}, 5},
		{"by project", &RequestLogQuery{Project: "Sales_Dashboard"}, 2},
		{"by status", &RequestLogQuery{StatusCode: 404}, 1},
		// underscore must not act as a single-character wildcard
		{"by path prefix", &RequestLogQuery{PathPrefix: "/projects/Sales_"}, 2},
		{"limit", &RequestLogQuery{Limit: 2}, 2},
		{"offset", &RequestLogQuery{Offset: 4}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetRequestLogs(tt.query)
			if err != nil {
				t.Fatalf("GetRequestLogs() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d logs, want %d", len(got), tt.want)
			}
		})
	}
}

func TestGetRequestLogs_NewestFirst(t *testing.T) {
	s := setupTestDB(t)

	for _, path := range []string{"/first", "/second"} {
		if err := s.LogRequest(&RequestLog{Method: "GET", Path: path, StatusCode: 200}); err != nil {
			t.Fatalf("LogRequest() error = %v", err)
		}
	}

	got, err := s.GetRequestLogs(&RequestLogQuery{})
	if err != nil {
		t.Fatalf("GetRequestLogs() error = %v", err)
	}
	if len(got) != 2 || got[0].Path != "/second" {
		t.Errorf("first log = %+v, want /second", got[0])
	}
	if got[0].Timestamp.IsZero() {
		t.Error("Timestamp not populated")
	}
}

func TestGetProjectRequestCount(t *testing.T) {
	s := setupTestDB(t)

	for i := 0; i < 3; i++ {
		if err := s.LogRequest(&RequestLog{Project: "Market_Entry", Method: "GET", Path: "/projects/Market_Entry", StatusCode: 200}); err != nil {
			t.Fatalf("LogRequest() error = %v", err)
		}
	}
	if err := s.LogRequest(&RequestLog{Project: "Other", Method: "GET", Path: "/projects/Other", StatusCode: 200}); err != nil {
		t.Fatalf("LogRequest() error = %v", err)
	}

	count, err := s.GetProjectRequestCount("Market_Entry", time.Now().Add(-72*time.Hour))
	if err != nil {
		t.Fatalf("GetProjectRequestCount() error = %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	count, err = s.GetProjectRequestCount("Missing", time.Now().Add(-72*time.Hour))
	if err != nil {
		t.Fatalf("GetProjectRequestCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestGetProjectRequestCount_NonUTCLocalZone(t *testing.T) {
	s := setupTestDB(t)

	now := time.Now()
	for _, age := range []time.Duration{20 * time.Hour, 30 * time.Hour} {
		l := &RequestLog{Project: "Market_Entry", Method: "GET", Path: "/projects/Market_Entry", StatusCode: 200, Timestamp: now.Add(-age)}
		if err := s.LogRequest(l); err != nil {
			t.Fatalf("LogRequest() error = %v", err)
		}
	}

	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC+9", 9*60*60),
		time.FixedZone("UTC-5", -5*60*60),
	}
	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			count, err := s.GetProjectRequestCount("Market_Entry", now.In(loc).Add(-24*time.Hour))
			if err != nil {
				t.Fatalf("GetProjectRequestCount() error = %v", err)
			}
			if count != 1 {
				t.Errorf("count = %d, want 1", count)
			}
		})
	}
}

func TestLogRequest_ExplicitTimestamp(t *testing.T) {
	s := setupTestDB(t)

	at := time.Date(2025, 3, 1, 18, 30, 0, 0, time.FixedZone("UTC+9", 9*60*60))
	if err := s.LogRequest(&RequestLog{Method: "GET", Path: "/categories", StatusCode: 200, Timestamp: at}); err != nil {
		t.Fatalf("LogRequest() error = %v", err)
	}

	var stored string
	if err := s.db.QueryRow("SELECT CAST(timestamp AS TEXT) FROM request_logs").Scan(&stored); err != nil {
		t.Fatalf("select timestamp: %v", err)
	}
	if want := "2025-03-01 09:30:00"; stored != want {
		t.Errorf("stored timestamp = %q, want %q", stored, want)
	}
}
