// ABOUTME: Request log storage operations.
// ABOUTME: Handles inserting and querying preview server request logs.

package store

import "time"

// sqliteTimestamp matches the text CURRENT_TIMESTAMP stores, always in UTC.
const sqliteTimestamp = "2006-01-02 15:04:05"

// RequestLog represents an HTTP request log entry
type RequestLog struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Project    string    `json:"project,omitempty"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	DurationMs int       `json:"duration_ms"`
	IPAddress  string    `json:"ip_address,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
}

// LogRequest inserts a request log entry. A zero Timestamp means now.
func (s *Store) LogRequest(log *RequestLog) error {
	var ts any
	if !log.Timestamp.IsZero() {
		ts = log.Timestamp.UTC().Format(sqliteTimestamp)
	}
	_, err := s.db.Exec(`
		INSERT INTO request_logs (timestamp, project, method, path, status_code, duration_ms, ip_address, user_agent)
		VALUES (COALESCE(?, CURRENT_TIMESTAMP), ?, ?, ?, ?, ?, ?, ?)
	`, ts, log.Project, log.Method, log.Path, log.StatusCode, log.DurationMs, log.IPAddress, log.UserAgent)
	return err
}

// RequestLogQuery represents filters for request logs
type RequestLogQuery struct {
	Limit      int
	Offset     int
	Project    string
	PathPrefix string
	StatusCode int
}

// GetRequestLogs retrieves request logs with filtering, newest first
func (s *Store) GetRequestLogs(q *RequestLogQuery) ([]*RequestLog, error) {
	query := `SELECT id, timestamp, COALESCE(project, ''), method, path, COALESCE(status_code, 0),
	          COALESCE(duration_ms, 0), COALESCE(ip_address, ''), COALESCE(user_agent, '')
	          FROM request_logs WHERE 1=1`
	args := []any{}

	if q.Project != "" {
		query += " AND project = ?"
		args = append(args, q.Project)
	}
	if q.PathPrefix != "" {
		query += ` AND path LIKE ? ESCAPE '\'`
		args = append(args, escapeSQLLike(q.PathPrefix)+"%")
	}
	if q.StatusCode > 0 {
		query += " AND status_code = ?"
		args = append(args, q.StatusCode)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, q.Offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*RequestLog
	for rows.Next() {
		log := &RequestLog{}
		if err := rows.Scan(&log.ID, &log.Timestamp, &log.Project, &log.Method, &log.Path, &log.StatusCode,
			&log.DurationMs, &log.IPAddress, &log.UserAgent); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// GetProjectRequestCount returns the number of requests for a project since a given time
func (s *Store) GetProjectRequestCount(project string, since time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM request_logs
		WHERE project = ? AND timestamp >= ?
	`, project, since.UTC().Format(sqliteTimestamp)).Scan(&count)
	return count, err
}
