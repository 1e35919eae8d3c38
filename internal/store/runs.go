// ABOUTME: Generation run storage operations.
// ABOUTME: Records batch runs, the files each run wrote, and their outcome.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run statuses
const (
	RunRunning   = "running"
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

var ErrRunNotFound = errors.New("run not found")

// Run is one batch generation run.
type Run struct {
	ID         string           `json:"id"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt *time.Time       `json:"finished_at,omitempty"`
	OutputDir  string           `json:"output_dir"`
	Seed       int64            `json:"seed"`
	Total      int              `json:"total"`
	Status     string           `json:"status"`
	Error      string           `json:"error,omitempty"`
	Files      []*GeneratedFile `json:"files,omitempty"`
}

// GeneratedFile is one spreadsheet written during a run.
type GeneratedFile struct {
	Position int    `json:"position"`
	Project  string `json:"project"`
	Category string `json:"category"`
	Path     string `json:"path"`
	Rows     int    `json:"rows"`
	Columns  int    `json:"columns"`
}

// StartRun inserts a new run in the running state.
func (s *Store) StartRun(outputDir string, seed int64, total int) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		OutputDir: outputDir,
		Seed:      seed,
		Total:     total,
		Status:    RunRunning,
	}

	_, err := s.db.Exec(`
		INSERT INTO generation_runs (id, started_at, output_dir, seed, total, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt, run.OutputDir, run.Seed, run.Total, run.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}
	return run, nil
}

// RecordFile attaches a written file to a run.
func (s *Store) RecordFile(runID string, f *GeneratedFile) error {
	_, err := s.db.Exec(`
		INSERT INTO generated_files (run_id, position, project, category, path, row_count, column_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, f.Position, f.Project, f.Category, f.Path, f.Rows, f.Columns)
	if err != nil {
		return fmt.Errorf("failed to record file %s: %w", f.Project, err)
	}
	return nil
}

// FinishRun marks a run as succeeded, or failed when runErr is non-nil.
func (s *Store) FinishRun(runID string, runErr error) error {
	status, msg := RunSucceeded, ""
	if runErr != nil {
		status, msg = RunFailed, runErr.Error()
	}

	res, err := s.db.Exec(`
		UPDATE generation_runs SET finished_at = ?, status = ?, error = ?
		WHERE id = ?
	`, time.Now().UTC(), status, msg, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRunNotFound
	}
	return nil
}

// GetRun returns a run with its files in write order.
func (s *Store) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT id, started_at, finished_at, output_dir, seed, total, status, error
		FROM generation_runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT position, project, category, path, row_count, column_count
		FROM generated_files WHERE run_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		f := &GeneratedFile{}
		if err := rows.Scan(&f.Position, &f.Project, &f.Category, &f.Path, &f.Rows, &f.Columns); err != nil {
			return nil, err
		}
		run.Files = append(run.Files, f)
	}
	return run, rows.Err()
}

// ListRuns returns the most recent runs first, without files.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, started_at, finished_at, output_dir, seed, total, status, error
		FROM generation_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	run := &Run{}
	var finished sql.NullTime
	if err := sc.Scan(&run.ID, &run.StartedAt, &finished, &run.OutputDir, &run.Seed, &run.Total, &run.Status, &run.Error); err != nil {
		return nil, err
	}
	if finished.Valid {
		t := finished.Time
		run.FinishedAt = &t
	}
	return run, nil
}
