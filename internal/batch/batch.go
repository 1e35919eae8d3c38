// ABOUTME: Batch driver that writes one spreadsheet per project entry, in order.
// ABOUTME: Reports progress to a writer and optionally records the run in history.

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/2389/bdas/internal/category"
	"github.com/2389/bdas/internal/projects"
	"github.com/2389/bdas/internal/shape"
	"github.com/2389/bdas/internal/spreadsheet"
	"github.com/2389/bdas/internal/store"
)

// DefaultOutputDir is where files land when no directory is configured.
const DefaultOutputDir = "data"

var (
	ErrCreateDirectory = errors.New("failed to create output directory")
	ErrWriteFile       = errors.New("failed to write spreadsheet")
)

// Recorder receives the lifecycle of a run. *store.Store satisfies it.
type Recorder interface {
	StartRun(outputDir string, seed int64, total int) (*store.Run, error)
	RecordFile(runID string, f *store.GeneratedFile) error
	FinishRun(runID string, runErr error) error
}

// File describes one written spreadsheet.
type File struct {
	Project  string `json:"project"`
	Category string `json:"category"`
	Path     string `json:"path"`
	Rows     int    `json:"rows"`
	Columns  int    `json:"columns"`
}

// Result is the outcome of a run. Files holds everything written before any failure.
type Result struct {
	RunID string  `json:"run_id,omitempty"`
	Files []*File `json:"files"`
}

// Runner generates spreadsheets for a list of project entries.
type Runner struct {
	outputDir string
	seed      int64
	out       io.Writer
	pace      time.Duration
	recorder  Recorder
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutputDir sets the directory files are written to.
func WithOutputDir(dir string) Option {
	return func(r *Runner) {
		r.outputDir = dir
	}
}

// WithSeed sets the seed applied to every generated table.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithOutput sets where progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithPace adds a delay after each file.
func WithPace(d time.Duration) Option {
	return func(r *Runner) {
		r.pace = d
	}
}

// WithRecorder records the run and its files.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// New creates a Runner writing to DefaultOutputDir with the default seed.
func New(opts ...Option) *Runner {
	r := &Runner{
		outputDir: DefaultOutputDir,
		seed:      shape.DefaultSeed,
		out:       io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run writes entries in list order and stops at the first failure.
func (r *Runner) Run(ctx context.Context, entries []projects.Entry) (*Result, error) {
	res := &Result{}

	runID := r.startRun(len(entries))
	res.RunID = runID

	err := r.run(ctx, entries, res)
	r.finishRun(runID, err)
	return res, err
}

func (r *Runner) run(ctx context.Context, entries []projects.Entry, res *Result) error {
	total := len(entries)
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrCreateDirectory, err)
		}

		fmt.Fprintf(r.out, "[%d/%d] Generating data for %s...\n", i+1, total, e.Name)

		rule := category.Match(e.Name)
		t, err := rule.Shape.Build(r.seed)
		if err != nil {
			return fmt.Errorf("generate %s: %w", e.Name, err)
		}

		path := filepath.Join(r.outputDir, e.OutputName())
		if err := spreadsheet.WriteFile(path, t); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteFile, path, err)
		}

		f := &File{
			Project:  e.Name,
			Category: rule.Category,
			Path:     path,
			Rows:     t.Rows(),
			Columns:  len(t.Columns()),
		}
		res.Files = append(res.Files, f)
		r.recordFile(res.RunID, i+1, f)

		if r.pace > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.pace):
			}
		}
	}
	return nil
}

func (r *Runner) startRun(total int) string {
	if r.recorder == nil {
		return ""
	}
	run, err := r.recorder.StartRun(r.outputDir, r.seed, total)
	if err != nil {
		log.Printf("Failed to record run start: %v", err)
		return ""
	}
	return run.ID
}

func (r *Runner) recordFile(runID string, position int, f *File) {
	if r.recorder == nil || runID == "" {
		return
	}
	err := r.recorder.RecordFile(runID, &store.GeneratedFile{
		Position: position,
		Project:  f.Project,
		Category: f.Category,
		Path:     f.Path,
		Rows:     f.Rows,
		Columns:  f.Columns,
	})
	if err != nil {
		log.Printf("Failed to record file %s: %v", f.Path, err)
	}
}

func (r *Runner) finishRun(runID string, runErr error) {
	if r.recorder == nil || runID == "" {
		return
	}
	if err := r.recorder.FinishRun(runID, runErr); err != nil {
		log.Printf("Failed to record run %s outcome: %v", runID, err)
	}
}
