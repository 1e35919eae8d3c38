// ABOUTME: HTTP preview server for generated datasets and run history.
// ABOUTME: Serves JSON previews, xlsx downloads, data dictionaries, runs and request logs.

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/2389/bdas/internal/describe"
	"github.com/2389/bdas/internal/logging"
	"github.com/2389/bdas/internal/projects"
	"github.com/2389/bdas/internal/shape"
	"github.com/2389/bdas/internal/store"
)

// DefaultPreviewRows is the number of rows returned when no limit is given.
const DefaultPreviewRows = 10

// Server holds the project list and optional history store behind the HTTP API.
type Server struct {
	entries   []projects.Entry
	seed      int64
	store     *store.Store
	describer *describe.Generator
}

// Option configures a Server.
type Option func(*Server)

// WithSeed sets the default seed for generated tables.
func WithSeed(seed int64) Option {
	return func(s *Server) {
		s.seed = seed
	}
}

// WithStore enables run history endpoints and request logging.
func WithStore(st *store.Store) Option {
	return func(s *Server) {
		s.store = st
	}
}

// WithDescriber sets the data dictionary generator.
func WithDescriber(d *describe.Generator) Option {
	return func(s *Server) {
		s.describer = d
	}
}

// New creates a server for entries.
func New(entries []projects.Entry, opts ...Option) *Server {
	s := &Server{
		entries:   entries,
		seed:      shape.DefaultSeed,
		describer: describe.NewGenerator("", ""),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if s.store != nil {
		r.Use(logging.Middleware(s.store))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	r.Get("/categories", s.listCategories)

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", s.listProjects)
		r.Get("/{name}", s.previewProject)
		r.Get("/{name}/xlsx", s.downloadProject)
		r.Get("/{name}/dictionary", s.projectDictionary)
	})

	r.Route("/runs", func(r chi.Router) {
		r.Get("/", s.listRuns)
		r.Get("/{id}", s.getRun)
	})

	r.Get("/logs", s.listLogs)

	return r
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// requestWindow is the lookback used for per-project request counts.
const requestWindow = 24 * time.Hour
