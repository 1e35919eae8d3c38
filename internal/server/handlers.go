// ABOUTME: Route handlers for categories, projects, runs and request logs.
// ABOUTME: Tables are rebuilt per request from the configured seed.

package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/2389/bdas/internal/category"
	apierr "github.com/2389/bdas/internal/errors"
	"github.com/2389/bdas/internal/projects"
	"github.com/2389/bdas/internal/spreadsheet"
	"github.com/2389/bdas/internal/store"
	"github.com/2389/bdas/internal/table"
)

type categoryResponse struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
	Rows     int      `json:"rows"`
	Columns  []string `json:"columns"`
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	var resp []categoryResponse
	for _, rule := range category.Rules() {
		keywords := rule.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		resp = append(resp, categoryResponse{
			Category: rule.Category,
			Keywords: keywords,
			Rows:     rule.Shape.Rows,
			Columns:  rule.Shape.Names(),
		})
	}
	writeJSON(w, resp)
}

type projectResponse struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	Output      string `json:"output"`
	Category    string `json:"category"`
	Requests24h *int   `json:"requests_24h,omitempty"`
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	since := time.Now().Add(-requestWindow)
	resp := make([]projectResponse, 0, len(s.entries))
	for _, e := range s.entries {
		p := projectResponse{
			Name:     e.Name,
			File:     e.FileName,
			Output:   e.OutputName(),
			Category: category.Match(e.Name).Category,
		}
		if s.store != nil {
			n, err := s.store.GetProjectRequestCount(e.Name, since)
			if err != nil {
				log.Printf("Failed to count requests for %s: %v", e.Name, err)
			} else {
				p.Requests24h = &n
			}
		}
		resp = append(resp, p)
	}
	writeJSON(w, resp)
}

type previewResponse struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Seed     int64    `json:"seed"`
	Rows     int      `json:"rows"`
	Columns  []string `json:"columns"`
	Data     [][]any  `json:"data"`
}

func (s *Server) previewProject(w http.ResponseWriter, r *http.Request) {
	name, ok := s.lookupProject(w, r)
	if !ok {
		return
	}

	limit := DefaultPreviewRows
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			apierr.WriteErrorWithField(w, http.StatusBadRequest, apierr.ErrInvalidParameter, "limit must be a positive integer", "limit")
			return
		}
		limit = n
	}

	seed, ok := s.seedParam(w, r)
	if !ok {
		return
	}

	t, ok := s.generate(w, name, seed)
	if !ok {
		return
	}

	head := t.Head(limit)
	data := make([][]any, head.Rows())
	for i := range data {
		data[i] = head.Row(i)
	}

	writeJSON(w, previewResponse{
		Name:     name,
		Category: category.Match(name).Category,
		Seed:     seed,
		Rows:     t.Rows(),
		Columns:  t.Names(),
		Data:     data,
	})
}

func (s *Server) downloadProject(w http.ResponseWriter, r *http.Request) {
	name, ok := s.lookupProject(w, r)
	if !ok {
		return
	}
	seed, ok := s.seedParam(w, r)
	if !ok {
		return
	}
	t, ok := s.generate(w, name, seed)
	if !ok {
		return
	}

	f, err := spreadsheet.Build(t)
	if err != nil {
		apierr.WriteErrorWithDetails(w, http.StatusInternalServerError, apierr.ErrInternal, "failed to build spreadsheet", err.Error())
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+projects.Extension))
	if err := f.Write(w); err != nil {
		log.Printf("Failed to stream %s: %v", name, err)
	}
}

func (s *Server) projectDictionary(w http.ResponseWriter, r *http.Request) {
	name, ok := s.lookupProject(w, r)
	if !ok {
		return
	}
	writeJSON(w, s.describer.Describe(r.Context(), name))
}

func (s *Server) listRuns(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			apierr.WriteErrorWithField(w, http.StatusBadRequest, apierr.ErrInvalidParameter, "limit must be a positive integer", "limit")
			return
		}
		limit = n
	}

	runs, err := s.store.ListRuns(limit)
	if err != nil {
		apierr.WriteErrorWithDetails(w, http.StatusInternalServerError, apierr.ErrDatabaseError, "failed to list runs", err.Error())
		return
	}
	if runs == nil {
		runs = []*store.Run{}
	}
	writeJSON(w, runs)
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	id := chi.URLParam(r, "id")
	run, err := s.store.GetRun(id)
	if errors.Is(err, store.ErrRunNotFound) {
		apierr.WriteError(w, http.StatusNotFound, apierr.ErrNotFound, fmt.Sprintf("run %s not found", id))
		return
	}
	if err != nil {
		apierr.WriteErrorWithDetails(w, http.StatusInternalServerError, apierr.ErrDatabaseError, "failed to load run", err.Error())
		return
	}
	writeJSON(w, run)
}

func (s *Server) listLogs(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	q := &store.RequestLogQuery{
		Limit:      100,
		Project:    r.URL.Query().Get("project"),
		PathPrefix: r.URL.Query().Get("path"),
	}
	if sc := r.URL.Query().Get("status"); sc != "" {
		n, err := strconv.Atoi(sc)
		if err != nil {
			apierr.WriteErrorWithField(w, http.StatusBadRequest, apierr.ErrInvalidParameter, "status must be an integer", "status")
			return
		}
		q.StatusCode = n
	}

	logs, err := s.store.GetRequestLogs(q)
	if err != nil {
		apierr.WriteErrorWithDetails(w, http.StatusInternalServerError, apierr.ErrDatabaseError, "failed to list request logs", err.Error())
		return
	}
	if logs == nil {
		logs = []*store.RequestLog{}
	}
	writeJSON(w, logs)
}

// lookupProject resolves the {name} parameter against the configured entries.
func (s *Server) lookupProject(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	e, ok := projects.Find(s.entries, name)
	if !ok {
		apierr.WriteError(w, http.StatusNotFound, apierr.ErrNotFound, fmt.Sprintf("project %s not found", name))
		return "", false
	}
	return e.Name, true
}

func (s *Server) seedParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	v := r.URL.Query().Get("seed")
	if v == "" {
		return s.seed, true
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		apierr.WriteErrorWithField(w, http.StatusBadRequest, apierr.ErrInvalidParameter, "seed must be an integer", "seed")
		return 0, false
	}
	return seed, true
}

func (s *Server) generate(w http.ResponseWriter, name string, seed int64) (*table.Table, bool) {
	t, err := category.Generate(name, seed)
	if err != nil {
		apierr.WriteErrorWithDetails(w, http.StatusInternalServerError, apierr.ErrGenerationFailed, "failed to generate table", err.Error())
		return nil, false
	}
	return t, true
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		apierr.WriteError(w, http.StatusServiceUnavailable, apierr.ErrServiceUnavailable, "run history is disabled")
		return false
	}
	return true
}
