// ABOUTME: HTTP request logging middleware.
// ABOUTME: Captures method, path, status, duration and project, and stores them in the history database.

package logging

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/2389/bdas/internal/store"
)

// RequestLogger persists request logs. *store.Store satisfies it.
type RequestLogger interface {
	LogRequest(log *store.RequestLog) error
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	return rw.ResponseWriter.Write(b)
}

// Middleware logs every request except health checks
func Middleware(s RequestLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthz" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Milliseconds()

			ip := r.RemoteAddr
			if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
				ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
			}

			err := s.LogRequest(&store.RequestLog{
				Project:    GetProjectFromPath(r.URL.Path),
				Method:     r.Method,
				Path:       r.URL.Path,
				StatusCode: wrapped.statusCode,
				DurationMs: int(duration),
				IPAddress:  ip,
				UserAgent:  r.Header.Get("User-Agent"),
			})
			if err != nil {
				log.Printf("Failed to log request %s %s: %v", r.Method, r.URL.Path, err)
			}
		})
	}
}
