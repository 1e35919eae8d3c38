// ABOUTME: JSON error responses for the preview server.
// ABOUTME: Every handler failure is reported as {code, message, status}.

package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body written for every failed request.
//
// Usage:
//
//	WriteError(w, http.StatusNotFound, ErrNotFound, "project Foo not found")
type ErrorResponse struct {
	Code    string `json:"code"`              // machine-readable, e.g. "not_found"
	Message string `json:"message"`           // human-readable
	Status  int    `json:"status"`            // mirrors the HTTP status
	Field   string `json:"field,omitempty"`   // query parameter that was rejected
	Details string `json:"details,omitempty"` // underlying error text
}

// WriteError writes an error body with the given status and code.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
	})
}

// WriteErrorWithField reports a rejected query parameter.
//
// Example:
//
//	WriteErrorWithField(w, http.StatusBadRequest, ErrInvalidParameter, "limit must be a positive integer", "limit")
func WriteErrorWithField(w http.ResponseWriter, status int, code, message, field string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
		Field:   field,
	})
}

// WriteErrorWithDetails attaches the underlying error text.
func WriteErrorWithDetails(w http.ResponseWriter, status int, code, message, details string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
		Details: details,
	})
}

func writeErrorResponse(w http.ResponseWriter, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	json.NewEncoder(w).Encode(resp)
}

// Error codes
const (
	// 4xx
	ErrInvalidParameter = "invalid_parameter"
	ErrNotFound         = "not_found"

	// 5xx
	ErrInternal           = "internal_error"
	ErrGenerationFailed   = "generation_failed"
	ErrDatabaseError      = "database_error"
	ErrServiceUnavailable = "service_unavailable"
)
