// ABOUTME: Tests for the SQL LIKE escaping helper.
// ABOUTME: Covers project-style names and every special character.

package store

import "testing"

func TestEscapeSQLLike(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "project name with underscores",
			input:    "/projects/Sales_Dashboard",
			expected: `/projects/Sales\_Dashboard`,
		},
		{
			name:     "percent wildcard",
			input:    "100%",
			expected: `100\%`,
		},
		{
			name:     "backslash escaped first",
			input:    `a\_b`,
			expected: `a\\\_b`,
		},
		{
			name:     "no special characters",
			input:    "/healthz",
			expected: "/healthz",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeSQLLike(tt.input); got != tt.expected {
				t.Errorf("escapeSQLLike(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
