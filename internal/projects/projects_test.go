// ABOUTME: Tests for the project list and YAML loading.
// ABOUTME: Checks output naming, validation and the built-in entries.

package projects

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	entries := Default()
	if len(entries) != 17 {
		t.Fatalf("got %d entries, want 17", len(entries))
	}
	if entries[0].Name != "Sales_Dashboard" {
		t.Errorf("first entry = %s, want Sales_Dashboard", entries[0].Name)
	}
	if entries[16].Name != "HR_Workforce_Planning" {
		t.Errorf("last entry = %s, want HR_Workforce_Planning", entries[16].Name)
	}

	entries[0].Name = "changed"
	if Default()[0].Name != "Sales_Dashboard" {
		t.Error("Default() returned the package slice instead of a copy")
	}
}

func TestEntry_OutputNameIgnoresFileName(t *testing.T) {
	e := Entry{Name: "Sales_Dashboard", FileName: "sales_data.xlsx"}
	if got := e.OutputName(); got != "Sales_Dashboard.xlsx" {
		t.Errorf("OutputName() = %q, want Sales_Dashboard.xlsx", got)
	}
}

func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr error
	}{
		{"valid", Entry{Name: "Market_Entry"}, nil},
		{"empty", Entry{Name: ""}, ErrEmptyName},
		{"blank", Entry{Name: "   "}, ErrEmptyName},
		{"slash", Entry{Name: "a/b"}, ErrInvalidName},
		{"backslash", Entry{Name: `a\b`}, ErrInvalidName},
		{"dotdot", Entry{Name: ".."}, ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
projects:
  - name: Sales_Dashboard
    file: sales_data.xlsx
  - name: Zeta_Project
`)
	entries, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].FileName != "sales_data.xlsx" {
		t.Errorf("FileName = %q, want sales_data.xlsx", entries[0].FileName)
	}
	if entries[1].Name != "Zeta_Project" || entries[1].FileName != "" {
		t.Errorf("entry[1] = %+v, want Zeta_Project with no file", entries[1])
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"empty list", "projects: []", ErrNoProjects},
		{"no key", "other: 1", ErrNoProjects},
		{"missing name", "projects:\n  - file: x.xlsx\n", ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Parse([]byte("projects: [")); err == nil {
		t.Error("Parse() of malformed YAML should fail")
	}
}

func TestLoad(t *testing.T) {
	entries, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if len(entries) != 17 {
		t.Errorf("Load(\"\") returned %d entries, want 17", len(entries))
	}

	path := filepath.Join(t.TempDir(), "projects.yaml")
	if err := os.WriteFile(path, []byte("projects:\n  - name: Customer_Churn\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	entries, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Customer_Churn" {
		t.Errorf("Load() = %+v, want [Customer_Churn]", entries)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestFind(t *testing.T) {
	e, ok := Find(Default(), "Market_Entry")
	if !ok || e.FileName != "market_entry_data.xlsx" {
		t.Errorf("Find(Market_Entry) = %+v, %v", e, ok)
	}
	if _, ok := Find(Default(), "Nope"); ok {
		t.Error("Find(Nope) found, want not found")
	}
}
