// ABOUTME: Project entries naming each dataset to generate, plus the built-in list.
// ABOUTME: Entries can be overridden by a YAML project list file.

package projects

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extension is appended to an entry name to form its output file name.
const Extension = ".xlsx"

var (
	ErrNoProjects  = errors.New("project list is empty")
	ErrEmptyName   = errors.New("project name is empty")
	ErrInvalidName = errors.New("project name must not contain path separators")
)

// Entry declares one dataset to generate.
type Entry struct {
	Name string `yaml:"name" json:"name"`
	// FileName is carried for reference only; output files are named after Name.
	FileName string `yaml:"file" json:"file"`
}

// OutputName returns the file name the entry is written to.
func (e Entry) OutputName() string {
	return e.Name + Extension
}

// Validate checks that the entry can be turned into a file name.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(e.Name, `/\`) || e.Name == "." || e.Name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, e.Name)
	}
	return nil
}

var defaults = []Entry{
	{Name: "Sales_Dashboard", FileName: "sales_data.xlsx"},
	{Name: "Customer_Segmentation", FileName: "customer_data.xlsx"},
	{Name: "Employee_Attendance", FileName: "attendance_data.xlsx"},
	{Name: "Marketing_Campaign", FileName: "campaign_data.xlsx"},
	{Name: "Inventory_Analysis", FileName: "inventory_data.xlsx"},
	{Name: "Employee_Performance", FileName: "performance_data.xlsx"},
	{Name: "Financial_Risk", FileName: "financial_data.xlsx"},
	{Name: "Customer_Churn", FileName: "churn_data.xlsx"},
	{Name: "Operations_Optimization", FileName: "operations_data.xlsx"},
	{Name: "Sales_Forecasting", FileName: "forecasting_data.xlsx"},
	{Name: "Employee_Attrition", FileName: "attrition_data.xlsx"},
	{Name: "Financial_Statement", FileName: "financial_statements.xlsx"},
	{Name: "Customer_Lifetime_Value", FileName: "clv_data.xlsx"},
	{Name: "Supply_Chain_Optimization", FileName: "supply_chain_data.xlsx"},
	{Name: "Financial_Portfolio", FileName: "portfolio_data.xlsx"},
	{Name: "Market_Entry", FileName: "market_entry_data.xlsx"},
	{Name: "HR_Workforce_Planning", FileName: "workforce_data.xlsx"},
}

// Default returns a copy of the built-in project list.
func Default() []Entry {
	out := make([]Entry, len(defaults))
	copy(out, defaults)
	return out
}

// Find returns the entry with the given name.
func Find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

type listFile struct {
	Projects []Entry `yaml:"projects"`
}

// Parse decodes a YAML project list.
func Parse(data []byte) ([]Entry, error) {
	var f listFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse project list: %w", err)
	}
	if len(f.Projects) == 0 {
		return nil, ErrNoProjects
	}
	for i, e := range f.Projects {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("project %d: %w", i+1, err)
		}
	}
	return f.Projects, nil
}

// LoadFile reads a YAML project list from path.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project list: %w", err)
	}
	return Parse(data)
}

// Load returns the entries from path, or the built-in list when path is empty.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
