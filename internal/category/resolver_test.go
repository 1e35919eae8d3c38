// ABOUTME: Tests for keyword precedence, per-category schemas and deterministic generation.
// ABOUTME: Includes the Employee_Attrition regression for rule ordering.

package category

import (
	"reflect"
	"testing"
	"time"

	"github.com/2389/bdas/internal/shape"
)

func TestMatch_Precedence(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Sales_Dashboard", Sales},
		{"Sales_Forecasting", Sales},
		{"Customer_Segmentation", Customer},
		{"Customer_Churn", Customer},
		{"Customer_Lifetime_Value", Customer},
		{"Employee_Attendance", Employee},
		{"Employee_Performance", Employee},
		{"Employee_Attrition", Employee},
		{"Marketing_Campaign", Marketing},
		{"Inventory_Analysis", Inventory},
		{"Supply_Chain_Optimization", Inventory},
		{"Financial_Risk", Financial},
		{"Financial_Statement", Financial},
		{"Financial_Portfolio", Financial},
		{"Operations_Optimization", Operations},
		{"Attrition_Study", Attrition},
		{"Market_Entry", Market},
		{"HR_Workforce_Planning", Workforce},
		{"Workforce_Mix", Workforce},
		{"Zeta_Project", Default},
		{"", Default},
		// case-sensitive
		{"sales_lowercase", Default},
		// earlier keyword anywhere in the name wins
		{"Market_Sales", Sales},
		{"Portfolio_Operations", Financial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.name).Category; got != tt.want {
				t.Errorf("Match(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestGenerate_EmployeeAttritionUsesEmployeeShape(t *testing.T) {
	tbl, err := Generate("Employee_Attrition", shape.DefaultSeed)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := []string{"EmployeeID", "Department", "Attendance", "PerformanceScore"}
	if got := tbl.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
}

func TestGenerate_Schemas(t *testing.T) {
	tests := []struct {
		project string
		rows    int
		columns []string
	}{
		{"Sales_Dashboard", 100, []string{"Date", "Region", "Product", "Sales"}},
		{"Customer_Segmentation", 100, []string{"CustomerID", "Age", "Gender", "PurchaseHistory", "Segment"}},
		{"Employee_Performance", 100, []string{"EmployeeID", "Department", "Attendance", "PerformanceScore"}},
		{"Marketing_Campaign", 20, []string{"CampaignID", "Channel", "Spend", "ROI"}},
		{"Supply_Chain_Optimization", 50, []string{"ProductID", "StockLevel", "ReorderLevel", "SalesLastMonth"}},
		{"Financial_Portfolio", 100, []string{"Date", "Asset", "Price", "RiskScore"}},
		{"Operations_Optimization", 20, []string{"ResourceID", "AvailableHours", "TaskLoad", "Efficiency"}},
		{"Attrition_Study", 100, []string{"EmployeeID", "Age", "Tenure", "Salary", "LeftCompany"}},
		{"Market_Entry", 50, []string{"Region", "CompetitorCount", "AvgPrice", "PotentialCustomers"}},
		{"HR_Workforce_Planning", 100, []string{"EmployeeID", "Skill", "ProjectAllocated", "HoursWorked"}},
		{"Zeta_Project", 20, []string{"SampleColumn"}},
	}

	for _, tt := range tests {
		t.Run(tt.project, func(t *testing.T) {
			tbl, err := Generate(tt.project, shape.DefaultSeed)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if tbl.Rows() != tt.rows {
				t.Errorf("rows = %d, want %d", tbl.Rows(), tt.rows)
			}
			if got := tbl.Names(); !reflect.DeepEqual(got, tt.columns) {
				t.Errorf("columns = %v, want %v", got, tt.columns)
			}
			for _, c := range tbl.Columns() {
				if c.Len() != tt.rows {
					t.Errorf("column %s has %d values, want %d", c.Name, c.Len(), tt.rows)
				}
			}
		})
	}
}

func TestGenerate_SalesValues(t *testing.T) {
	tbl, err := Generate("Sales_Dashboard", shape.DefaultSeed)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	sales, _ := tbl.Column("Sales")
	for _, v := range sales.Ints() {
		if v < 100 || v >= 1000 {
			t.Errorf("Sales value %d outside [100, 1000)", v)
		}
	}

	dates, _ := tbl.Column("Date")
	ds := dates.Dates()
	if len(ds) != 100 {
		t.Fatalf("got %d dates, want 100", len(ds))
	}
	if !ds[0].Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first date = %v, want 2025-01-01", ds[0])
	}
	if !ds[99].Equal(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last date = %v, want 2025-04-10", ds[99])
	}

	region, _ := tbl.Column("Region")
	for _, v := range region.Strings() {
		switch v {
		case "North", "South", "East", "West":
		default:
			t.Errorf("unexpected region %q", v)
		}
	}
}

func TestGenerate_RangesPerCategory(t *testing.T) {
	type bounds struct{ lo, hi float64 }
	tests := []struct {
		project string
		ranges  map[string]bounds
	}{
		{"Customer_Churn", map[string]bounds{"Age": {18, 70}, "PurchaseHistory": {1, 20}}},
		{"Employee_Attendance", map[string]bounds{"Attendance": {0, 31}, "PerformanceScore": {50, 100}}},
		{"Marketing_Campaign", map[string]bounds{"Spend": {1000, 10000}, "ROI": {0.5, 5.0}}},
		{"Inventory_Analysis", map[string]bounds{"StockLevel": {10, 500}, "ReorderLevel": {20, 200}, "SalesLastMonth": {5, 100}}},
		{"Financial_Risk", map[string]bounds{"Price": {50, 500}, "RiskScore": {0, 1}}},
		{"Operations_Optimization", map[string]bounds{"AvailableHours": {0, 160}, "TaskLoad": {0, 200}, "Efficiency": {0.5, 1.0}}},
		{"Attrition_Study", map[string]bounds{"Age": {22, 60}, "Tenure": {0, 20}, "Salary": {30000, 150000}, "LeftCompany": {0, 2}}},
		{"Market_Entry", map[string]bounds{"CompetitorCount": {1, 10}, "AvgPrice": {50, 500}, "PotentialCustomers": {1000, 10000}}},
		{"HR_Workforce_Planning", map[string]bounds{"HoursWorked": {20, 160}}},
	}

	for _, tt := range tests {
		t.Run(tt.project, func(t *testing.T) {
			tbl, err := Generate(tt.project, shape.DefaultSeed)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			for name, b := range tt.ranges {
				col, ok := tbl.Column(name)
				if !ok {
					t.Fatalf("column %s missing", name)
				}
				for _, v := range col.Values {
					var f float64
					rounded := false
					switch n := v.(type) {
					case int:
						f = float64(n)
					case float64:
						f = n
						rounded = true
					}
					// 2-decimal rounding can land on the upper bound
					if f < b.lo || f > b.hi || (!rounded && f >= b.hi) {
						t.Errorf("%s value %v outside [%v, %v)", name, v, b.lo, b.hi)
					}
				}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, r := range Rules() {
		t.Run(r.Category, func(t *testing.T) {
			name := r.Category + "_Project"
			first, err := Generate(name, shape.DefaultSeed)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			second, err := Generate(name, shape.DefaultSeed)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !reflect.DeepEqual(first.Columns(), second.Columns()) {
				t.Errorf("Generate(%q) is not deterministic", name)
			}
		})
	}
}

func TestGenerate_SameDrawsAcrossProjectsOfOneCategory(t *testing.T) {
	a, err := Generate("Customer_Churn", shape.DefaultSeed)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := Generate("Customer_Lifetime_Value", shape.DefaultSeed)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !reflect.DeepEqual(a.Columns(), b.Columns()) {
		t.Error("projects of the same category should produce identical tables")
	}
}

func TestGenerate_DefaultFallback(t *testing.T) {
	tbl, err := Generate("Zeta_Project", shape.DefaultSeed)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	col, ok := tbl.Column("SampleColumn")
	if !ok {
		t.Fatal("SampleColumn missing")
	}
	got := col.Ints()
	if len(got) != 20 {
		t.Fatalf("got %d values, want 20", len(got))
	}
	for i, v := range got {
		if v != i+1 {
			t.Errorf("SampleColumn[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestRules_DefaultIsLast(t *testing.T) {
	rs := Rules()
	if len(rs) != 11 {
		t.Fatalf("got %d rules, want 11", len(rs))
	}
	if rs[len(rs)-1].Category != Default {
		t.Errorf("last rule = %s, want Default", rs[len(rs)-1].Category)
	}

	// mutating the copy must not affect resolution
	rs[0] = Rule{Category: "Broken"}
	if Match("Sales_Dashboard").Category != Sales {
		t.Error("Rules() returned the package slice instead of a copy")
	}
}

func TestLookup(t *testing.T) {
	r, ok := Lookup(Market)
	if !ok {
		t.Fatal("Lookup(Market) not found")
	}
	if r.Shape.Rows != 50 {
		t.Errorf("Market rows = %d, want 50", r.Shape.Rows)
	}

	if _, ok := Lookup("Nope"); ok {
		t.Error("Lookup(Nope) found, want not found")
	}
}
