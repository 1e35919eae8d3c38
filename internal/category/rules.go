// ABOUTME: Ordered keyword rules mapping project names to dataset shapes.
// ABOUTME: The first rule whose keyword appears in the name wins; Default catches the rest.

package category

import (
	"strings"

	"github.com/2389/bdas/internal/shape"
)

// Category names.
const (
	Sales      = "Sales"
	Customer   = "Customer"
	Employee   = "Employee"
	Marketing  = "Marketing"
	Inventory  = "Inventory"
	Financial  = "Financial"
	Operations = "Operations"
	Attrition  = "Attrition"
	Market     = "Market"
	Workforce  = "Workforce"
	Default    = "Default"
)

// Rule pairs a keyword predicate with the shape it selects.
type Rule struct {
	Category string
	// Keywords are matched case-sensitively as substrings; any one is enough.
	// An empty list matches every name.
	Keywords []string
	Shape    shape.Shape
}

// Matches reports whether name contains any of the rule's keywords.
func (r Rule) Matches(name string) bool {
	if len(r.Keywords) == 0 {
		return true
	}
	for _, kw := range r.Keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

var regions = []string{"North", "South", "East", "West"}

// rules is evaluated top to bottom. Order matters: "Employee_Attrition" resolves to
// Employee and "Marketing_Campaign" to Marketing, never Attrition or Market.
var rules = []Rule{
	{
		Category: Sales,
		Keywords: []string{"Sales"},
		Shape: shape.Shape{Category: Sales, Rows: 100, Columns: []shape.ColumnDef{
			shape.DateSequence("Date"),
			shape.Choice("Region", regions...),
			shape.Choice("Product", "A", "B", "C", "D"),
			shape.IntRange("Sales", 100, 1000),
		}},
	},
	{
		Category: Customer,
		Keywords: []string{"Customer"},
		Shape: shape.Shape{Category: Customer, Rows: 100, Columns: []shape.ColumnDef{
			shape.Sequence("CustomerID"),
			shape.IntRange("Age", 18, 70),
			shape.Choice("Gender", "Male", "Female"),
			shape.IntRange("PurchaseHistory", 1, 20),
			shape.Choice("Segment", "Low", "Medium", "High"),
		}},
	},
	{
		Category: Employee,
		Keywords: []string{"Employee"},
		Shape: shape.Shape{Category: Employee, Rows: 100, Columns: []shape.ColumnDef{
			shape.Sequence("EmployeeID"),
			shape.Choice("Department", "HR", "Sales", "IT", "Finance"),
			shape.IntRange("Attendance", 0, 31),
			shape.IntRange("PerformanceScore", 50, 100),
		}},
	},
	{
		Category: Marketing,
		Keywords: []string{"Marketing"},
		Shape: shape.Shape{Category: Marketing, Rows: 20, Columns: []shape.ColumnDef{
			shape.Sequence("CampaignID"),
			shape.Choice("Channel", "Email", "Social Media", "TV", "Radio"),
			shape.IntRange("Spend", 1000, 10000),
			shape.RoundedFloatRange("ROI", 0.5, 5.0),
		}},
	},
	{
		Category: Inventory,
		Keywords: []string{"Inventory", "Supply"},
		Shape: shape.Shape{Category: Inventory, Rows: 50, Columns: []shape.ColumnDef{
			shape.Sequence("ProductID"),
			shape.IntRange("StockLevel", 10, 500),
			shape.IntRange("ReorderLevel", 20, 200),
			shape.IntRange("SalesLastMonth", 5, 100),
		}},
	},
	{
		Category: Financial,
		Keywords: []string{"Financial", "Portfolio"},
		Shape: shape.Shape{Category: Financial, Rows: 100, Columns: []shape.ColumnDef{
			shape.DateSequence("Date"),
			shape.Choice("Asset", "StockA", "StockB", "BondC", "ETF1"),
			shape.RoundedFloatRange("Price", 50, 500),
			shape.RoundedFloatRange("RiskScore", 0, 1),
		}},
	},
	{
		Category: Operations,
		Keywords: []string{"Operations"},
		Shape: shape.Shape{Category: Operations, Rows: 20, Columns: []shape.ColumnDef{
			shape.Sequence("ResourceID"),
			shape.IntRange("AvailableHours", 0, 160),
			shape.IntRange("TaskLoad", 0, 200),
			shape.RoundedFloatRange("Efficiency", 0.5, 1.0),
		}},
	},
	{
		Category: Attrition,
		Keywords: []string{"Attrition"},
		Shape: shape.Shape{Category: Attrition, Rows: 100, Columns: []shape.ColumnDef{
			shape.Sequence("EmployeeID"),
			shape.IntRange("Age", 22, 60),
			shape.IntRange("Tenure", 0, 20),
			shape.IntRange("Salary", 30000, 150000),
			shape.ChoiceInt("LeftCompany", 0, 1),
		}},
	},
	{
		Category: Market,
		Keywords: []string{"Market"},
		Shape: shape.Shape{Category: Market, Rows: 50, Columns: []shape.ColumnDef{
			shape.Choice("Region", regions...),
			shape.IntRange("CompetitorCount", 1, 10),
			shape.RoundedFloatRange("AvgPrice", 50, 500),
			shape.IntRange("PotentialCustomers", 1000, 10000),
		}},
	},
	{
		Category: Workforce,
		Keywords: []string{"HR", "Workforce"},
		Shape: shape.Shape{Category: Workforce, Rows: 100, Columns: []shape.ColumnDef{
			shape.Sequence("EmployeeID"),
			shape.Choice("Skill", "Python", "Excel", "SQL", "Management"),
			shape.Choice("ProjectAllocated", "ProjectA", "ProjectB", "ProjectC"),
			shape.IntRange("HoursWorked", 20, 160),
		}},
	},
	{
		Category: Default,
		Shape: shape.Shape{Category: Default, Rows: 20, Columns: []shape.ColumnDef{
			shape.Sequence("SampleColumn"),
		}},
	},
}
