// ABOUTME: Static column descriptions used when no OpenAI API key is available.
// ABOUTME: Covers every column produced by the built-in dataset shapes.

package describe

var staticDescriptions = map[string]string{
	"Date":               "Calendar day of the observation.",
	"Region":             "Geographic region the record belongs to.",
	"Product":            "Product line code.",
	"Sales":              "Units sold on the day.",
	"CustomerID":         "Unique customer identifier.",
	"Age":                "Age in years.",
	"Gender":             "Self-reported gender.",
	"PurchaseHistory":    "Number of past purchases.",
	"Segment":            "Customer value segment.",
	"EmployeeID":         "Unique employee identifier.",
	"Department":         "Department the employee works in.",
	"Attendance":         "Days present in the month.",
	"PerformanceScore":   "Latest performance review score.",
	"CampaignID":         "Unique campaign identifier.",
	"Channel":            "Marketing channel the campaign ran on.",
	"Spend":              "Campaign budget spent.",
	"ROI":                "Return on investment multiple.",
	"ProductID":          "Unique product identifier.",
	"StockLevel":         "Units currently in stock.",
	"ReorderLevel":       "Stock level that triggers a reorder.",
	"SalesLastMonth":     "Units sold in the previous month.",
	"Asset":              "Portfolio holding.",
	"Price":              "Closing price of the asset.",
	"RiskScore":          "Normalized risk score, higher is riskier.",
	"ResourceID":         "Unique resource identifier.",
	"AvailableHours":     "Hours the resource is available in the period.",
	"TaskLoad":           "Hours of work assigned to the resource.",
	"Efficiency":         "Share of available time spent productively.",
	"Tenure":             "Years with the company.",
	"Salary":             "Annual base salary.",
	"LeftCompany":        "1 if the employee left, 0 otherwise.",
	"CompetitorCount":    "Number of competitors active in the region.",
	"AvgPrice":           "Average market price point.",
	"PotentialCustomers": "Estimated addressable customers.",
	"Skill":              "Primary skill of the employee.",
	"ProjectAllocated":   "Project the employee is assigned to.",
	"HoursWorked":        "Hours logged in the period.",
	"SampleColumn":       "Placeholder sequence for uncategorized projects.",
}

func staticDescription(column string) string {
	if d, ok := staticDescriptions[column]; ok {
		return d
	}
	return "Generated sample column."
}
