package response_models

// NotAvailable is shown for any optional field without a value.
const NotAvailable = "N/A"

// UnknownCategory labels groups whose category does not resolve.
const UnknownCategory = "Unknown"

type GroupCard struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Area        string `json:"area"`
	AgeGroup    string `json:"age_group"`
	Category    string `json:"category"`
	Description string `json:"description"`
	// Website is empty when absent; WebsiteLabel is then N/A.
	Website      string `json:"website,omitempty"`
	WebsiteLabel string `json:"website_label"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

type GroupList struct {
	Count  int         `json:"count"`
	Groups []GroupCard `json:"groups"`
}

// FilterOptions are the selectable values, each list starting with All.
type FilterOptions struct {
	Categories []string `json:"categories"`
	AgeGroups  []string `json:"age_groups"`
	Areas      []string `json:"areas"`
}

type InsightPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Insight struct {
	Metric string         `json:"metric"`
	Label  string         `json:"label"`
	Title  string         `json:"title"`
	Chart  string         `json:"chart"`
	Total  int            `json:"total"`
	Points []InsightPoint `json:"points"`
}

const (
	ChartBar = "bar"
	ChartPie = "pie"
)
