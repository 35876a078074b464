package request_models

// All is the filter value meaning "no restriction on this field".
const All = "All"

// GroupFilter carries the user's selections for one render cycle.
type GroupFilter struct {
	Category  string   `form:"category" json:"category"`
	AgeGroups []string `form:"age_group" json:"age_groups"`
	Area      string   `form:"area" json:"area"`
	Search    string   `form:"q" json:"search"`
}

// Normalize fills unset selections with All. Values are otherwise kept as
// sent: options and stored rows are compared exactly, whitespace included.
func (f GroupFilter) Normalize() GroupFilter {
	out := GroupFilter{
		Category: f.Category,
		Area:     f.Area,
		Search:   f.Search,
	}
	if out.Category == "" {
		out.Category = All
	}
	if out.Area == "" {
		out.Area = All
	}
	for _, a := range f.AgeGroups {
		if a != "" {
			out.AgeGroups = append(out.AgeGroups, a)
		}
	}
	if len(out.AgeGroups) == 0 {
		out.AgeGroups = []string{All}
	}
	return out
}

func (f GroupFilter) FiltersCategory() bool {
	return f.Category != "" && f.Category != All
}

func (f GroupFilter) FiltersArea() bool {
	return f.Area != "" && f.Area != All
}

// FiltersAgeGroups is false whenever the set contains All, whatever else it holds.
func (f GroupFilter) FiltersAgeGroups() bool {
	if len(f.AgeGroups) == 0 {
		return false
	}
	for _, a := range f.AgeGroups {
		if a == All {
			return false
		}
	}
	return true
}

// InsightMetric picks which field the insights view counts by.
type InsightMetric string

const (
	MetricArea     InsightMetric = "area"
	MetricCategory InsightMetric = "category"
	MetricAgeGroup InsightMetric = "age_group"
)

// Metrics lists the insight metrics in picker order.
var Metrics = []InsightMetric{MetricArea, MetricCategory, MetricAgeGroup}

func (m InsightMetric) Valid() bool {
	switch m {
	case MetricArea, MetricCategory, MetricAgeGroup:
		return true
	default:
		return false
	}
}

// PageRequest is the full query string of the listing page.
type PageRequest struct {
	GroupFilter
	View   string        `form:"view"`
	Metric InsightMetric `form:"metric"`
}

const (
	ViewGroups   = "groups"
	ViewInsights = "insights"
)
