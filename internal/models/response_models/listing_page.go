package response_models

import "aroundtown/internal/models/request_models"

// ListingPage is everything one render of the directory page needs.
type ListingPage struct {
	Filter   request_models.GroupFilter `json:"filter"`
	Options  FilterOptions              `json:"options"`
	List     GroupList                  `json:"list"`
	Insights []Insight                  `json:"insights"`
	View     string                     `json:"view"`
	Metric   string                     `json:"metric"`
}

// SelectedInsight returns the insight for Metric, or the first one.
func (p *ListingPage) SelectedInsight() Insight {
	for _, in := range p.Insights {
		if in.Metric == p.Metric {
			return in
		}
	}
	if len(p.Insights) > 0 {
		return p.Insights[0]
	}
	return Insight{}
}
