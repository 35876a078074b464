package services

import (
	"sort"

	"aroundtown/internal/models/db_models"
	"aroundtown/internal/models/request_models"
	"aroundtown/internal/models/response_models"
)

type metricInfo struct {
	label string
	title string
	chart string
}

var metricInfos = map[request_models.InsightMetric]metricInfo{
	request_models.MetricArea:     {label: "Groups by Area", title: "Groups per Area", chart: response_models.ChartBar},
	request_models.MetricCategory: {label: "Category Distribution", title: "Group Categories", chart: response_models.ChartPie},
	request_models.MetricAgeGroup: {label: "Age Group Distribution", title: "Age Group Distribution", chart: response_models.ChartBar},
}

// MetricLabel is the picker label for m, or "" when m is unknown.
func MetricLabel(m request_models.InsightMetric) string {
	return metricInfos[m].label
}

// Aggregate counts groups per distinct value of the metric's field. Category
// ids resolve through labels; NULL or unknown ids count as "Unknown". Points
// are ordered by count descending, then label.
func Aggregate(groups []db_models.Group, metric request_models.InsightMetric, labels map[uint]string) response_models.Insight {
	info := metricInfos[metric]
	counts := make(map[string]int)
	for _, g := range groups {
		counts[fieldValue(g, metric, labels)]++
	}

	points := make([]response_models.InsightPoint, 0, len(counts))
	for label, n := range counts {
		points = append(points, response_models.InsightPoint{Label: label, Count: n})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Count != points[j].Count {
			return points[i].Count > points[j].Count
		}
		return points[i].Label < points[j].Label
	})

	return response_models.Insight{
		Metric: string(metric),
		Label:  info.label,
		Title:  info.title,
		Chart:  info.chart,
		Total:  len(groups),
		Points: points,
	}
}

func fieldValue(g db_models.Group, metric request_models.InsightMetric, labels map[uint]string) string {
	var v string
	switch metric {
	case request_models.MetricArea:
		v = g.Area
	case request_models.MetricAgeGroup:
		v = g.AgeGroup
	default:
		return categoryLabel(g.CategoryID, labels)
	}
	if v == "" {
		return response_models.NotAvailable
	}
	return v
}

func categoryLabel(id *uint, labels map[uint]string) string {
	if id == nil {
		return response_models.UnknownCategory
	}
	if label, ok := labels[*id]; ok {
		return label
	}
	return response_models.UnknownCategory
}
