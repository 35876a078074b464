package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Defaults(t *testing.T) {
	f := GroupFilter{Search: "soccer"}.Normalize()

	assert.Equal(t, All, f.Category)
	assert.Equal(t, All, f.Area)
	assert.Equal(t, []string{All}, f.AgeGroups)
	assert.Equal(t, "soccer", f.Search)
	assert.False(t, f.FiltersCategory())
	assert.False(t, f.FiltersArea())
	assert.False(t, f.FiltersAgeGroups())
}

func TestFiltersAgeGroups_AllWins(t *testing.T) {
	f := GroupFilter{AgeGroups: []string{"Adult", All, "Child"}}.Normalize()
	assert.False(t, f.FiltersAgeGroups())

	f = GroupFilter{AgeGroups: []string{"Adult", "", "Child"}}.Normalize()
	assert.True(t, f.FiltersAgeGroups())
	assert.Equal(t, []string{"Adult", "Child"}, f.AgeGroups)
}

func TestInsightMetricValid(t *testing.T) {
	for _, m := range Metrics {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, InsightMetric("postcode").Valid())
	assert.False(t, InsightMetric("").Valid())
}

func TestNormalize_KeepsWhitespace(t *testing.T) {
	f := GroupFilter{Category: " Arts", Area: "North ", AgeGroups: []string{" Teen"}, Search: "  "}.Normalize()

	assert.Equal(t, " Arts", f.Category)
	assert.Equal(t, "North ", f.Area)
	assert.Equal(t, []string{" Teen"}, f.AgeGroups)
	assert.Equal(t, "  ", f.Search)
	assert.True(t, f.FiltersCategory())
	assert.True(t, f.FiltersArea())
}
