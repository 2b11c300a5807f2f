package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jocross/leadboard/internal/model"
)

func TestBuildSummary(t *testing.T) {
	t.Parallel()

	leads := []model.Lead{
		{Campaign: "a", HasPlan: model.PlanYes},
		{Campaign: "a", HasPlan: model.PlanNo},
		{Campaign: "b", HasPlan: model.PlanYes},
		{Campaign: "b", HasPlan: model.PlanYes},
	}

	got := BuildSummary(leads)
	assert.Equal(t, Summary{
		TotalLeads:     4,
		Converted:      3,
		ConversionRate: "75.0",
		Campaigns:      2,
	}, got)
}

func TestBuildSummary_Empty(t *testing.T) {
	t.Parallel()

	got := BuildSummary(nil)
	assert.Zero(t, got.TotalLeads)
	assert.Equal(t, "0", got.ConversionRate)
}

func TestBuildSnapshot(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)
	leads := []model.Lead{
		{
			Campaign:   "Facebook Saúde",
			Specialist: "Dra. Maria Pediatra",
			AgeBracket: "26-35",
			HasPlan:    model.PlanYes,
			CreatedAt:  time.Date(2025, 7, 29, 10, 0, 0, 0, time.UTC),
		},
	}

	snap := BuildSnapshot(leads, now)

	assert.Equal(t, 1, snap.Summary.TotalLeads)
	require.Len(t, snap.Hourly, 24)
	require.Len(t, snap.Weekday, 7)
	require.Len(t, snap.Trend, TrendDays)
	require.Len(t, snap.PlanStatus, 3)
	assert.Equal(t, []string{"Facebook Saúde"}, snap.Filters.Campaigns)
	assert.Equal(t, now, snap.GeneratedAt)

	// Aggregations observe the same single lead.
	assert.Equal(t, 1, snap.Hourly[10].Value)
	assert.Equal(t, 1, snap.Trend[28].Leads)
	assert.Equal(t, 1, snap.PlanStatus[0].Value)
}

func TestBuildSnapshot_Idempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)
	leads := []model.Lead{
		{Campaign: "a", HasPlan: model.PlanYes, CreatedAt: now.Add(-time.Hour)},
		{Campaign: "b", CreatedAt: now.Add(-48 * time.Hour)},
	}

	assert.Equal(t, BuildSnapshot(leads, now), BuildSnapshot(leads, now))
}
