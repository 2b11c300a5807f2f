package analytics

import (
	"time"

	"github.com/jocross/leadboard/internal/model"
)

// Summary holds the headline KPIs shown at the top of the dashboard.
type Summary struct {
	TotalLeads     int    `json:"total_leads"`
	Converted      int    `json:"converted"`
	ConversionRate string `json:"conversion_rate"` // percentage, one decimal
	Campaigns      int    `json:"campaigns"`
}

// Snapshot bundles every derived view for a single dashboard render.
type Snapshot struct {
	Summary       Summary               `json:"summary"`
	Hourly        []BucketCount         `json:"hourly"`
	Weekday       []BucketCount         `json:"weekday"`
	Trend         []TrendPoint          `json:"trend"`
	Campaigns     []CampaignPerformance `json:"campaign_ranking"`
	CampaignDist  []BucketCount         `json:"campaign_distribution"`
	Ages          []AgePerformance      `json:"age_breakdown"`
	AgeDist       []BucketCount         `json:"age_distribution"`
	PlanStatus    []BucketCount         `json:"plan_status"`
	Filters       Filters               `json:"filters"`
	GeneratedAt   time.Time             `json:"generated_at"`
}

// BuildSummary computes the headline KPIs.
func BuildSummary(leads []model.Lead) Summary {
	converted := 0
	for _, l := range leads {
		if l.Converted() {
			converted++
		}
	}
	return Summary{
		TotalLeads:     len(leads),
		Converted:      converted,
		ConversionRate: formatRate(converted, len(leads)),
		Campaigns:      len(distinct(leads, func(l model.Lead) string { return l.Campaign })),
	}
}

// BuildSnapshot computes every derived view over the given lead list.
func BuildSnapshot(leads []model.Lead, now time.Time) Snapshot {
	return Snapshot{
		Summary:      BuildSummary(leads),
		Hourly:       HourlyHistogram(leads),
		Weekday:      WeekdayHistogram(leads),
		Trend:        DailyTrend(leads, now),
		Campaigns:    CampaignRanking(leads),
		CampaignDist: CampaignCounts(leads),
		Ages:         AgeBreakdown(leads),
		AgeDist:      AgeCounts(leads),
		PlanStatus:   PlanStatusBreakdown(leads),
		Filters:      FilterOptions(leads),
		GeneratedAt:  now,
	}
}
