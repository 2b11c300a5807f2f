package analytics

import (
	"sort"
	"strconv"

	"github.com/jocross/leadboard/internal/model"
)

// MaxRankedCampaigns caps the campaign ranking output.
const MaxRankedCampaigns = 8

// CampaignPerformance holds conversion figures for one campaign. Rate is
// the conversion percentage formatted to one decimal place, "0" when the
// group is empty.
type CampaignPerformance struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Converted int    `json:"converted"`
	Rate      string `json:"rate"`
}

// AgePerformance holds conversion figures for one age bracket. Rate is the
// raw conversion percentage in [0,100].
type AgePerformance struct {
	Name      string  `json:"name"`
	Total     int     `json:"total"`
	Converted int     `json:"converted"`
	Rate      float64 `json:"rate"`
}

// group accumulates totals for one categorical key.
type group struct {
	name      string
	total     int
	converted int
}

func (g group) rate() float64 {
	if g.total == 0 {
		return 0
	}
	return float64(g.converted) / float64(g.total) * 100
}

// rankRate is the rate rounded to the one decimal the dashboard displays.
// The ranking sorts on this, so campaigns that render with equal rates are
// a genuine tie and keep first-encounter order.
func (g group) rankRate() float64 {
	r, _ := strconv.ParseFloat(formatRate(g.converted, g.total), 64)
	return r
}

// collectGroups buckets leads by key in first-encounter order.
func collectGroups(leads []model.Lead, key func(model.Lead) string) []group {
	index := make(map[string]int)
	var groups []group
	for _, l := range leads {
		k := key(l)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{name: k})
		}
		groups[i].total++
		if l.Converted() {
			groups[i].converted++
		}
	}
	return groups
}

// CampaignRanking groups leads by campaign, ranks descending by conversion
// rate and returns at most MaxRankedCampaigns entries. Ties keep the order
// in which campaigns were first seen in the input, which for a store fetch
// is most-recent-lead first.
func CampaignRanking(leads []model.Lead) []CampaignPerformance {
	groups := collectGroups(leads, model.Lead.CampaignLabel)

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].rankRate() > groups[j].rankRate()
	})
	if len(groups) > MaxRankedCampaigns {
		groups = groups[:MaxRankedCampaigns]
	}

	out := make([]CampaignPerformance, len(groups))
	for i, g := range groups {
		out[i] = CampaignPerformance{
			Name:      g.name,
			Total:     g.total,
			Converted: g.converted,
			Rate:      formatRate(g.converted, g.total),
		}
	}
	return out
}

// AgeBreakdown groups leads by age bracket in first-encounter order. All
// brackets are returned; no sort is applied.
func AgeBreakdown(leads []model.Lead) []AgePerformance {
	groups := collectGroups(leads, model.Lead.AgeLabel)

	out := make([]AgePerformance, len(groups))
	for i, g := range groups {
		out[i] = AgePerformance{
			Name:      g.name,
			Total:     g.total,
			Converted: g.converted,
			Rate:      g.rate(),
		}
	}
	return out
}

// PlanStatusBreakdown counts leads by plan status. The result always has
// exactly 3 entries in fixed order: with plan, without plan, not informed.
// Unexpected plan-status text counts as not informed.
func PlanStatusBreakdown(leads []model.Lead) []BucketCount {
	out := []BucketCount{
		{Label: "Com Plano"},
		{Label: "Sem Plano"},
		{Label: model.NotInformed},
	}
	for _, l := range leads {
		switch l.HasPlan {
		case model.PlanYes:
			out[0].Value++
		case model.PlanNo:
			out[1].Value++
		default:
			out[2].Value++
		}
	}
	return out
}

// CampaignCounts counts leads per campaign in first-encounter order.
func CampaignCounts(leads []model.Lead) []BucketCount {
	return distributionCounts(leads, model.Lead.CampaignLabel)
}

// AgeCounts counts leads per age bracket in first-encounter order.
func AgeCounts(leads []model.Lead) []BucketCount {
	return distributionCounts(leads, model.Lead.AgeLabel)
}

func distributionCounts(leads []model.Lead, key func(model.Lead) string) []BucketCount {
	groups := collectGroups(leads, key)
	out := make([]BucketCount, len(groups))
	for i, g := range groups {
		out[i] = BucketCount{Label: g.name, Value: g.total}
	}
	return out
}

// Filters holds the distinct values used to populate the dashboard's
// filter dropdowns, in first-occurrence order.
type Filters struct {
	Campaigns   []string `json:"campaigns"`
	Specialists []string `json:"specialists"`
}

// FilterOptions collects the distinct non-empty campaign and specialist
// values present in the input.
func FilterOptions(leads []model.Lead) Filters {
	return Filters{
		Campaigns:   distinct(leads, func(l model.Lead) string { return l.Campaign }),
		Specialists: distinct(leads, func(l model.Lead) string { return l.Specialist }),
	}
}

func distinct(leads []model.Lead, key func(model.Lead) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range leads {
		k := key(l)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// formatRate renders converted/total as a percentage with one decimal
// place, "0" for an empty group.
func formatRate(converted, total int) string {
	if total == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(converted)/float64(total)*100, 'f', 1, 64)
}
