package analytics

import (
	"fmt"
	"time"

	"github.com/jocross/leadboard/internal/model"
)

// TrendDays is the length of the daily trend window.
const TrendDays = 30

// TrendPoint is one calendar day in the trend series.
type TrendPoint struct {
	Date        string `json:"date"` // dd/mm, display form
	Leads       int    `json:"leads"`
	Conversions int    `json:"conversion"`
}

// DailyTrend builds the series of the TrendDays most recent calendar days
// ending at now, oldest first. Each point carries the number of leads
// created that day and the subset that converted. Days with no leads are
// emitted with zero counts; the series never skips a day.
func DailyTrend(leads []model.Lead, now time.Time) []TrendPoint {
	out := make([]TrendPoint, TrendDays)
	for i := range out {
		day := now.AddDate(0, 0, -(TrendDays - 1 - i))
		y, m, d := day.Date()

		p := TrendPoint{Date: fmt.Sprintf("%02d/%02d", d, int(m))}
		for _, l := range leads {
			if l.CreatedAt.IsZero() {
				continue
			}
			ly, lm, ld := l.CreatedAt.Date()
			if ly != y || lm != m || ld != d {
				continue
			}
			p.Leads++
			if l.Converted() {
				p.Conversions++
			}
		}
		out[i] = p
	}
	return out
}
