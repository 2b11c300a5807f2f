package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jocross/leadboard/internal/model"
)

// leadAt builds a lead created at the given instant.
func leadAt(ts time.Time) model.Lead {
	return model.Lead{CreatedAt: ts}
}

func sumBuckets(buckets []BucketCount) int {
	total := 0
	for _, b := range buckets {
		total += b.Value
	}
	return total
}

func TestHourlyHistogram_AlwaysFullDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		leads []model.Lead
	}{
		{"empty", nil},
		{"one lead", []model.Lead{leadAt(time.Date(2025, 7, 1, 14, 30, 0, 0, time.UTC))}},
		{"several hours", []model.Lead{
			leadAt(time.Date(2025, 7, 1, 0, 5, 0, 0, time.UTC)),
			leadAt(time.Date(2025, 7, 1, 23, 59, 0, 0, time.UTC)),
			leadAt(time.Date(2025, 7, 2, 23, 0, 0, 0, time.UTC)),
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := HourlyHistogram(tt.leads)
			require.Len(t, got, 24)
			assert.Equal(t, len(tt.leads), sumBuckets(got))
			assert.Equal(t, "0:00", got[0].Label)
			assert.Equal(t, "23:00", got[23].Label)
		})
	}
}

func TestHourlyHistogram_BucketsByHour(t *testing.T) {
	t.Parallel()

	leads := []model.Lead{
		leadAt(time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)),
		leadAt(time.Date(2025, 7, 8, 14, 59, 59, 0, time.UTC)),
		leadAt(time.Date(2025, 7, 1, 9, 15, 0, 0, time.UTC)),
	}

	got := HourlyHistogram(leads)
	assert.Equal(t, 2, got[14].Value)
	assert.Equal(t, 1, got[9].Value)
	assert.Equal(t, 0, got[10].Value)
}

func TestHourlyHistogram_SkipsZeroTimestamps(t *testing.T) {
	t.Parallel()

	leads := []model.Lead{
		leadAt(time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)),
		{}, // no parseable creation time
	}

	got := HourlyHistogram(leads)
	assert.Equal(t, 1, sumBuckets(got))
}

func TestWeekdayHistogram_AlwaysFullWeek(t *testing.T) {
	t.Parallel()

	got := WeekdayHistogram(nil)
	require.Len(t, got, 7)
	assert.Equal(t, "Domingo", got[0].Label)
	assert.Equal(t, "Sábado", got[6].Label)
	assert.Equal(t, 0, sumBuckets(got))
}

func TestWeekdayHistogram_BucketsByWeekday(t *testing.T) {
	t.Parallel()

	// 2025-07-01 is a Tuesday.
	tuesday := time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)
	leads := []model.Lead{
		leadAt(tuesday),
		leadAt(tuesday.AddDate(0, 0, 7)),
		leadAt(tuesday.AddDate(0, 0, 4)), // Saturday
	}

	got := WeekdayHistogram(leads)
	assert.Equal(t, 2, got[time.Tuesday].Value)
	assert.Equal(t, "Terça", got[time.Tuesday].Label)
	assert.Equal(t, 1, got[time.Saturday].Value)
	assert.Equal(t, 0, got[time.Monday].Value)
}

func TestHistograms_PureOverSameInput(t *testing.T) {
	t.Parallel()

	leads := []model.Lead{
		leadAt(time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)),
		leadAt(time.Date(2025, 7, 3, 8, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, HourlyHistogram(leads), HourlyHistogram(leads))
	assert.Equal(t, WeekdayHistogram(leads), WeekdayHistogram(leads))
}
