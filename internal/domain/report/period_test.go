package report

import (
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.September, 15, 10, 30, 0, 0, time.UTC)

func TestResolvePeriod_ExplicitDates(t *testing.T) {
	t.Parallel()
	got, err := ResolvePeriod(PeriodParams{StartDate: "2025-06-01", EndDate: "2025-06-30"}, WindowLast30Days, testNow)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", got.Start.Format("2006-01-02"))
	assert.Equal(t, "2025-06-30", got.End.Format("2006-01-02"))
	assert.Equal(t, 30, got.TotalDays)
	assert.Equal(t, 2025, got.Year())
}

func TestResolvePeriod_SingleDayRange(t *testing.T) {
	t.Parallel()
	got, err := ResolvePeriod(PeriodParams{StartDate: "2025-06-01", EndDate: "2025-06-01"}, WindowLast30Days, testNow)

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalDays)
}

func TestResolvePeriod_YearOverridesDates(t *testing.T) {
	t.Parallel()
	got, err := ResolvePeriod(PeriodParams{StartDate: "2025-06-01", EndDate: "2025-06-30", Year: 2024}, WindowFullCurrentYear, testNow)

	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got.Start.Format("2006-01-02"))
	assert.Equal(t, "2024-12-31", got.End.Format("2006-01-02"))
	// 2024 is a leap year.
	assert.Equal(t, 366, got.TotalDays)
}

func TestResolvePeriod_PolicyDefaults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		policy    WindowPolicy
		wantStart string
		wantEnd   string
	}{
		{"last 30 days", WindowLast30Days, "2025-08-16", "2025-09-15"},
		{"last 90 days", WindowLast90Days, "2025-06-17", "2025-09-15"},
		{"year to date", WindowCurrentYearToDate, "2025-01-01", "2025-09-15"},
		{"full current year", WindowFullCurrentYear, "2025-01-01", "2025-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePeriod(PeriodParams{}, tt.policy, testNow)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.Start.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, got.End.Format("2006-01-02"))
		})
	}
}

func TestResolvePeriod_InvalidYear(t *testing.T) {
	t.Parallel()
	for _, year := range []int{1999, 2027} {
		_, err := ResolvePeriod(PeriodParams{Year: year}, WindowFullCurrentYear, testNow)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, "year %d", year)
		assert.Contains(t, verrs.ToMap(), "year")
	}
}

func TestResolvePeriod_NextYearAllowed(t *testing.T) {
	t.Parallel()
	got, err := ResolvePeriod(PeriodParams{Year: 2026}, WindowFullCurrentYear, testNow)

	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
}

func TestResolvePeriod_MalformedDates(t *testing.T) {
	t.Parallel()
	_, err := ResolvePeriod(PeriodParams{StartDate: "01-06-2025", EndDate: "not-a-date"}, WindowLast30Days, testNow)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "start_date")
	assert.Contains(t, m, "end_date")
}

func TestResolvePeriod_ReversedRange(t *testing.T) {
	t.Parallel()
	_, err := ResolvePeriod(PeriodParams{StartDate: "2025-06-30", EndDate: "2025-06-01"}, WindowLast30Days, testNow)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "start_date")
}

func TestPeriodContains(t *testing.T) {
	t.Parallel()
	p := Period{
		Start: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, p.Contains(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "December", MonthName(12))
	assert.Equal(t, "month-13", MonthName(13))
}
