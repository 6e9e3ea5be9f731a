package report

import (
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

// WindowPolicy is the per-endpoint default window applied when a request
// carries neither an explicit date range nor a year. The four report families
// genuinely differ here, so the default is never shared.
type WindowPolicy int

const (
	WindowLast30Days WindowPolicy = iota
	WindowLast90Days
	WindowCurrentYearToDate
	WindowFullCurrentYear
)

// Period is the inclusive calendar-date window a report covers. Dates are
// treated as calendar dates; no timezone conversion is performed.
type Period struct {
	Start     time.Time
	End       time.Time
	TotalDays int
}

// Year returns the calendar year the period starts in, which is the report
// year for month-bucketed breakdowns.
func (p Period) Year() int {
	return p.Start.Year()
}

// Contains reports whether the calendar date d falls inside the period.
func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// PeriodParams are the raw window parameters of a report request.
// Year overrides the date pair; the date pair overrides the policy default.
type PeriodParams struct {
	StartDate string
	EndDate   string
	Year      int
}

const dateLayout = "2006-01-02"

// ResolvePeriod normalizes request parameters into a concrete inclusive
// Period. Malformed dates, a reversed range and out-of-range years surface as
// field-level validation errors naming the offending parameter.
func ResolvePeriod(params PeriodParams, policy WindowPolicy, now time.Time) (Period, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if params.Year != 0 {
		if params.Year < 2000 || params.Year > now.Year()+1 {
			return Period{}, validator.ValidationErrors{{
				Field:   "year",
				Message: fmt.Sprintf("year must be between 2000 and %d", now.Year()+1),
			}}
		}
		start := time.Date(params.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(params.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
		return newPeriod(start, end), nil
	}

	if params.StartDate != "" || params.EndDate != "" {
		var errs validator.ValidationErrors
		start, ok := validator.IsValidDate(params.StartDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"})
		}
		end, ok := validator.IsValidDate(params.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a date in YYYY-MM-DD format"})
		}
		if len(errs) > 0 {
			return Period{}, errs
		}
		if start.After(end) {
			return Period{}, validator.ValidationErrors{{
				Field:   "start_date",
				Message: "start_date must not be after end_date",
			}}
		}
		return newPeriod(start, end), nil
	}

	switch policy {
	case WindowLast30Days:
		return newPeriod(today.AddDate(0, 0, -30), today), nil
	case WindowLast90Days:
		return newPeriod(today.AddDate(0, 0, -90), today), nil
	case WindowCurrentYearToDate:
		return newPeriod(time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), today), nil
	case WindowFullCurrentYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		return newPeriod(start, end), nil
	default:
		return Period{}, fmt.Errorf("unknown window policy %d", policy)
	}
}

func newPeriod(start, end time.Time) Period {
	return Period{
		Start:     start,
		End:       end,
		TotalDays: int(end.Sub(start).Hours()/24) + 1,
	}
}
