package report

import (
	"sort"

	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/domain/report"
)

// fullNoticeDays is the advance notice at which the planning score's notice
// component reaches its maximum.
const fullNoticeDays = 14.0

// leaveAggregate is one employee's leave picture over a period.
type leaveAggregate struct {
	Summary       report.LeaveSummary
	Balances      []report.LeaveTypeBalance
	Monthly       []report.MonthlyLeave
	PlanningScore float64
}

// spanIntersects reports whether an application's date span overlaps the period.
func spanIntersects(app leave.Application, period report.Period) bool {
	return !app.StartDate.After(period.End) && !app.EndDate.Before(period.Start)
}

// aggregateLeave folds one employee's applications and allocations into
// status counts, per-type balances, the 12-month distribution and the
// planning score.
//
// Pinned planning score (0-100): 0.60*notice + 0.40*spread, where notice is
// the average submission lead time capped at fullNoticeDays and spread is the
// share of distinct start months among approved applications. An employee
// with no approved leave scores 100: there is no planning evidence to fault.
func aggregateLeave(apps []leave.Application, allocs []leave.TypeAllocation, period report.Period) leaveAggregate {
	agg := leaveAggregate{}

	usedByType := make(map[string]float64)
	var approved []leave.Application

	for _, app := range apps {
		if !spanIntersects(app, period) {
			continue
		}
		agg.Summary.TotalApplications++
		switch app.Status {
		case leave.StatusPending:
			agg.Summary.Pending++
		case leave.StatusApproved:
			agg.Summary.Approved++
			agg.Summary.TotalDaysTaken += app.DaysRequested
			usedByType[app.LeaveType] += app.DaysRequested
			approved = append(approved, app)
		case leave.StatusRejected:
			agg.Summary.Rejected++
		case leave.StatusCancelled:
			agg.Summary.Cancelled++
		}
	}

	if agg.Summary.Approved > 0 {
		agg.Summary.AverageLeaveDuration = round2(agg.Summary.TotalDaysTaken / float64(agg.Summary.Approved))
	}
	agg.Summary.TotalDaysTaken = round2(agg.Summary.TotalDaysTaken)

	agg.Balances = leaveBalances(allocs, usedByType)
	agg.Monthly = monthlyDistribution(approved, period.Year())
	agg.PlanningScore = planningScore(approved)

	return agg
}

// leaveBalances joins allocations with recomputed usage. Types that were used
// without an allocation still get a row; their utilization is reported as 0
// so the over-use shows up in days_remaining rather than a division blowing up.
// Over-allocated utilization is deliberately not clamped at 100.
func leaveBalances(allocs []leave.TypeAllocation, usedByType map[string]float64) []report.LeaveTypeBalance {
	allocatedByType := make(map[string]float64)
	for _, alloc := range allocs {
		allocatedByType[alloc.LeaveType] += alloc.TotalAllocated
	}

	types := make(map[string]struct{})
	for t := range allocatedByType {
		types[t] = struct{}{}
	}
	for t := range usedByType {
		types[t] = struct{}{}
	}

	balances := make([]report.LeaveTypeBalance, 0, len(types))
	for t := range types {
		allocated := allocatedByType[t]
		used := usedByType[t]
		balance := report.LeaveTypeBalance{
			LeaveType:      t,
			TotalAllocated: round2(allocated),
			DaysUsed:       round2(used),
			DaysRemaining:  round2(allocated - used),
		}
		if allocated > 0 {
			balance.UtilizationRate = round2(used / allocated * 100)
		}
		balances = append(balances, balance)
	}

	sort.Slice(balances, func(i, j int) bool { return balances[i].LeaveType < balances[j].LeaveType })
	return balances
}

// monthlyDistribution buckets approved applications by start month within the
// report year. All 12 months are present even when empty.
func monthlyDistribution(approved []leave.Application, year int) []report.MonthlyLeave {
	months := make([]report.MonthlyLeave, 12)
	for i := range months {
		months[i].Month = i + 1
		months[i].MonthName = report.MonthName(i + 1)
	}
	for _, app := range approved {
		if app.StartDate.Year() != year {
			continue
		}
		idx := int(app.StartDate.Month()) - 1
		months[idx].Applications++
		months[idx].DaysTaken += app.DaysRequested
	}
	for i := range months {
		months[i].DaysTaken = round2(months[i].DaysTaken)
	}
	return months
}

func planningScore(approved []leave.Application) float64 {
	if len(approved) == 0 {
		return 100.0
	}

	var noticeSum float64
	startMonths := make(map[int]struct{})
	for _, app := range approved {
		noticeSum += app.NoticeDays()
		startMonths[int(app.StartDate.Month())] = struct{}{}
	}

	noticeAvg := noticeSum / float64(len(approved))
	noticeComponent := noticeAvg / fullNoticeDays * 100
	if noticeComponent > 100 {
		noticeComponent = 100
	}

	spreadDenominator := len(approved)
	if spreadDenominator > 12 {
		spreadDenominator = 12
	}
	spreadComponent := float64(len(startMonths)) / float64(spreadDenominator) * 100

	return round2(0.60*noticeComponent + 0.40*spreadComponent)
}

// groupApplicationsByEmployee splits a period-wide application set into
// per-employee slices.
func groupApplicationsByEmployee(apps []leave.Application) map[string][]leave.Application {
	grouped := make(map[string][]leave.Application)
	for _, app := range apps {
		grouped[app.EmployeeID] = append(grouped[app.EmployeeID], app)
	}
	return grouped
}

// groupAllocationsByEmployee splits a year-wide allocation set into
// per-employee slices.
func groupAllocationsByEmployee(allocs []leave.TypeAllocation) map[string][]leave.TypeAllocation {
	grouped := make(map[string][]leave.TypeAllocation)
	for _, alloc := range allocs {
		grouped[alloc.EmployeeID] = append(grouped[alloc.EmployeeID], alloc)
	}
	return grouped
}
