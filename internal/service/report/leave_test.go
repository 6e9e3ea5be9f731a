package report

import (
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// application builds a leave request submitted noticeDays before its start.
func application(employeeID, leaveType string, status leave.Status, start time.Time, days float64, noticeDays int) leave.Application {
	end := start.AddDate(0, 0, int(days)-1)
	if days < 1 {
		end = start
	}
	return leave.Application{
		ID:            employeeID + "-" + start.Format("2006-01-02"),
		EmployeeID:    employeeID,
		LeaveType:     leaveType,
		StartDate:     start,
		EndDate:       end,
		Status:        status,
		DaysRequested: days,
		SubmittedAt:   start.AddDate(0, 0, -noticeDays),
	}
}

func TestAggregateLeave_SummaryCounts(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.January, 1), day(2025, time.December, 31))

	apps := []leave.Application{
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.February, 10), 5, 20),
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.July, 7), 3, 10),
		application("emp-1", "sick", leave.StatusPending, day(2025, time.August, 4), 2, 1),
		application("emp-1", "annual", leave.StatusRejected, day(2025, time.September, 1), 4, 2),
		application("emp-1", "annual", leave.StatusCancelled, day(2025, time.October, 6), 1, 30),
	}

	agg := aggregateLeave(apps, nil, period)

	assert.Equal(t, 5, agg.Summary.TotalApplications)
	assert.Equal(t, 2, agg.Summary.Approved)
	assert.Equal(t, 1, agg.Summary.Pending)
	assert.Equal(t, 1, agg.Summary.Rejected)
	assert.Equal(t, 1, agg.Summary.Cancelled)
	// Only approved applications count toward days taken.
	assert.Equal(t, 8.0, agg.Summary.TotalDaysTaken)
	assert.Equal(t, 4.0, agg.Summary.AverageLeaveDuration)
}

func TestAggregateLeave_IgnoresApplicationsOutsidePeriod(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.January, 1), day(2025, time.December, 31))

	apps := []leave.Application{
		application("emp-1", "annual", leave.StatusApproved, day(2024, time.June, 3), 5, 14),
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.June, 2), 5, 14),
	}

	agg := aggregateLeave(apps, nil, period)

	assert.Equal(t, 1, agg.Summary.TotalApplications)
	assert.Equal(t, 5.0, agg.Summary.TotalDaysTaken)
}

func TestAggregateLeave_SpanningApplicationCountsOnce(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.January, 1), day(2025, time.December, 31))

	// Starts in the prior year but overlaps the window.
	app := application("emp-1", "annual", leave.StatusApproved, day(2024, time.December, 29), 6, 14)

	agg := aggregateLeave([]leave.Application{app}, nil, period)

	assert.Equal(t, 1, agg.Summary.Approved)
	assert.Equal(t, 6.0, agg.Summary.TotalDaysTaken)
	// Its start month is outside the report year, so no monthly bucket gets it.
	for _, m := range agg.Monthly {
		assert.Zero(t, m.Applications)
	}
}

func TestLeaveBalances_Utilization(t *testing.T) {
	t.Parallel()
	allocs := []leave.TypeAllocation{
		{EmployeeID: "emp-1", LeaveType: "annual", Year: 2025, TotalAllocated: 12},
		{EmployeeID: "emp-1", LeaveType: "sick", Year: 2025, TotalAllocated: 10},
	}
	used := map[string]float64{"annual": 6}

	balances := leaveBalances(allocs, used)

	require.Len(t, balances, 2)
	assert.Equal(t, "annual", balances[0].LeaveType)
	assert.Equal(t, 6.0, balances[0].DaysUsed)
	assert.Equal(t, 6.0, balances[0].DaysRemaining)
	assert.Equal(t, 50.0, balances[0].UtilizationRate)
	assert.Equal(t, "sick", balances[1].LeaveType)
	assert.Equal(t, 0.0, balances[1].UtilizationRate)
}

func TestLeaveBalances_OverUseNotClamped(t *testing.T) {
	t.Parallel()
	allocs := []leave.TypeAllocation{
		{EmployeeID: "emp-1", LeaveType: "annual", Year: 2025, TotalAllocated: 10},
	}
	used := map[string]float64{"annual": 12}

	balances := leaveBalances(allocs, used)

	require.Len(t, balances, 1)
	assert.Equal(t, 120.0, balances[0].UtilizationRate)
	assert.Equal(t, -2.0, balances[0].DaysRemaining)
}

func TestLeaveBalances_UsedTypeWithoutAllocation(t *testing.T) {
	t.Parallel()
	used := map[string]float64{"unpaid": 3}

	balances := leaveBalances(nil, used)

	require.Len(t, balances, 1)
	assert.Equal(t, "unpaid", balances[0].LeaveType)
	assert.Equal(t, 0.0, balances[0].TotalAllocated)
	assert.Equal(t, 3.0, balances[0].DaysUsed)
	assert.Equal(t, -3.0, balances[0].DaysRemaining)
	// No allocation to divide by; utilization stays zero instead of blowing up.
	assert.Equal(t, 0.0, balances[0].UtilizationRate)
}

func TestMonthlyDistribution_AllTwelveMonthsPresent(t *testing.T) {
	t.Parallel()
	approved := []leave.Application{
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.February, 10), 5, 14),
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.February, 24), 2, 14),
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.November, 3), 3, 14),
	}

	months := monthlyDistribution(approved, 2025)

	require.Len(t, months, 12)
	assert.Equal(t, 1, months[0].Month)
	assert.Equal(t, "January", months[0].MonthName)
	assert.Equal(t, 2, months[1].Applications)
	assert.Equal(t, 7.0, months[1].DaysTaken)
	assert.Equal(t, 1, months[10].Applications)
	assert.Zero(t, months[5].Applications)
}

func TestPlanningScore_NoApprovedLeave(t *testing.T) {
	t.Parallel()
	// No planning evidence to fault.
	assert.Equal(t, 100.0, planningScore(nil))
}

func TestPlanningScore_FullNoticeSpreadOut(t *testing.T) {
	t.Parallel()
	approved := []leave.Application{
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.March, 3), 5, 21),
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.August, 4), 5, 30),
	}

	// Notice capped at 14 days and two distinct months over two applications.
	assert.Equal(t, 100.0, planningScore(approved))
}

func TestPlanningScore_ShortNoticeClustered(t *testing.T) {
	t.Parallel()
	approved := []leave.Application{
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.March, 3), 2, 0),
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.March, 17), 2, 0),
	}

	// Zero notice and one distinct month over two applications:
	// 0.60*0 + 0.40*(1/2*100) = 20.
	assert.Equal(t, 20.0, planningScore(approved))
}

func TestPlanningScore_PartialNotice(t *testing.T) {
	t.Parallel()
	approved := []leave.Application{
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.March, 3), 2, 7),
	}

	// 0.60*(7/14*100) + 0.40*100 = 70.
	assert.Equal(t, 70.0, planningScore(approved))
}

func TestNoticeDays_BackdatedIsZero(t *testing.T) {
	t.Parallel()
	app := application("emp-1", "annual", leave.StatusApproved, day(2025, time.March, 3), 2, -5)
	assert.Equal(t, 0.0, app.NoticeDays())
}

func TestSpanIntersects(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.June, 1), day(2025, time.June, 30))

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside", day(2025, time.June, 10), day(2025, time.June, 12), true},
		{"overlaps start", day(2025, time.May, 28), day(2025, time.June, 2), true},
		{"overlaps end", day(2025, time.June, 29), day(2025, time.July, 3), true},
		{"covers", day(2025, time.May, 1), day(2025, time.July, 31), true},
		{"touches end boundary", day(2025, time.June, 30), day(2025, time.July, 2), true},
		{"before", day(2025, time.May, 1), day(2025, time.May, 31), false},
		{"after", day(2025, time.July, 1), day(2025, time.July, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := leave.Application{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, spanIntersects(app, period))
		})
	}
}
