package report

import (
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyticsEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-1", Name: "Ana Widjaja", Department: "Engineering", IsActive: true},
		{ID: "emp-2", Name: "Budi Santoso", Department: "Engineering", IsActive: true},
		{ID: "emp-3", Name: "Citra Lestari", Department: "Finance", IsActive: true},
	}
}

func TestComputeAttendanceAnalytics_StatusDistributionZeroFilled(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.June, 2), day(2025, time.June, 6))

	records := []attendance.Record{
		presentRecord("emp-1", day(2025, time.June, 2), 8, 0, false),
		statusRecord("emp-2", day(2025, time.June, 2), attendance.StatusAbsent),
	}

	analytics := computeAttendanceAnalytics(records, analyticsEmployees(), period, 10)

	assert.Equal(t, 2, analytics.TotalRecords)
	require.Len(t, analytics.StatusDistribution, 4)
	assert.Equal(t, 1, analytics.StatusDistribution["PRESENT"])
	assert.Equal(t, 1, analytics.StatusDistribution["ABSENT"])
	// Unobserved statuses are present with explicit zeros.
	assert.Equal(t, 0, analytics.StatusDistribution["LATE"])
	assert.Equal(t, 0, analytics.StatusDistribution["HALF_DAY"])
}

func TestComputeAttendanceAnalytics_DailyTrendsCoverEveryDay(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.June, 2), day(2025, time.June, 6))

	records := []attendance.Record{
		presentRecord("emp-1", day(2025, time.June, 2), 8, 0, false),
		presentRecord("emp-2", day(2025, time.June, 2), 7.5, 0, false),
		presentRecord("emp-1", day(2025, time.June, 5), 8, 0, false),
	}

	analytics := computeAttendanceAnalytics(records, analyticsEmployees(), period, 10)

	require.Len(t, analytics.DailyTrends, 5)
	assert.Equal(t, "2025-06-02", analytics.DailyTrends[0].Date)
	assert.Equal(t, 2, analytics.DailyTrends[0].Records)
	assert.Equal(t, 15.5, analytics.DailyTrends[0].HoursWorked)
	// A day with no records still appears, zero-filled.
	assert.Equal(t, "2025-06-03", analytics.DailyTrends[1].Date)
	assert.Zero(t, analytics.DailyTrends[1].Records)
	assert.Equal(t, "2025-06-05", analytics.DailyTrends[3].Date)
	assert.Equal(t, 1, analytics.DailyTrends[3].Records)
}

func TestComputeAttendanceAnalytics_DepartmentAnalysisSorted(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.June, 2), day(2025, time.June, 3))

	records := []attendance.Record{
		presentRecord("emp-3", day(2025, time.June, 2), 8, 0, false),
		presentRecord("emp-1", day(2025, time.June, 2), 8, 0, false),
		statusRecord("emp-2", day(2025, time.June, 2), attendance.StatusAbsent),
	}

	analytics := computeAttendanceAnalytics(records, analyticsEmployees(), period, 10)

	require.Len(t, analytics.DepartmentAnalysis, 2)
	assert.Equal(t, "Engineering", analytics.DepartmentAnalysis[0].Department)
	assert.Equal(t, 2, analytics.DepartmentAnalysis[0].Records)
	assert.Equal(t, 50.0, analytics.DepartmentAnalysis[0].AttendanceRate)
	assert.Equal(t, "Finance", analytics.DepartmentAnalysis[1].Department)
	assert.Equal(t, 100.0, analytics.DepartmentAnalysis[1].AttendanceRate)
}

func TestTopPerformers_RankingAndTruncation(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.June, 2), day(2025, time.June, 11))

	var records []attendance.Record
	// emp-1: 8 present days, emp-2: 10, emp-3: 8.
	for i := 0; i < 8; i++ {
		records = append(records, presentRecord("emp-1", period.Start.AddDate(0, 0, i), 8, 0, false))
		records = append(records, presentRecord("emp-3", period.Start.AddDate(0, 0, i), 8, 0, false))
	}
	for i := 0; i < 10; i++ {
		records = append(records, presentRecord("emp-2", period.Start.AddDate(0, 0, i), 8, 0, false))
	}

	empByID := make(map[string]employee.Employee)
	for _, emp := range analyticsEmployees() {
		empByID[emp.ID] = emp
	}

	performers := topPerformers(records, empByID, period, 2)

	require.Len(t, performers, 2)
	assert.Equal(t, "emp-2", performers[0].EmployeeID)
	assert.Equal(t, "Budi Santoso", performers[0].Name)
	assert.Equal(t, 100.0, performers[0].AttendanceRate)
	// emp-1 and emp-3 tie on every metric; the lower ID wins the last slot.
	assert.Equal(t, "emp-1", performers[1].EmployeeID)
}

func TestTopPerformers_OnlyEmployeesWithRecords(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.June, 2), day(2025, time.June, 6))

	records := []attendance.Record{
		presentRecord("emp-1", day(2025, time.June, 2), 8, 0, false),
	}
	empByID := map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana Widjaja"},
		"emp-2": {ID: "emp-2", Name: "Budi Santoso"},
	}

	performers := topPerformers(records, empByID, period, 10)

	require.Len(t, performers, 1)
	assert.Equal(t, "emp-1", performers[0].EmployeeID)
}

func TestComputeLeaveAnalytics_TwelveMonthlyTrends(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.January, 1), day(2025, time.December, 31))

	apps := []leave.Application{
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.March, 3), 5, 14),
		application("emp-2", "annual", leave.StatusPending, day(2025, time.March, 17), 2, 7),
	}

	analytics := computeLeaveAnalytics(apps, analyticsEmployees(), period, 10)

	require.Len(t, analytics.MonthlyTrends, 12)
	march := analytics.MonthlyTrends[2]
	assert.Equal(t, 3, march.Month)
	assert.Equal(t, 2, march.Applications)
	assert.Equal(t, 1, march.Approved)
	assert.Equal(t, 5.0, march.DaysTaken)
	assert.Zero(t, analytics.MonthlyTrends[6].Applications)
}

func TestComputeLeaveAnalytics_RejectionRateAndApprovalTime(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.January, 1), day(2025, time.December, 31))

	approved := application("emp-1", "annual", leave.StatusApproved, day(2025, time.April, 7), 3, 20)
	decidedApproved := approved.SubmittedAt.AddDate(0, 0, 2)
	approved.DecidedAt = &decidedApproved

	rejected := application("emp-2", "annual", leave.StatusRejected, day(2025, time.May, 5), 2, 10)
	decidedRejected := rejected.SubmittedAt.AddDate(0, 0, 4)
	rejected.DecidedAt = &decidedRejected

	cancelled := application("emp-3", "annual", leave.StatusCancelled, day(2025, time.June, 2), 1, 10)
	decidedCancelled := cancelled.SubmittedAt.AddDate(0, 0, 1)
	cancelled.DecidedAt = &decidedCancelled

	pending := application("emp-1", "sick", leave.StatusPending, day(2025, time.July, 7), 1, 3)

	analytics := computeLeaveAnalytics([]leave.Application{approved, rejected, cancelled, pending}, analyticsEmployees(), period, 10)

	assert.Equal(t, 4, analytics.TotalApplications)
	assert.Equal(t, 25.0, analytics.RejectionRate)
	// Cancelled and undecided applications are excluded from the average.
	assert.Equal(t, 3.0, analytics.AverageApprovalTimeDays)
}

func TestComputeLeaveAnalytics_DepartmentApprovalRates(t *testing.T) {
	t.Parallel()
	period := periodOf(day(2025, time.January, 1), day(2025, time.December, 31))

	apps := []leave.Application{
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.March, 3), 2, 14),
		application("emp-2", "annual", leave.StatusRejected, day(2025, time.April, 7), 2, 14),
		application("emp-3", "annual", leave.StatusApproved, day(2025, time.May, 5), 2, 14),
	}

	analytics := computeLeaveAnalytics(apps, analyticsEmployees(), period, 10)

	require.Len(t, analytics.DepartmentAnalysis, 2)
	assert.Equal(t, "Engineering", analytics.DepartmentAnalysis[0].Department)
	assert.Equal(t, 50.0, analytics.DepartmentAnalysis[0].ApprovalRate)
	assert.Equal(t, "Finance", analytics.DepartmentAnalysis[1].Department)
	assert.Equal(t, 100.0, analytics.DepartmentAnalysis[1].ApprovalRate)
}

func TestTopLeaveTakers_RankingTiesAndTruncation(t *testing.T) {
	t.Parallel()
	apps := []leave.Application{
		application("emp-1", "annual", leave.StatusApproved, day(2025, time.March, 3), 5, 14),
		application("emp-2", "annual", leave.StatusApproved, day(2025, time.April, 7), 5, 14),
		application("emp-2", "annual", leave.StatusRejected, day(2025, time.May, 5), 2, 14),
		application("emp-3", "annual", leave.StatusApproved, day(2025, time.June, 2), 8, 14),
	}
	empByID := make(map[string]employee.Employee)
	for _, emp := range analyticsEmployees() {
		empByID[emp.ID] = emp
	}

	takers := topLeaveTakers(apps, empByID, 2)

	require.Len(t, takers, 2)
	assert.Equal(t, "emp-3", takers[0].EmployeeID)
	assert.Equal(t, 8.0, takers[0].TotalDaysTaken)
	// emp-1 and emp-2 tie on approved days; emp-2 has more applications.
	assert.Equal(t, "emp-2", takers[1].EmployeeID)
	assert.Equal(t, 2, takers[1].Applications)
}
