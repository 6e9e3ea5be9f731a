package report

import (
	"sort"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/domain/report"
)

// computeAttendanceAnalytics derives the population-wide attendance picture
// from a single period-scoped record set. Employees are only consulted for
// names and department labels; the per-employee aggregators are not involved.
func computeAttendanceAnalytics(records []attendance.Record, employees []employee.Employee, period report.Period, topN int) report.AttendanceAnalytics {
	analytics := report.AttendanceAnalytics{
		Period:             report.NewPeriodBlock(period, false),
		TotalRecords:       len(records),
		StatusDistribution: make(map[string]int, len(attendance.AllStatuses)),
	}
	for _, status := range attendance.AllStatuses {
		analytics.StatusDistribution[string(status)] = 0
	}

	empByID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		empByID[emp.ID] = emp
	}

	// One pass over the record set; per-day and per-department accumulators.
	type dayAcc struct {
		records int
		present int
		hours   float64
	}
	type deptAcc struct {
		records int
		present int
	}
	byDay := make(map[string]*dayAcc)
	byDept := make(map[string]*deptAcc)

	for _, rec := range records {
		analytics.StatusDistribution[string(rec.Status)]++

		day := rec.Date.Format("2006-01-02")
		acc, ok := byDay[day]
		if !ok {
			acc = &dayAcc{}
			byDay[day] = acc
		}
		acc.records++
		acc.hours += rec.HoursWorked

		var dept string
		if emp, ok := empByID[rec.EmployeeID]; ok {
			dept = emp.Department
		}
		dAcc, ok := byDept[dept]
		if !ok {
			dAcc = &deptAcc{}
			byDept[dept] = dAcc
		}
		dAcc.records++

		if rec.Status == attendance.StatusPresent {
			acc.present++
			dAcc.present++
		}
	}

	// Every calendar day of the period appears, zero-filled when unmarked.
	analytics.DailyTrends = make([]report.DailyAttendanceTrend, 0, period.TotalDays)
	for d := period.Start; !d.After(period.End); d = d.AddDate(0, 0, 1) {
		day := d.Format("2006-01-02")
		trend := report.DailyAttendanceTrend{Date: day}
		if acc, ok := byDay[day]; ok {
			trend.Records = acc.records
			trend.PresentDays = acc.present
			trend.HoursWorked = round2(acc.hours)
		}
		analytics.DailyTrends = append(analytics.DailyTrends, trend)
	}

	analytics.DepartmentAnalysis = make([]report.DepartmentAttendanceStats, 0, len(byDept))
	for dept, acc := range byDept {
		stats := report.DepartmentAttendanceStats{
			Department:  dept,
			Records:     acc.records,
			PresentDays: acc.present,
		}
		if acc.records > 0 {
			stats.AttendanceRate = round2(float64(acc.present) / float64(acc.records) * 100)
		}
		analytics.DepartmentAnalysis = append(analytics.DepartmentAnalysis, stats)
	}
	sort.Slice(analytics.DepartmentAnalysis, func(i, j int) bool {
		return analytics.DepartmentAnalysis[i].Department < analytics.DepartmentAnalysis[j].Department
	})

	analytics.TopPerformers = topPerformers(records, empByID, period, topN)

	return analytics
}

// topPerformers ranks employees with at least one record by attendance rate,
// ties broken by present days descending then employee ID ascending.
func topPerformers(records []attendance.Record, empByID map[string]employee.Employee, period report.Period, topN int) []report.TopPerformer {
	performers := make([]report.TopPerformer, 0, len(empByID))
	for employeeID, recs := range groupRecordsByEmployee(records) {
		summary, metrics := aggregateAttendance(recs, period)
		performer := report.TopPerformer{
			EmployeeID:     employeeID,
			AttendanceRate: metrics.AttendanceRate,
			PresentDays:    summary.PresentDays,
		}
		if emp, ok := empByID[employeeID]; ok {
			performer.Name = emp.Name
		}
		performers = append(performers, performer)
	}

	sort.Slice(performers, func(i, j int) bool {
		a, b := performers[i], performers[j]
		if a.AttendanceRate != b.AttendanceRate {
			return a.AttendanceRate > b.AttendanceRate
		}
		if a.PresentDays != b.PresentDays {
			return a.PresentDays > b.PresentDays
		}
		return a.EmployeeID < b.EmployeeID
	})

	if len(performers) > topN {
		performers = performers[:topN]
	}
	return performers
}

// computeLeaveAnalytics derives the population-wide leave picture from a
// single period-scoped application set.
func computeLeaveAnalytics(apps []leave.Application, employees []employee.Employee, period report.Period, topN int) report.LeaveAnalytics {
	analytics := report.LeaveAnalytics{
		Period:             report.NewPeriodBlock(period, true),
		TotalApplications:  len(apps),
		StatusDistribution: make(map[string]int, len(leave.AllStatuses)),
	}
	for _, status := range leave.AllStatuses {
		analytics.StatusDistribution[string(status)] = 0
	}

	empByID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		empByID[emp.ID] = emp
	}

	monthly := make([]report.MonthlyLeaveTrend, 12)
	for i := range monthly {
		monthly[i].Month = i + 1
	}

	type deptAcc struct {
		applications int
		approved     int
	}
	byDept := make(map[string]*deptAcc)

	var rejected int
	var decidedCount int
	var decidedDaysSum float64

	for _, app := range apps {
		analytics.StatusDistribution[string(app.Status)]++
		if app.Status == leave.StatusRejected {
			rejected++
		}

		if app.StartDate.Year() == period.Year() {
			idx := int(app.StartDate.Month()) - 1
			monthly[idx].Applications++
			if app.Status == leave.StatusApproved {
				monthly[idx].Approved++
				monthly[idx].DaysTaken += app.DaysRequested
			}
		}

		var dept string
		if emp, ok := empByID[app.EmployeeID]; ok {
			dept = emp.Department
		}
		acc, ok := byDept[dept]
		if !ok {
			acc = &deptAcc{}
			byDept[dept] = acc
		}
		acc.applications++
		if app.Status == leave.StatusApproved {
			acc.approved++
		}

		if app.DecidedAt != nil && app.Status != leave.StatusCancelled {
			decidedCount++
			decidedDaysSum += app.DecidedAt.Sub(app.SubmittedAt).Hours() / 24
		}
	}

	for i := range monthly {
		monthly[i].DaysTaken = round2(monthly[i].DaysTaken)
	}
	analytics.MonthlyTrends = monthly

	analytics.DepartmentAnalysis = make([]report.DepartmentLeaveStats, 0, len(byDept))
	for dept, acc := range byDept {
		stats := report.DepartmentLeaveStats{
			Department:   dept,
			Applications: acc.applications,
			Approved:     acc.approved,
		}
		if acc.applications > 0 {
			stats.ApprovalRate = round2(float64(acc.approved) / float64(acc.applications) * 100)
		}
		analytics.DepartmentAnalysis = append(analytics.DepartmentAnalysis, stats)
	}
	sort.Slice(analytics.DepartmentAnalysis, func(i, j int) bool {
		return analytics.DepartmentAnalysis[i].Department < analytics.DepartmentAnalysis[j].Department
	})

	analytics.TopLeaveTakers = topLeaveTakers(apps, empByID, topN)

	if len(apps) > 0 {
		analytics.RejectionRate = round2(float64(rejected) / float64(len(apps)) * 100)
	}
	if decidedCount > 0 {
		analytics.AverageApprovalTimeDays = round2(decidedDaysSum / float64(decidedCount))
	}

	return analytics
}

// topLeaveTakers ranks employees with at least one application by approved
// days taken, ties broken by application count descending then employee ID
// ascending.
func topLeaveTakers(apps []leave.Application, empByID map[string]employee.Employee, topN int) []report.TopLeaveTaker {
	type takerAcc struct {
		days float64
		apps int
	}
	byEmployee := make(map[string]*takerAcc)
	for _, app := range apps {
		acc, ok := byEmployee[app.EmployeeID]
		if !ok {
			acc = &takerAcc{}
			byEmployee[app.EmployeeID] = acc
		}
		acc.apps++
		if app.Status == leave.StatusApproved {
			acc.days += app.DaysRequested
		}
	}

	takers := make([]report.TopLeaveTaker, 0, len(byEmployee))
	for employeeID, acc := range byEmployee {
		taker := report.TopLeaveTaker{
			EmployeeID:     employeeID,
			TotalDaysTaken: round2(acc.days),
			Applications:   acc.apps,
		}
		if emp, ok := empByID[employeeID]; ok {
			taker.Name = emp.Name
		}
		takers = append(takers, taker)
	}

	sort.Slice(takers, func(i, j int) bool {
		a, b := takers[i], takers[j]
		if a.TotalDaysTaken != b.TotalDaysTaken {
			return a.TotalDaysTaken > b.TotalDaysTaken
		}
		if a.Applications != b.Applications {
			return a.Applications > b.Applications
		}
		return a.EmployeeID < b.EmployeeID
	})

	if len(takers) > topN {
		takers = takers[:topN]
	}
	return takers
}
