package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/emsuite/ems-backend-go/internal/config"
	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	cfg            config.ReportConfig

	// now is stubbed in tests to keep default windows deterministic.
	now func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	cfg config.ReportConfig,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

func employeeInfo(emp employee.Employee) report.EmployeeInfo {
	return report.EmployeeInfo{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Department: emp.Department,
	}
}

// GenerateEmployeeAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateEmployeeAttendanceReport(ctx context.Context, req report.EmployeeAttendanceReportRequest) (report.EmployeeAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeAttendanceReport{}, err
	}

	period, err := report.ResolvePeriod(report.PeriodParams{StartDate: req.StartDate, EndDate: req.EndDate}, report.WindowLast30Days, s.now())
	if err != nil {
		return report.EmployeeAttendanceReport{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.EmployeeAttendanceReport{}, err
	}

	records, err := s.attendanceRepo.ListForEmployee(ctx, emp.ID, period.Start, period.End)
	if err != nil {
		return report.EmployeeAttendanceReport{}, fmt.Errorf("failed to fetch attendance records: %w", err)
	}

	summary, metrics := aggregateAttendance(records, period)

	return report.EmployeeAttendanceReport{
		Employee: employeeInfo(emp),
		Period:   report.NewPeriodBlock(period, false),
		Summary:  summary,
		Metrics:  metrics,
	}, nil
}

// GenerateTeamAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateTeamAttendanceReport(ctx context.Context, req report.TeamAttendanceReportRequest) (report.TeamAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.TeamAttendanceReport{}, err
	}

	period, err := report.ResolvePeriod(report.PeriodParams{StartDate: req.StartDate, EndDate: req.EndDate}, report.WindowLast30Days, s.now())
	if err != nil {
		return report.TeamAttendanceReport{}, err
	}

	var (
		employees []employee.Employee
		records   []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.ListActive(gCtx, req.Department)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListForPeriod(gCtx, req.Department, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch attendance records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.TeamAttendanceReport{}, err
	}

	grouped := groupRecordsByEmployee(records)

	result := report.TeamAttendanceReport{
		Department:    req.Department,
		Period:        report.NewPeriodBlock(period, false),
		EmployeeCount: len(employees),
		Employees:     make([]report.TeamAttendanceRow, 0, len(employees)),
	}

	// Every scoped employee gets a row; no records means an all-zero row.
	var rateSum, hoursSum, overtimeSum float64
	for _, emp := range employees {
		summary, metrics := aggregateAttendance(grouped[emp.ID], period)
		rateSum += metrics.AttendanceRate
		hoursSum += summary.TotalHoursWorked
		overtimeSum += summary.TotalOvertimeHours
		result.Employees = append(result.Employees, report.TeamAttendanceRow{
			Employee: employeeInfo(emp),
			Summary:  summary,
			Metrics:  metrics,
		})
	}
	sort.Slice(result.Employees, func(i, j int) bool {
		return result.Employees[i].Employee.EmployeeID < result.Employees[j].Employee.EmployeeID
	})

	if len(employees) > 0 {
		result.Summary.AverageAttendanceRate = round2(rateSum / float64(len(employees)))
		result.Summary.AverageHoursWorked = round2(hoursSum / float64(len(employees)))
	}
	result.Summary.TotalOvertimeHours = round2(overtimeSum)

	return result, nil
}

// GenerateAttendanceAnalytics implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceAnalytics(ctx context.Context, req report.AttendanceAnalyticsRequest) (report.AttendanceAnalytics, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceAnalytics{}, err
	}

	period, err := report.ResolvePeriod(report.PeriodParams{StartDate: req.StartDate, EndDate: req.EndDate}, report.WindowLast90Days, s.now())
	if err != nil {
		return report.AttendanceAnalytics{}, err
	}

	var (
		employees []employee.Employee
		records   []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.ListActive(gCtx, req.Department)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListForPeriod(gCtx, req.Department, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch attendance records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.AttendanceAnalytics{}, err
	}

	analytics := computeAttendanceAnalytics(records, employees, period, s.cfg.TopN)
	analytics.Department = req.Department
	return analytics, nil
}

// GenerateAttendanceDashboard implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceDashboard(ctx context.Context) (report.AttendanceDashboard, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var (
		employees    []employee.Employee
		todayRecords []attendance.Record
		monthRecords []attendance.Record
		todayLeaves  []leave.Application
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.ListActive(gCtx, "")
		return err
	})
	g.Go(func() error {
		var err error
		todayRecords, err = s.attendanceRepo.ListForPeriod(gCtx, "", today, today)
		return err
	})
	g.Go(func() error {
		var err error
		monthRecords, err = s.attendanceRepo.ListForPeriod(gCtx, "", monthStart, today)
		return err
	})
	g.Go(func() error {
		var err error
		todayLeaves, err = s.leaveRepo.ApplicationsForPeriod(gCtx, "", today, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.AttendanceDashboard{}, err
	}

	dashboard := report.AttendanceDashboard{}
	dashboard.Today.TotalEmployees = len(employees)
	for _, rec := range todayRecords {
		switch rec.Status {
		case attendance.StatusPresent:
			dashboard.Today.Present++
		case attendance.StatusAbsent:
			dashboard.Today.Absent++
		}
		// Late is the check-in flag, not the status: a present day with a
		// late check-in still counts.
		if rec.IsLate || rec.Status == attendance.StatusLate {
			dashboard.Today.Late++
		}
	}

	onLeave := make(map[string]struct{})
	for _, app := range todayLeaves {
		if app.Status == leave.StatusApproved {
			onLeave[app.EmployeeID] = struct{}{}
		}
	}
	dashboard.Today.OnLeave = len(onLeave)

	monthDays := int(today.Sub(monthStart).Hours()/24) + 1
	dashboard.ThisMonth.WorkingDays = monthDays
	for _, rec := range monthRecords {
		if rec.Status == attendance.StatusPresent {
			dashboard.ThisMonth.PresentDays++
		}
	}
	if len(employees) > 0 && monthDays > 0 {
		possible := float64(len(employees) * monthDays)
		dashboard.ThisMonth.AverageAttendanceRate = round2(float64(dashboard.ThisMonth.PresentDays) / possible * 100)
	}

	return dashboard, nil
}

// GenerateEmployeeLeaveReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateEmployeeLeaveReport(ctx context.Context, req report.EmployeeLeaveReportRequest) (report.EmployeeLeaveReport, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeLeaveReport{}, err
	}

	period, err := report.ResolvePeriod(report.PeriodParams{StartDate: req.StartDate, EndDate: req.EndDate, Year: req.Year}, report.WindowCurrentYearToDate, s.now())
	if err != nil {
		return report.EmployeeLeaveReport{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.EmployeeLeaveReport{}, err
	}

	var (
		apps   []leave.Application
		allocs []leave.TypeAllocation
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		apps, err = s.leaveRepo.ApplicationsForEmployee(gCtx, emp.ID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch leave applications: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		allocs, err = s.leaveRepo.AllocationsForEmployee(gCtx, emp.ID, period.Year())
		if err != nil {
			return fmt.Errorf("failed to fetch leave allocations: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.EmployeeLeaveReport{}, err
	}

	agg := aggregateLeave(apps, allocs, period)

	return report.EmployeeLeaveReport{
		Employee:            employeeInfo(emp),
		Period:              report.NewPeriodBlock(period, true),
		Summary:             agg.Summary,
		Balances:            agg.Balances,
		MonthlyDistribution: agg.Monthly,
		PlanningScore:       agg.PlanningScore,
	}, nil
}

// GenerateTeamLeaveReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateTeamLeaveReport(ctx context.Context, req report.TeamLeaveReportRequest) (report.TeamLeaveReport, error) {
	if err := req.Validate(); err != nil {
		return report.TeamLeaveReport{}, err
	}

	period, err := report.ResolvePeriod(report.PeriodParams{Year: req.Year}, report.WindowFullCurrentYear, s.now())
	if err != nil {
		return report.TeamLeaveReport{}, err
	}

	var (
		employees []employee.Employee
		apps      []leave.Application
		allocs    []leave.TypeAllocation
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.ListActive(gCtx, req.Department)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = s.leaveRepo.ApplicationsForPeriod(gCtx, req.Department, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch leave applications: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		allocs, err = s.leaveRepo.AllocationsForYear(gCtx, req.Department, period.Year())
		if err != nil {
			return fmt.Errorf("failed to fetch leave allocations: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.TeamLeaveReport{}, err
	}

	groupedApps := groupApplicationsByEmployee(apps)
	groupedAllocs := groupAllocationsByEmployee(allocs)

	result := report.TeamLeaveReport{
		Department:    req.Department,
		Period:        report.NewPeriodBlock(period, true),
		EmployeeCount: len(employees),
		Employees:     make([]report.TeamLeaveRow, 0, len(employees)),
	}

	typeAcc := make(map[string]*report.LeaveTypeStats)
	for _, emp := range employees {
		agg := aggregateLeave(groupedApps[emp.ID], groupedAllocs[emp.ID], period)
		result.Summary.TotalApplications += agg.Summary.TotalApplications
		result.Summary.ApprovedApplications += agg.Summary.Approved
		result.Summary.TotalDaysTaken += agg.Summary.TotalDaysTaken
		result.Employees = append(result.Employees, report.TeamLeaveRow{
			Employee:    employeeInfo(emp),
			Summary:     agg.Summary,
			Utilization: agg.Balances,
		})

		for _, app := range groupedApps[emp.ID] {
			if app.Status != leave.StatusApproved || !spanIntersects(app, period) {
				continue
			}
			stats, ok := typeAcc[app.LeaveType]
			if !ok {
				stats = &report.LeaveTypeStats{LeaveType: app.LeaveType}
				typeAcc[app.LeaveType] = stats
			}
			stats.Applications++
			stats.TotalDays += app.DaysRequested
		}
	}
	sort.Slice(result.Employees, func(i, j int) bool {
		return result.Employees[i].Employee.EmployeeID < result.Employees[j].Employee.EmployeeID
	})

	result.Summary.TotalDaysTaken = round2(result.Summary.TotalDaysTaken)

	result.TypeDistribution = make([]report.LeaveTypeStats, 0, len(typeAcc))
	for _, stats := range typeAcc {
		stats.TotalDays = round2(stats.TotalDays)
		result.TypeDistribution = append(result.TypeDistribution, *stats)
	}
	sort.Slice(result.TypeDistribution, func(i, j int) bool {
		return result.TypeDistribution[i].LeaveType < result.TypeDistribution[j].LeaveType
	})

	return result, nil
}

// GenerateLeaveAnalytics implements report.ReportService.
func (s *ReportServiceImpl) GenerateLeaveAnalytics(ctx context.Context, req report.LeaveAnalyticsRequest) (report.LeaveAnalytics, error) {
	if err := req.Validate(); err != nil {
		return report.LeaveAnalytics{}, err
	}

	period, err := report.ResolvePeriod(report.PeriodParams{Year: req.Year}, report.WindowFullCurrentYear, s.now())
	if err != nil {
		return report.LeaveAnalytics{}, err
	}

	var (
		employees []employee.Employee
		apps      []leave.Application
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.ListActive(gCtx, req.Department)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = s.leaveRepo.ApplicationsForPeriod(gCtx, req.Department, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch leave applications: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.LeaveAnalytics{}, err
	}

	analytics := computeLeaveAnalytics(apps, employees, period, s.cfg.TopN)
	analytics.Department = req.Department
	return analytics, nil
}

// GeneratePerformanceReport implements report.ReportService.
func (s *ReportServiceImpl) GeneratePerformanceReport(ctx context.Context, req report.PerformanceReportRequest) (report.PerformanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.PerformanceReport{}, err
	}

	period, err := report.ResolvePeriod(report.PeriodParams{Year: req.Year}, report.WindowFullCurrentYear, s.now())
	if err != nil {
		return report.PerformanceReport{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.PerformanceReport{}, err
	}

	var (
		records []attendance.Record
		apps    []leave.Application
		allocs  []leave.TypeAllocation
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListForEmployee(gCtx, emp.ID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch attendance records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		apps, err = s.leaveRepo.ApplicationsForEmployee(gCtx, emp.ID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch leave applications: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		allocs, err = s.leaveRepo.AllocationsForEmployee(gCtx, emp.ID, period.Year())
		if err != nil {
			return fmt.Errorf("failed to fetch leave allocations: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.PerformanceReport{}, err
	}

	attendanceSummary, attendanceMetrics := aggregateAttendance(records, period)
	leaveAgg := aggregateLeave(apps, allocs, period)

	components := report.PerformanceComponents{
		AttendanceRate:       attendanceMetrics.AttendanceRate,
		PunctualityRate:      attendanceMetrics.PunctualityRate,
		LeavePlanningScore:   leaveAgg.PlanningScore,
		OvertimeHours:        attendanceSummary.TotalOvertimeHours,
		OvertimeContribution: overtimeContribution(attendanceSummary.TotalOvertimeHours, s.cfg.OvertimeCeilingHours),
	}

	score := overallScore(components)

	return report.PerformanceReport{
		Employee:        employeeInfo(emp),
		Period:          report.NewPeriodBlock(period, true),
		Components:      components,
		OverallScore:    score,
		Rating:          ratingFor(score),
		Recommendations: evaluateRules(components),
	}, nil
}
