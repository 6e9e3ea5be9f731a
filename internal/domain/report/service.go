package report

import "context"

// ReportService is the reporting and analytics engine. Every method is a pure
// read: it resolves the window, fetches the scoped record set once through the
// gateway and derives the report in memory. Identical inputs over an unchanged
// record set yield identical output.
type ReportService interface {
	// Per-employee attendance metrics for an explicit range or the endpoint default.
	GenerateEmployeeAttendanceReport(ctx context.Context, req EmployeeAttendanceReportRequest) (EmployeeAttendanceReport, error)

	// Attendance rows for every employee in scope plus team aggregates.
	GenerateTeamAttendanceReport(ctx context.Context, req TeamAttendanceReportRequest) (TeamAttendanceReport, error)

	// Population-wide attendance distributions, trends and rankings.
	GenerateAttendanceAnalytics(ctx context.Context, req AttendanceAnalyticsRequest) (AttendanceAnalytics, error)

	// Today's headcount split plus month-to-date attendance.
	GenerateAttendanceDashboard(ctx context.Context) (AttendanceDashboard, error)

	// Per-employee leave utilization for a year or explicit range.
	GenerateEmployeeLeaveReport(ctx context.Context, req EmployeeLeaveReportRequest) (EmployeeLeaveReport, error)

	// Leave rows for every employee in scope plus type distribution.
	GenerateTeamLeaveReport(ctx context.Context, req TeamLeaveReportRequest) (TeamLeaveReport, error)

	// Population-wide leave distributions, trends and rankings.
	GenerateLeaveAnalytics(ctx context.Context, req LeaveAnalyticsRequest) (LeaveAnalytics, error)

	// Weighted composite appraisal for one employee and year.
	GeneratePerformanceReport(ctx context.Context, req PerformanceReportRequest) (PerformanceReport, error)
}
