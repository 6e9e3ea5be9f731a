package report

import (
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

// ========================================
// SHARED BLOCKS
// ========================================

// PeriodBlock is the window echo included in every report response.
type PeriodBlock struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TotalDays int    `json:"total_days"`
	Year      int    `json:"year,omitempty"`
}

// NewPeriodBlock renders a resolved Period for a response payload.
func NewPeriodBlock(p Period, includeYear bool) PeriodBlock {
	block := PeriodBlock{
		StartDate: p.Start.Format("2006-01-02"),
		EndDate:   p.End.Format("2006-01-02"),
		TotalDays: p.TotalDays,
	}
	if includeYear {
		block.Year = p.Year()
	}
	return block
}

type EmployeeInfo struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// ========================================
// ATTENDANCE REPORTS
// ========================================

type AttendanceSummary struct {
	PresentDays         int     `json:"present_days"`
	AbsentDays          int     `json:"absent_days"`
	LateDays            int     `json:"late_days"`
	HalfDays            int     `json:"half_days"`
	OnTimeDays          int     `json:"on_time_days"`
	TotalHoursWorked    float64 `json:"total_hours_worked"`
	TotalOvertimeHours  float64 `json:"total_overtime_hours"`
	BreakCount          int     `json:"break_count"`
	TotalBreakMinutes   float64 `json:"total_break_minutes"`
	AverageBreakMinutes float64 `json:"average_break_minutes"`
}

type AttendanceMetrics struct {
	AttendanceRate    float64 `json:"attendance_rate"`
	PunctualityRate   float64 `json:"punctuality_rate"`
	ConsistencyScore  float64 `json:"consistency_score"`
	ReliabilityScore  float64 `json:"reliability_score"`
	AverageDailyHours float64 `json:"average_daily_hours"`
}

type EmployeeAttendanceReport struct {
	Employee EmployeeInfo      `json:"employee"`
	Period   PeriodBlock       `json:"period"`
	Summary  AttendanceSummary `json:"summary"`
	Metrics  AttendanceMetrics `json:"metrics"`
}

type TeamAttendanceRow struct {
	Employee EmployeeInfo      `json:"employee"`
	Summary  AttendanceSummary `json:"summary"`
	Metrics  AttendanceMetrics `json:"metrics"`
}

type TeamAttendanceSummary struct {
	AverageAttendanceRate float64 `json:"average_attendance_rate"`
	AverageHoursWorked    float64 `json:"average_hours_worked"`
	TotalOvertimeHours    float64 `json:"total_overtime_hours"`
}

type TeamAttendanceReport struct {
	Department    string                `json:"department,omitempty"`
	Period        PeriodBlock           `json:"period"`
	EmployeeCount int                   `json:"employee_count"`
	Summary       TeamAttendanceSummary `json:"summary"`
	Employees     []TeamAttendanceRow   `json:"employees"`
}

// ========================================
// ATTENDANCE ANALYTICS
// ========================================

type DailyAttendanceTrend struct {
	Date        string  `json:"date"`
	Records     int     `json:"records"`
	PresentDays int     `json:"present_days"`
	HoursWorked float64 `json:"hours_worked"`
}

type DepartmentAttendanceStats struct {
	Department     string  `json:"department"`
	Records        int     `json:"records"`
	PresentDays    int     `json:"present_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type TopPerformer struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	AttendanceRate float64 `json:"attendance_rate"`
	PresentDays    int     `json:"present_days"`
}

type AttendanceAnalytics struct {
	Department         string                      `json:"department,omitempty"`
	Period             PeriodBlock                 `json:"period"`
	TotalRecords       int                         `json:"total_records"`
	StatusDistribution map[string]int              `json:"status_distribution"`
	DailyTrends        []DailyAttendanceTrend      `json:"daily_trends"`
	DepartmentAnalysis []DepartmentAttendanceStats `json:"department_analysis"`
	TopPerformers      []TopPerformer              `json:"top_performers"`
}

// AttendanceDashboard is the HR landing snapshot: today's headcount split plus
// month-to-date attendance.
type AttendanceDashboard struct {
	Today     DashboardToday `json:"today"`
	ThisMonth DashboardMonth `json:"this_month"`
}

type DashboardToday struct {
	TotalEmployees int `json:"total_employees"`
	Present        int `json:"present"`
	Absent         int `json:"absent"`
	Late           int `json:"late"`
	OnLeave        int `json:"on_leave"`
}

type DashboardMonth struct {
	WorkingDays           int     `json:"total_working_days"`
	PresentDays           int     `json:"present_days"`
	AverageAttendanceRate float64 `json:"average_attendance_rate"`
}

// ========================================
// LEAVE REPORTS
// ========================================

type LeaveSummary struct {
	TotalApplications    int     `json:"total_applications"`
	Pending              int     `json:"pending"`
	Approved             int     `json:"approved"`
	Rejected             int     `json:"rejected"`
	Cancelled            int     `json:"cancelled"`
	TotalDaysTaken       float64 `json:"total_days_taken"`
	AverageLeaveDuration float64 `json:"average_leave_duration"`
}

type LeaveTypeBalance struct {
	LeaveType       string  `json:"leave_type"`
	TotalAllocated  float64 `json:"total_allocated"`
	DaysUsed        float64 `json:"days_used"`
	DaysRemaining   float64 `json:"days_remaining"`
	UtilizationRate float64 `json:"utilization_rate"`
}

type MonthlyLeave struct {
	Month        int     `json:"month"`
	MonthName    string  `json:"month_name"`
	Applications int     `json:"applications"`
	DaysTaken    float64 `json:"days_taken"`
}

type EmployeeLeaveReport struct {
	Employee            EmployeeInfo       `json:"employee"`
	Period              PeriodBlock        `json:"period"`
	Summary             LeaveSummary       `json:"summary"`
	Balances            []LeaveTypeBalance `json:"balances"`
	MonthlyDistribution []MonthlyLeave     `json:"monthly_distribution"`
	PlanningScore       float64            `json:"leave_planning_score"`
}

type LeaveTypeStats struct {
	LeaveType    string  `json:"leave_type"`
	Applications int     `json:"applications"`
	TotalDays    float64 `json:"total_days"`
}

type TeamLeaveRow struct {
	Employee    EmployeeInfo       `json:"employee"`
	Summary     LeaveSummary       `json:"summary"`
	Utilization []LeaveTypeBalance `json:"utilization"`
}

type TeamLeaveSummary struct {
	TotalApplications    int     `json:"total_applications"`
	ApprovedApplications int     `json:"approved_applications"`
	TotalDaysTaken       float64 `json:"total_days_taken"`
}

type TeamLeaveReport struct {
	Department       string           `json:"department,omitempty"`
	Period           PeriodBlock      `json:"period"`
	EmployeeCount    int              `json:"employee_count"`
	Summary          TeamLeaveSummary `json:"summary"`
	TypeDistribution []LeaveTypeStats `json:"leave_type_distribution"`
	Employees        []TeamLeaveRow   `json:"employees"`
}

// ========================================
// LEAVE ANALYTICS
// ========================================

type MonthlyLeaveTrend struct {
	Month        int     `json:"month"`
	Applications int     `json:"applications"`
	Approved     int     `json:"approved"`
	DaysTaken    float64 `json:"days_taken"`
}

type DepartmentLeaveStats struct {
	Department   string  `json:"department"`
	Applications int     `json:"applications"`
	Approved     int     `json:"approved"`
	ApprovalRate float64 `json:"approval_rate"`
}

type TopLeaveTaker struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	TotalDaysTaken float64 `json:"total_days_taken"`
	Applications   int     `json:"applications"`
}

type LeaveAnalytics struct {
	Department              string                 `json:"department,omitempty"`
	Period                  PeriodBlock            `json:"period"`
	TotalApplications       int                    `json:"total_applications"`
	StatusDistribution      map[string]int         `json:"status_distribution"`
	MonthlyTrends           []MonthlyLeaveTrend    `json:"monthly_trends"`
	DepartmentAnalysis      []DepartmentLeaveStats `json:"department_analysis"`
	TopLeaveTakers          []TopLeaveTaker        `json:"top_leave_takers"`
	RejectionRate           float64                `json:"rejection_rate"`
	AverageApprovalTimeDays float64                `json:"average_approval_time_days"`
}

// ========================================
// PERFORMANCE REPORT
// ========================================

type PerformanceComponents struct {
	AttendanceRate       float64 `json:"attendance_rate"`
	PunctualityRate      float64 `json:"punctuality_rate"`
	LeavePlanningScore   float64 `json:"leave_planning_score"`
	OvertimeHours        float64 `json:"overtime_hours"`
	OvertimeContribution float64 `json:"overtime_contribution"`
}

type Recommendation struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type PerformanceReport struct {
	Employee        EmployeeInfo          `json:"employee"`
	Period          PeriodBlock           `json:"period"`
	Components      PerformanceComponents `json:"components"`
	OverallScore    float64               `json:"overall_score"`
	Rating          string                `json:"rating"`
	Recommendations []Recommendation      `json:"recommendations"`
}

// ========================================
// REQUESTS
// ========================================

type EmployeeAttendanceReportRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (r *EmployeeAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	errs = append(errs, validateDatePair(r.StartDate, r.EndDate)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TeamAttendanceReportRequest struct {
	Department string
	StartDate  string
	EndDate    string
}

func (r *TeamAttendanceReportRequest) Validate() error {
	if errs := validateDatePair(r.StartDate, r.EndDate); len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceAnalyticsRequest struct {
	Department string
	StartDate  string
	EndDate    string
}

func (r *AttendanceAnalyticsRequest) Validate() error {
	if errs := validateDatePair(r.StartDate, r.EndDate); len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeLeaveReportRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Year       int
}

func (r *EmployeeLeaveReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Year == 0 {
		errs = append(errs, validateDatePair(r.StartDate, r.EndDate)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TeamLeaveReportRequest struct {
	Department string
	Year       int
}

func (r *TeamLeaveReportRequest) Validate() error { return nil }

type LeaveAnalyticsRequest struct {
	Department string
	Year       int
}

func (r *LeaveAnalyticsRequest) Validate() error { return nil }

type PerformanceReportRequest struct {
	EmployeeID string
	Year       int
}

func (r *PerformanceReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateDatePair checks format only when a bound is present; range order is
// checked by ResolvePeriod once both parse.
func validateDatePair(start, end string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if start != "" {
		if _, ok := validator.IsValidDate(start); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if end != "" {
		if _, ok := validator.IsValidDate(end); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if (start == "") != (end == "") {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date and end_date must be provided together"})
	}
	return errs
}

// MonthName returns the English month name for a 1-based month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("month-%d", month)
	}
	return time.Month(month).String()
}
