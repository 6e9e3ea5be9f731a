package http

import (
	"net/http"
	"strconv"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/report"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type ReportHandler interface {
	// Per-employee attendance summary and rates
	GetEmployeeAttendanceReport(w http.ResponseWriter, r *http.Request)
	// Per-employee rows plus team-level aggregates
	GetTeamAttendanceReport(w http.ResponseWriter, r *http.Request)
	// Population-wide trends, distributions and rankings
	GetAttendanceAnalytics(w http.ResponseWriter, r *http.Request)
	// Today plus month-to-date snapshot
	GetAttendanceDashboard(w http.ResponseWriter, r *http.Request)
	// Per-employee leave summary, balances and planning score
	GetEmployeeLeaveReport(w http.ResponseWriter, r *http.Request)
	// Per-employee leave rows plus team-level aggregates
	GetTeamLeaveReport(w http.ResponseWriter, r *http.Request)
	// Population-wide leave trends and rankings
	GetLeaveAnalytics(w http.ResponseWriter, r *http.Request)
	// Composite appraisal score with recommendations
	GetPerformanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// callerIdentity extracts the requesting employee's ID and role from the
// verified token claims.
func callerIdentity(r *http.Request) (employeeID string, role employee.Role, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", false
	}
	employeeID, _ = claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)
	if employeeID == "" || roleStr == "" {
		return "", "", false
	}
	return employeeID, employee.Role(roleStr), true
}

// resolveEmployeeScope applies the self-scoping rule: an omitted employee_id
// means the caller, and requesting someone else requires an elevated role.
// A written response means the request is already answered.
func resolveEmployeeScope(w http.ResponseWriter, r *http.Request) (string, bool) {
	callerID, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return "", false
	}

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		return callerID, true
	}
	if employeeID != callerID && !role.IsElevated() {
		response.Forbidden(w, "Cannot request reports for other employees")
		return "", false
	}
	return employeeID, true
}

// yearParam parses the optional year query parameter. A written response
// means parsing failed and the request is already answered.
func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return 0, true
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return 0, false
	}
	return year, true
}

// GetEmployeeAttendanceReport handles GET /reports/attendance/employee
func (h *reportHandlerImpl) GetEmployeeAttendanceReport(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := resolveEmployeeScope(w, r)
	if !ok {
		return
	}

	req := report.EmployeeAttendanceReportRequest{
		EmployeeID: employeeID,
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.GenerateEmployeeAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeamAttendanceReport handles GET /reports/attendance/team
func (h *reportHandlerImpl) GetTeamAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req := report.TeamAttendanceReportRequest{
		Department: r.URL.Query().Get("department"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.GenerateTeamAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceAnalytics handles GET /reports/attendance/analytics
func (h *reportHandlerImpl) GetAttendanceAnalytics(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceAnalyticsRequest{
		Department: r.URL.Query().Get("department"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.GenerateAttendanceAnalytics(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceDashboard handles GET /reports/attendance/dashboard
func (h *reportHandlerImpl) GetAttendanceDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GenerateAttendanceDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeLeaveReport handles GET /reports/leave/employee
func (h *reportHandlerImpl) GetEmployeeLeaveReport(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := resolveEmployeeScope(w, r)
	if !ok {
		return
	}
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	req := report.EmployeeLeaveReportRequest{
		EmployeeID: employeeID,
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		Year:       year,
	}

	result, err := h.reportService.GenerateEmployeeLeaveReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeamLeaveReport handles GET /reports/leave/team
func (h *reportHandlerImpl) GetTeamLeaveReport(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	req := report.TeamLeaveReportRequest{
		Department: r.URL.Query().Get("department"),
		Year:       year,
	}

	result, err := h.reportService.GenerateTeamLeaveReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLeaveAnalytics handles GET /reports/leave/analytics
func (h *reportHandlerImpl) GetLeaveAnalytics(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	req := report.LeaveAnalyticsRequest{
		Department: r.URL.Query().Get("department"),
		Year:       year,
	}

	result, err := h.reportService.GenerateLeaveAnalytics(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPerformanceReport handles GET /reports/performance
func (h *reportHandlerImpl) GetPerformanceReport(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := resolveEmployeeScope(w, r)
	if !ok {
		return
	}
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	req := report.PerformanceReportRequest{
		EmployeeID: employeeID,
		Year:       year,
	}

	result, err := h.reportService.GeneratePerformanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
