package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ApplicationsForEmployee implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) ApplicationsForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Application, error) {
	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, status,
			days_requested, submitted_at, decided_at, created_at, updated_at
		FROM leave_applications
		WHERE employee_id = $1 AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	apps, err := l.queryApplications(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications for employee %s: %w", employeeID, err)
	}
	return apps, nil
}

// ApplicationsForPeriod implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) ApplicationsForPeriod(ctx context.Context, department string, start, end time.Time) ([]leave.Application, error) {
	query := `
		SELECT a.id, a.employee_id, a.leave_type, a.start_date, a.end_date, a.status,
			a.days_requested, a.submitted_at, a.decided_at, a.created_at, a.updated_at
		FROM leave_applications a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.start_date <= $2 AND a.end_date >= $1 AND e.is_active = TRUE
	`
	args := []any{start, end}
	if department != "" {
		query += ` AND e.department = $3`
		args = append(args, department)
	}
	query += ` ORDER BY a.start_date, a.employee_id`

	apps, err := l.queryApplications(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications for period: %w", err)
	}
	return apps, nil
}

func (l *leaveRepositoryImpl) queryApplications(ctx context.Context, query string, args ...any) ([]leave.Application, error) {
	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []leave.Application
	for rows.Next() {
		var app leave.Application
		err := rows.Scan(
			&app.ID, &app.EmployeeID, &app.LeaveType, &app.StartDate, &app.EndDate,
			&app.Status, &app.DaysRequested, &app.SubmittedAt, &app.DecidedAt,
			&app.CreatedAt, &app.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return apps, nil
}

// AllocationsForEmployee implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) AllocationsForEmployee(ctx context.Context, employeeID string, year int) ([]leave.TypeAllocation, error) {
	query := `
		SELECT employee_id, leave_type, year, total_allocated
		FROM leave_allocations
		WHERE employee_id = $1 AND year = $2
		ORDER BY leave_type
	`

	allocs, err := l.queryAllocations(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave allocations for employee %s: %w", employeeID, err)
	}
	return allocs, nil
}

// AllocationsForYear implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) AllocationsForYear(ctx context.Context, department string, year int) ([]leave.TypeAllocation, error) {
	query := `
		SELECT a.employee_id, a.leave_type, a.year, a.total_allocated
		FROM leave_allocations a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.year = $1 AND e.is_active = TRUE
	`
	args := []any{year}
	if department != "" {
		query += ` AND e.department = $2`
		args = append(args, department)
	}
	query += ` ORDER BY a.employee_id, a.leave_type`

	allocs, err := l.queryAllocations(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave allocations for year %d: %w", year, err)
	}
	return allocs, nil
}

func (l *leaveRepositoryImpl) queryAllocations(ctx context.Context, query string, args ...any) ([]leave.TypeAllocation, error) {
	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocs []leave.TypeAllocation
	for rows.Next() {
		var alloc leave.TypeAllocation
		if err := rows.Scan(&alloc.EmployeeID, &alloc.LeaveType, &alloc.Year, &alloc.TotalAllocated); err != nil {
			return nil, err
		}
		allocs = append(allocs, alloc)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return allocs, nil
}
