package leave

import (
	"context"
	"time"
)

// LeaveRepository is the leave slice of the data access gateway. Application
// queries return every application whose [start_date, end_date] span
// intersects [start, end], regardless of status.
type LeaveRepository interface {
	ApplicationsForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Application, error)

	// ApplicationsForPeriod returns applications across the directory,
	// optionally restricted to one department. An empty department means all.
	ApplicationsForPeriod(ctx context.Context, department string, start, end time.Time) ([]Application, error)

	AllocationsForEmployee(ctx context.Context, employeeID string, year int) ([]TypeAllocation, error)

	// AllocationsForYear returns the allocations of every employee for one
	// year, optionally restricted to a department.
	AllocationsForYear(ctx context.Context, department string, year int) ([]TypeAllocation, error)
}
