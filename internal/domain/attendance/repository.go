package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the attendance slice of the data access gateway.
// Both queries return records whose date falls inside [start, end] inclusive,
// breaks included, ordered by date then employee.
type AttendanceRepository interface {
	ListForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// ListForPeriod returns the records of every employee, optionally
	// restricted to one department. An empty department means all.
	ListForPeriod(ctx context.Context, department string, start, end time.Time) ([]Record, error)
}
