package employee

import "context"

// EmployeeRepository is the directory slice of the data access gateway.
type EmployeeRepository interface {
	// GetByID returns a single directory entry, ErrEmployeeNotFound if missing.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns all active employees, optionally filtered by
	// department label. An empty department means the whole directory.
	ListActive(ctx context.Context, department string) ([]Employee, error)
}
