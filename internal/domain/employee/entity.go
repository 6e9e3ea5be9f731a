package employee

import "time"

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
)

// IsElevated reports whether the role may request reports for other employees.
func (r Role) IsElevated() bool {
	return r == RoleHR || r == RoleManager
}

// Employee is the directory entry the reporting engine groups and labels by.
// The record itself is owned by the external CRUD layer; the engine only reads it.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Department string
	Role       Role
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
