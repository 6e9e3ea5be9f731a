package leave

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// AllStatuses is the fixed enumeration order used when zero-filling
// status distributions in reports.
var AllStatuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

// Application is a leave request. Status transitions are owned by the
// external approval workflow; the engine only reads the current state.
type Application struct {
	ID            string
	EmployeeID    string
	LeaveType     string
	StartDate     time.Time
	EndDate       time.Time
	Status        Status
	DaysRequested float64
	SubmittedAt   time.Time
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NoticeDays is the number of days between submission and the leave start.
// Negative values (backdated requests) are reported as zero.
func (a Application) NoticeDays() float64 {
	notice := a.StartDate.Sub(a.SubmittedAt).Hours() / 24
	if notice < 0 {
		return 0
	}
	return notice
}

// TypeAllocation is the annual per-type quota of one employee. DaysUsed is
// always recomputed from approved applications, never trusted from storage.
type TypeAllocation struct {
	EmployeeID     string
	LeaveType      string
	Year           int
	TotalAllocated float64
}
