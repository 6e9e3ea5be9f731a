package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
)

// AllStatuses is the fixed enumeration order used when zero-filling
// status distributions in reports.
var AllStatuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay}

// BreakInterval is a closed interval within one working day.
type BreakInterval struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the break duration in minutes.
func (b BreakInterval) Minutes() float64 {
	return b.End.Sub(b.Start).Minutes()
}

// Record is one employee-day of attendance. At most one record exists per
// (employee, date); days without a record are simply unmarked.
type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Status        Status
	CheckIn       *time.Time
	CheckOut      *time.Time
	IsLate        bool
	HoursWorked   float64
	OvertimeHours float64
	Breaks        []BreakInterval
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
