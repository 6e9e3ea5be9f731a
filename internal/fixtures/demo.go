package fixtures

import (
	"math/rand"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/google/uuid"
)

// DemoData is a coherent local-development dataset: a small directory with a
// quarter of attendance history and a year of leave activity.
type DemoData struct {
	Employees    []employee.Employee
	Records      []attendance.Record
	Applications []leave.Application
	Allocations  []leave.TypeAllocation
}

var demoDirectory = []struct {
	name       string
	email      string
	department string
	role       employee.Role
}{
	{"Ana Widjaja", "ana@demo.local", "Engineering", employee.RoleEmployee},
	{"Budi Santoso", "budi@demo.local", "Engineering", employee.RoleManager},
	{"Citra Lestari", "citra@demo.local", "Finance", employee.RoleHR},
	{"Dewi Anggraini", "dewi@demo.local", "Finance", employee.RoleEmployee},
	{"Eko Prasetyo", "eko@demo.local", "Sales", employee.RoleEmployee},
	{"Fajar Nugroho", "fajar@demo.local", "Sales", employee.RoleEmployee},
}

var demoLeaveTypes = []string{"annual", "sick", "unpaid"}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewDemoData builds the dataset ending at the given day. The rand source is
// seeded so repeated seeding of a fresh database produces the same rows.
func NewDemoData(now time.Time) DemoData {
	rng := rand.New(rand.NewSource(42))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	data := DemoData{}
	for _, entry := range demoDirectory {
		data.Employees = append(data.Employees, employee.Employee{
			ID:         newID(),
			Name:       entry.name,
			Email:      entry.email,
			Department: entry.department,
			Role:       entry.role,
			IsActive:   true,
			CreatedAt:  today.AddDate(-1, 0, 0),
			UpdatedAt:  today.AddDate(-1, 0, 0),
		})
	}

	for _, emp := range data.Employees {
		data.Records = append(data.Records, demoAttendance(rng, emp, today)...)
		data.Applications = append(data.Applications, demoLeave(rng, emp, today)...)
		for _, leaveType := range demoLeaveTypes {
			data.Allocations = append(data.Allocations, leave.TypeAllocation{
				EmployeeID:     emp.ID,
				LeaveType:      leaveType,
				Year:           today.Year(),
				TotalAllocated: float64(6 + rng.Intn(10)),
			})
		}
	}

	return data
}

// demoAttendance marks weekdays over the trailing 90 days with a mostly
// present pattern and realistic hours.
func demoAttendance(rng *rand.Rand, emp employee.Employee, today time.Time) []attendance.Record {
	var records []attendance.Record
	for offset := 90; offset >= 1; offset-- {
		date := today.AddDate(0, 0, -offset)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}

		rec := attendance.Record{
			ID:         newID(),
			EmployeeID: emp.ID,
			Date:       date,
			Status:     attendance.StatusPresent,
			CreatedAt:  date,
			UpdatedAt:  date,
		}

		switch roll := rng.Float64(); {
		case roll < 0.04:
			rec.Status = attendance.StatusAbsent
		case roll < 0.08:
			rec.Status = attendance.StatusHalfDay
			rec.HoursWorked = 4
		default:
			rec.IsLate = roll < 0.20
			rec.HoursWorked = 7.5 + rng.Float64()
			if rng.Float64() < 0.15 {
				rec.OvertimeHours = 1 + rng.Float64()*2
			}
			checkIn := time.Date(date.Year(), date.Month(), date.Day(), 9, rng.Intn(30), 0, 0, time.UTC)
			checkOut := checkIn.Add(time.Duration((rec.HoursWorked + 1) * float64(time.Hour)))
			rec.CheckIn = &checkIn
			rec.CheckOut = &checkOut
			rec.Breaks = []attendance.BreakInterval{{
				Start: time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC),
				End:   time.Date(date.Year(), date.Month(), date.Day(), 12, 30+rng.Intn(30), 0, 0, time.UTC),
			}}
		}

		records = append(records, rec)
	}
	return records
}

// demoLeave spreads a handful of applications across the current year with
// varied statuses and notice.
func demoLeave(rng *rand.Rand, emp employee.Employee, today time.Time) []leave.Application {
	statuses := []leave.Status{
		leave.StatusApproved, leave.StatusApproved, leave.StatusApproved,
		leave.StatusPending, leave.StatusRejected, leave.StatusCancelled,
	}

	var apps []leave.Application
	count := 2 + rng.Intn(4)
	for i := 0; i < count; i++ {
		start := time.Date(today.Year(), time.Month(1+rng.Intn(12)), 1+rng.Intn(25), 0, 0, 0, 0, time.UTC)
		days := 1 + rng.Intn(5)
		status := statuses[rng.Intn(len(statuses))]

		app := leave.Application{
			ID:            newID(),
			EmployeeID:    emp.ID,
			LeaveType:     demoLeaveTypes[rng.Intn(len(demoLeaveTypes))],
			StartDate:     start,
			EndDate:       start.AddDate(0, 0, days-1),
			Status:        status,
			DaysRequested: float64(days),
			SubmittedAt:   start.AddDate(0, 0, -(1 + rng.Intn(21))),
			CreatedAt:     start.AddDate(0, 0, -21),
			UpdatedAt:     start.AddDate(0, 0, -21),
		}
		if status != leave.StatusPending {
			decided := app.SubmittedAt.AddDate(0, 0, 1+rng.Intn(5))
			app.DecidedAt = &decided
		}
		apps = append(apps, app)
	}
	return apps
}
