package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/emsuite/ems-backend-go/internal/config"
	"github.com/emsuite/ems-backend-go/internal/fixtures"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
)

// Seeds the demo dataset for local development. Assumes an empty database;
// rerunning against seeded tables will fail on primary keys.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	ctx := context.Background()
	data := fixtures.NewDemoData(time.Now())

	for _, emp := range data.Employees {
		_, err := db.Exec(ctx, `
			INSERT INTO employees (id, full_name, email, department, role, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, emp.ID, emp.Name, emp.Email, emp.Department, emp.Role, emp.IsActive, emp.CreatedAt, emp.UpdatedAt)
		if err != nil {
			log.Fatal("Error seeding employees: ", err)
		}
	}

	for _, rec := range data.Records {
		_, err := db.Exec(ctx, `
			INSERT INTO attendance_records (id, employee_id, date, status, check_in, check_out, is_late,
				hours_worked, overtime_hours, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, rec.ID, rec.EmployeeID, rec.Date, rec.Status, rec.CheckIn, rec.CheckOut, rec.IsLate,
			rec.HoursWorked, rec.OvertimeHours, rec.CreatedAt, rec.UpdatedAt)
		if err != nil {
			log.Fatal("Error seeding attendance records: ", err)
		}
		for _, br := range rec.Breaks {
			_, err := db.Exec(ctx, `
				INSERT INTO attendance_breaks (record_id, break_start, break_end)
				VALUES ($1, $2, $3)
			`, rec.ID, br.Start, br.End)
			if err != nil {
				log.Fatal("Error seeding attendance breaks: ", err)
			}
		}
	}

	for _, app := range data.Applications {
		_, err := db.Exec(ctx, `
			INSERT INTO leave_applications (id, employee_id, leave_type, start_date, end_date, status,
				days_requested, submitted_at, decided_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, app.ID, app.EmployeeID, app.LeaveType, app.StartDate, app.EndDate, app.Status,
			app.DaysRequested, app.SubmittedAt, app.DecidedAt, app.CreatedAt, app.UpdatedAt)
		if err != nil {
			log.Fatal("Error seeding leave applications: ", err)
		}
	}

	for _, alloc := range data.Allocations {
		_, err := db.Exec(ctx, `
			INSERT INTO leave_allocations (employee_id, leave_type, year, total_allocated)
			VALUES ($1, $2, $3, $4)
		`, alloc.EmployeeID, alloc.LeaveType, alloc.Year, alloc.TotalAllocated)
		if err != nil {
			log.Fatal("Error seeding leave allocations: ", err)
		}
	}

	fmt.Printf("Seeded %d employees, %d attendance records, %d leave applications, %d allocations\n",
		len(data.Employees), len(data.Records), len(data.Applications), len(data.Allocations))
}
