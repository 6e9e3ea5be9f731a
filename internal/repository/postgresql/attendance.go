package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// ListForEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	query := `
		SELECT id, employee_id, date, status, check_in, check_out, is_late,
			hours_worked, overtime_hours, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	records, err := a.queryRecords(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	return records, nil
}

// ListForPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListForPeriod(ctx context.Context, department string, start, end time.Time) ([]attendance.Record, error) {
	query := `
		SELECT r.id, r.employee_id, r.date, r.status, r.check_in, r.check_out, r.is_late,
			r.hours_worked, r.overtime_hours, r.created_at, r.updated_at
		FROM attendance_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.date >= $1 AND r.date <= $2 AND e.is_active = TRUE
	`
	args := []any{start, end}
	if department != "" {
		query += ` AND e.department = $3`
		args = append(args, department)
	}
	query += ` ORDER BY r.date, r.employee_id`

	records, err := a.queryRecords(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for period: %w", err)
	}
	return records, nil
}

func (a *attendanceRepositoryImpl) queryRecords(ctx context.Context, query string, args ...any) ([]attendance.Record, error) {
	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut,
			&rec.IsLate, &rec.HoursWorked, &rec.OvertimeHours, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err := a.attachBreaks(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// attachBreaks loads the break intervals of every fetched record in one query.
func (a *attendanceRepositoryImpl) attachBreaks(ctx context.Context, records []attendance.Record) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]string, 0, len(records))
	index := make(map[string]int, len(records))
	for i, rec := range records {
		ids = append(ids, rec.ID)
		index[rec.ID] = i
	}

	query := `
		SELECT record_id, break_start, break_end
		FROM attendance_breaks
		WHERE record_id = ANY($1)
		ORDER BY break_start
	`

	rows, err := a.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load attendance breaks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recordID string
		var br attendance.BreakInterval
		if err := rows.Scan(&recordID, &br.Start, &br.End); err != nil {
			return err
		}
		if i, ok := index[recordID]; ok {
			records[i].Breaks = append(records[i].Breaks, br)
		}
	}
	return rows.Err()
}
