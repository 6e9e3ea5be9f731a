package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `
		SELECT id, full_name, email, department, role, is_active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := e.db.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Department,
		&emp.Role, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context, department string) ([]employee.Employee, error) {
	query := `
		SELECT id, full_name, email, department, role, is_active, created_at, updated_at
		FROM employees
		WHERE is_active = TRUE
	`
	args := []any{}
	if department != "" {
		query += ` AND department = $1`
		args = append(args, department)
	}
	query += ` ORDER BY id`

	rows, err := e.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.Department,
			&emp.Role, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
