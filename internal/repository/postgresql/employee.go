package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			id, name, email, role, hourly_rate, department, position,
			hire_date, phone, address, password_hash, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		emp.ID, emp.Name, emp.Email, string(emp.Role), emp.HourlyRate,
		emp.Department, emp.Position, emp.HireDate, emp.Phone, emp.Address,
		emp.PasswordHash, emp.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return r.getOne(ctx, `WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *employeeRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (employee.Employee, error) {
	query := `
		SELECT id, name, email, role, hourly_rate, department, position,
			   hire_date, phone, address, password_hash, created_at
		FROM employees
	` + where

	var emp employee.Employee
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.HourlyRate,
		&emp.Department, &emp.Position, &emp.HireDate, &emp.Phone, &emp.Address,
		&emp.PasswordHash, &emp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT id, name, email, role, hourly_rate, department, position,
			   hire_date, phone, address, password_hash, created_at
		FROM employees
		ORDER BY name, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.HourlyRate,
			&emp.Department, &emp.Position, &emp.HireDate, &emp.Phone, &emp.Address,
			&emp.PasswordHash, &emp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, role = $3, hourly_rate = $4, department = $5,
			position = $6, phone = $7, address = $8
		WHERE id = $1
	`
	commandTag, err := r.db.Exec(ctx, query,
		emp.ID, emp.Name, string(emp.Role), emp.HourlyRate,
		emp.Department, emp.Position, emp.Phone, emp.Address,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	// Removal is idempotent: deleting an absent id is not an error.
	_, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}
