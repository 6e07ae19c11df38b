package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/employee"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.name, e.email, e.phone, e.office_id, e.position_id, e.monthly_salary,
	e.joining_date, e.status, e.created_at, e.updated_at, o.name, p.title`

const employeeFrom = `
	FROM employees e
	LEFT JOIN offices o ON o.id = e.office_id
	LEFT JOIN positions p ON p.id = e.position_id`

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, email, phone, office_id, position_id, monthly_salary, joining_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.OfficeID,
		newEmployee.PositionID,
		newEmployee.MonthlySalary,
		dateParam(newEmployee.JoiningDate),
		newEmployee.Status,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		return employee.Employee{}, mapEmployeeWriteError(err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeColumns + employeeFrom + " WHERE e.id = $1"

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.OfficeID != nil {
		where = append(where, fmt.Sprintf("e.office_id = $%d", argIdx))
		args = append(args, *filter.OfficeID)
		argIdx++
	}
	if filter.PositionID != nil {
		where = append(where, fmt.Sprintf("e.position_id = $%d", argIdx))
		args = append(args, *filter.PositionID)
		argIdx++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		where = append(where, fmt.Sprintf("(e.name ILIKE $%d OR e.email ILIKE $%d OR e.id ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.AttendedIn != nil {
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM attendance a WHERE a.employee_id = e.id AND a.date BETWEEN $%d AND $%d)", argIdx, argIdx+1))
		args = append(args, filter.AttendedIn.From.Time(), filter.AttendedIn.To.Time())
		argIdx += 2
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees e WHERE "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := "SELECT " + employeeColumns + employeeFrom + " WHERE " + whereClause + " ORDER BY e.name, e.id"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, filter.Limit, filter.Offset())
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = nullIfEmpty(*req.Phone)
	}
	if req.OfficeID != nil {
		updates["office_id"] = nullIfEmpty(*req.OfficeID)
	}
	if req.PositionID != nil {
		updates["position_id"] = nullIfEmpty(*req.PositionID)
	}
	if req.MonthlySalary != nil {
		updates["monthly_salary"] = *req.MonthlySalary
	}
	if req.JoiningDate != nil {
		if *req.JoiningDate == "" {
			updates["joining_date"] = nil
		} else {
			d, err := civil.ParseDate(*req.JoiningDate)
			if err != nil {
				return err
			}
			updates["joining_date"] = d.Time()
		}
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return nil
	}

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1
	for _, col := range sortedKeys(updates) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, updates[col])
		argIdx++
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapEmployeeWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ListIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListIDs(ctx context.Context, prefix string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE id LIKE $1`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Summary implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Summary(ctx context.Context) (employee.Summary, error) {
	q := GetQuerier(ctx, r.db)

	var s employee.Summary
	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 1), COALESCE(SUM(monthly_salary), 0)
		FROM employees
	`).Scan(&s.TotalEmployees, &s.ActiveEmployees, &s.TotalMonthlySalary)
	if err != nil {
		return employee.Summary{}, fmt.Errorf("failed to summarize employees: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT e.office_id, COALESCE(o.name, 'Unassigned'), COUNT(*), COALESCE(SUM(e.monthly_salary), 0)
		FROM employees e
		LEFT JOIN offices o ON o.id = e.office_id
		GROUP BY e.office_id, o.name
		ORDER BY COALESCE(o.name, 'Unassigned')
	`)
	if err != nil {
		return employee.Summary{}, fmt.Errorf("failed to summarize employees by office: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h employee.OfficeHeadcount
		if err := rows.Scan(&h.OfficeID, &h.OfficeName, &h.Employees, &h.MonthlySalary); err != nil {
			return employee.Summary{}, fmt.Errorf("failed to scan office headcount: %w", err)
		}
		s.ByOffice = append(s.ByOffice, h)
	}
	return s, rows.Err()
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var joining *time.Time
	var salary decimal.Decimal
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.OfficeID, &e.PositionID, &salary,
		&joining, &e.Status, &e.CreatedAt, &e.UpdatedAt, &e.OfficeName, &e.PositionName,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	e.MonthlySalary = salary
	if joining != nil {
		d := civil.DateOf(*joining)
		e.JoiningDate = &d
	}
	return e, nil
}

func mapEmployeeWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "email") {
				return employee.ErrEmailExists
			}
			return employee.ErrEmployeeIDExists
		case "23503": // foreign_key_violation
			if strings.Contains(pgErr.ConstraintName, "position_id") {
				return employee.ErrPositionNotFound
			}
			return employee.ErrOfficeNotFound
		}
	}
	return fmt.Errorf("failed to write employee: %w", err)
}
