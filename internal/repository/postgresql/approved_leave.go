package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/leave"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/database"
)

type approvedLeaveRepositoryImpl struct {
	db *database.DB
}

func NewApprovedLeaveRepository(db *database.DB) leave.ApprovedLeaveRepository {
	return &approvedLeaveRepositoryImpl{db: db}
}

// Upsert implements leave.ApprovedLeaveRepository.
func (r *approvedLeaveRepositoryImpl) Upsert(ctx context.Context, l leave.ApprovedLeave) (leave.ApprovedLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO approved_leaves (employee_id, date, approved_by, reason)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET approved_by = EXCLUDED.approved_by, reason = EXCLUDED.reason
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query, l.EmployeeID, l.Date.Time(), l.ApprovedBy, l.Reason).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return leave.ApprovedLeave{}, leave.ErrEmployeeNotFound
		}
		return leave.ApprovedLeave{}, fmt.Errorf("failed to upsert approved leave: %w", err)
	}
	return l, nil
}

// Delete implements leave.ApprovedLeaveRepository.
func (r *approvedLeaveRepositoryImpl) Delete(ctx context.Context, employeeID string, date civil.Date) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM approved_leaves WHERE employee_id = $1 AND date = $2`, employeeID, date.Time())
	if err != nil {
		return fmt.Errorf("failed to delete approved leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApprovedLeaveNotFound
	}
	return nil
}

// ListByEmployee implements leave.ApprovedLeaveRepository.
func (r *approvedLeaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to civil.Date) ([]leave.ApprovedLeave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT al.id, al.employee_id, al.date, al.approved_by, al.reason, al.created_at, e.name
		FROM approved_leaves al
		JOIN employees e ON e.id = al.employee_id
		WHERE al.employee_id = $1 AND al.date BETWEEN $2 AND $3
		ORDER BY al.date
	`, employeeID, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var out []leave.ApprovedLeave
	for rows.Next() {
		var l leave.ApprovedLeave
		var date time.Time
		if err := rows.Scan(&l.ID, &l.EmployeeID, &date, &l.ApprovedBy, &l.Reason, &l.CreatedAt, &l.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan approved leave: %w", err)
		}
		l.Date = civil.DateOf(date)
		out = append(out, l)
	}
	return out, rows.Err()
}

// DatesByEmployees implements leave.ApprovedLeaveRepository.
func (r *approvedLeaveRepositoryImpl) DatesByEmployees(ctx context.Context, employeeIDs []string, from, to civil.Date) (map[string][]civil.Date, error) {
	out := make(map[string][]civil.Date, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}

	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT employee_id, date FROM approved_leaves
		WHERE employee_id = ANY($1) AND date BETWEEN $2 AND $3
		ORDER BY employee_id, date
	`, employeeIDs, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave dates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID string
		var date time.Time
		if err := rows.Scan(&employeeID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan approved leave date: %w", err)
		}
		out[employeeID] = append(out[employeeID], civil.DateOf(date))
	}
	return out, rows.Err()
}
