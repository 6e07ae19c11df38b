package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, punch_in, punch_out)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET punch_in = EXCLUDED.punch_in, punch_out = EXCLUDED.punch_out, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, record.EmployeeID, record.Date.Time(), record.PunchIn, record.PunchOut).
		Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return attendance.Record{}, fmt.Errorf("%w: %s", attendance.ErrEmployeeNotFound, record.EmployeeID)
		}
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return record, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, filter.From.Time())
		argIdx++
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, filter.To.Time())
		argIdx++
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance a WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.created_at, a.updated_at, e.name
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, a.employee_id
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, max(filter.Page-1, 0)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows, true)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// GetByEmployeeRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeRange(ctx context.Context, employeeID string, from, to civil.Date) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, punch_in, punch_out, created_at, updated_at
		FROM attendance
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for %s: %w", employeeID, err)
	}
	defer rows.Close()

	return scanRecords(rows, false)
}

// GetByEmployeesRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeesRange(ctx context.Context, employeeIDs []string, from, to civil.Date) (map[string][]attendance.Record, error) {
	out := make(map[string][]attendance.Record, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, punch_in, punch_out, created_at, updated_at
		FROM attendance
		WHERE employee_id = ANY($1) AND date BETWEEN $2 AND $3
		ORDER BY employee_id, date
	`

	rows, err := q.Query(ctx, query, employeeIDs, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance batch: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows, false)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		out[rec.EmployeeID] = append(out[rec.EmployeeID], rec)
	}
	return out, nil
}

// DistinctDates implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DistinctDates(ctx context.Context, from, to civil.Date) ([]civil.Date, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT date FROM attendance
		WHERE date BETWEEN $1 AND $2
		ORDER BY date
	`, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance dates: %w", err)
	}
	defer rows.Close()

	var dates []civil.Date
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan attendance date: %w", err)
		}
		dates = append(dates, civil.DateOf(d))
	}
	return dates, rows.Err()
}

// DeleteByRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByRange(ctx context.Context, from, to civil.Date) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE date BETWEEN $1 AND $2`, from.Time(), to.Time())
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByEmployeeRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByEmployeeRange(ctx context.Context, employeeID string, from, to civil.Date) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1 AND date BETWEEN $2 AND $3`,
		employeeID, from.Time(), to.Time())
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for %s: %w", employeeID, err)
	}
	return tag.RowsAffected(), nil
}

func scanRecords(rows pgx.Rows, withName bool) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var date time.Time
		dest := []interface{}{&rec.ID, &rec.EmployeeID, &date, &rec.PunchIn, &rec.PunchOut, &rec.CreatedAt, &rec.UpdatedAt}
		if withName {
			dest = append(dest, &rec.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		rec.Date = civil.DateOf(date)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}
