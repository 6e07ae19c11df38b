package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollRecordSelect = `
	SELECT pr.id, pr.employee_id, pr.period_month, pr.period_year, pr.working_days,
	       pr.present_days, pr.half_days, pr.late_days, pr.absent_days, pr.excess_leaves,
	       pr.approved_leaves, pr.missing_days, pr.base_salary, pr.deductions_amount,
	       pr.net_salary, pr.run_id, pr.created_at, pr.updated_at,
	       e.name, o.name, p.title
	FROM payroll_records pr
	JOIN employees e ON e.id = pr.employee_id
	LEFT JOIN offices o ON o.id = e.office_id
	LEFT JOIN positions p ON p.id = e.position_id`

// UpsertRecord implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpsertRecord(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, period_month, period_year, working_days, present_days, half_days,
			late_days, absent_days, excess_leaves, approved_leaves, missing_days,
			base_salary, deductions_amount, net_salary, run_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			present_days = EXCLUDED.present_days,
			half_days = EXCLUDED.half_days,
			late_days = EXCLUDED.late_days,
			absent_days = EXCLUDED.absent_days,
			excess_leaves = EXCLUDED.excess_leaves,
			approved_leaves = EXCLUDED.approved_leaves,
			missing_days = EXCLUDED.missing_days,
			base_salary = EXCLUDED.base_salary,
			deductions_amount = EXCLUDED.deductions_amount,
			net_salary = EXCLUDED.net_salary,
			run_id = EXCLUDED.run_id,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear, rec.WorkingDays, rec.PresentDays, rec.HalfDays,
		rec.LateDays, rec.AbsentDays, rec.ExcessLeaves, rec.ApprovedLeaves, rec.MissingDays,
		rec.BaseSalary, rec.DeductionsAmount, rec.NetSalary, rec.RunID,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return rec, nil
}

// GetRecord implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetRecord(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollRecordSelect + " WHERE pr.employee_id = $1 AND pr.period_month = $2 AND pr.period_year = $3"
	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

// ListRecords implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListRecords(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollRecordSelect + " WHERE pr.period_month = $1 AND pr.period_year = $2 ORDER BY e.name, pr.employee_id"
	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Summary implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Summary(ctx context.Context, month, year int) (payroll.PayrollSummary, error) {
	q := GetQuerier(ctx, r.db)

	s := payroll.PayrollSummary{PeriodMonth: month, PeriodYear: year}
	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(base_salary), 0), COALESCE(SUM(deductions_amount), 0), COALESCE(SUM(net_salary), 0)
		FROM payroll_records
		WHERE period_month = $1 AND period_year = $2
	`, month, year).Scan(&s.TotalEmployees, &s.TotalBaseSalary, &s.TotalDeductions, &s.TotalNetSalary)
	if err != nil {
		return payroll.PayrollSummary{}, fmt.Errorf("failed to summarize payroll: %w", err)
	}
	return s, nil
}

// DeleteByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteByPeriod(ctx context.Context, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE period_month = $1 AND period_year = $2`, month, year)
	if err != nil {
		return 0, fmt.Errorf("failed to delete payroll records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM payroll_records WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`, employeeID, month, year)
	if err != nil {
		return 0, fmt.Errorf("failed to delete payroll record: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear, &rec.WorkingDays,
		&rec.PresentDays, &rec.HalfDays, &rec.LateDays, &rec.AbsentDays, &rec.ExcessLeaves,
		&rec.ApprovedLeaves, &rec.MissingDays, &rec.BaseSalary, &rec.DeductionsAmount,
		&rec.NetSalary, &rec.RunID, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.OfficeName, &rec.PositionName,
	)
	return rec, err
}
