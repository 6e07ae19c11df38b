package payroll

import "context"

type PayrollRepository interface {
	// UpsertRecord replaces the snapshot for (employee, month, year).
	UpsertRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetRecord(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)
	ListRecords(ctx context.Context, month, year int) ([]PayrollRecord, error)
	Summary(ctx context.Context, month, year int) (PayrollSummary, error)
	DeleteByPeriod(ctx context.Context, month, year int) (int64, error)
	DeleteByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (int64, error)
}
