package attendance

import (
	"context"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

type AttendanceRepository interface {
	// Upsert inserts or replaces the punches for (employee, date).
	Upsert(ctx context.Context, record Record) (Record, error)

	// List returns records matching filter, newest date first, with the total count.
	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// GetByEmployeeRange returns one employee's records within [from, to].
	GetByEmployeeRange(ctx context.Context, employeeID string, from, to civil.Date) ([]Record, error)

	// GetByEmployeesRange returns records for several employees keyed by employee ID.
	GetByEmployeesRange(ctx context.Context, employeeIDs []string, from, to civil.Date) (map[string][]Record, error)

	// DistinctDates returns every date within [from, to] that has at least one record.
	DistinctDates(ctx context.Context, from, to civil.Date) ([]civil.Date, error)

	DeleteByRange(ctx context.Context, from, to civil.Date) (int64, error)
	DeleteByEmployeeRange(ctx context.Context, employeeID string, from, to civil.Date) (int64, error)
}
