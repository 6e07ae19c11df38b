package leave

import (
	"context"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

type ApprovedLeaveRepository interface {
	// Upsert adds the leave, or updates approver and reason if it already exists.
	Upsert(ctx context.Context, leave ApprovedLeave) (ApprovedLeave, error)
	Delete(ctx context.Context, employeeID string, date civil.Date) error
	ListByEmployee(ctx context.Context, employeeID string, from, to civil.Date) ([]ApprovedLeave, error)

	// DatesByEmployees returns approved dates within [from, to] keyed by employee ID.
	DatesByEmployees(ctx context.Context, employeeIDs []string, from, to civil.Date) (map[string][]civil.Date, error)
}
