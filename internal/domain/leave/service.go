package leave

import (
	"context"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

type ApprovedLeaveService interface {
	// Add approves a date for an employee; approving it again updates the reason.
	Add(ctx context.Context, req AddApprovedLeaveRequest) (ApprovedLeaveResponse, error)
	Remove(ctx context.Context, req RemoveApprovedLeaveRequest) error
	List(ctx context.Context, req ListApprovedLeaveRequest) ([]ApprovedLeaveResponse, error)

	// DatesBetween returns one employee's approved dates within [from, to] in order.
	DatesBetween(ctx context.Context, employeeID string, from, to civil.Date) ([]civil.Date, error)
}
