package leave

import (
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

// ApprovedLeave excuses one employee for one date. Punches recorded on an
// approved date are ignored by payroll.
type ApprovedLeave struct {
	ID         string
	EmployeeID string
	Date       civil.Date
	ApprovedBy *string
	Reason     *string
	CreatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
