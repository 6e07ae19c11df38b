package holiday

import (
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

type Holiday struct {
	ID        string
	Name      string
	Date      civil.Date
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
