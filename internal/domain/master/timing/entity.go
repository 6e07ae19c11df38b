package timing

import (
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
)

// OfficePosition is the reporting time and duty length for one office and position.
type OfficePosition struct {
	OfficeID      string
	PositionID    string
	ReportingTime string // HH:mm:ss
	DutyHours     float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	OfficeName    *string
	PositionTitle *string
}

// Config converts the row into the classifier's timing, falling back to the
// defaults for unusable values.
func (o OfficePosition) Config() payroll.TimingConfig {
	return payroll.NewTimingConfig(o.ReportingTime, o.DutyHours)
}
