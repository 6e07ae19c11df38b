package timing

import (
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
)

type UpsertOfficePositionRequest struct {
	OfficeID      string  `json:"office_id"`
	PositionID    string  `json:"position_id"`
	ReportingTime string  `json:"reporting_time"`
	DutyHours     float64 `json:"duty_hours"`
}

func (r *UpsertOfficePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.OfficeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_id",
			Message: "office_id must be a valid UUID",
		})
	}
	if !validator.IsValidUUID(r.PositionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_id",
			Message: "position_id must be a valid UUID",
		})
	}
	if !validator.IsValidTimeOfDay(r.ReportingTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "reporting_time",
			Message: "reporting_time must be HH:mm or HH:mm:ss",
		})
	}
	if r.DutyHours <= 0 || r.DutyHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "duty_hours",
			Message: "duty_hours must be greater than 0 and at most 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NormalizedReportingTime returns the reporting time as HH:mm:ss.
func (r *UpsertOfficePositionRequest) NormalizedReportingTime() string {
	t, ok := civil.ParseTimeOfDay(r.ReportingTime)
	if !ok {
		return r.ReportingTime
	}
	return t.String()
}

type OfficePositionResponse struct {
	OfficeID      string  `json:"office_id"`
	OfficeName    *string `json:"office_name,omitempty"`
	PositionID    string  `json:"position_id"`
	PositionTitle *string `json:"position_title,omitempty"`
	ReportingTime string  `json:"reporting_time"`
	DutyHours     float64 `json:"duty_hours"`
}

func (o OfficePosition) ToResponse() OfficePositionResponse {
	return OfficePositionResponse{
		OfficeID:      o.OfficeID,
		OfficeName:    o.OfficeName,
		PositionID:    o.PositionID,
		PositionTitle: o.PositionTitle,
		ReportingTime: o.ReportingTime,
		DutyHours:     o.DutyHours,
	}
}

// TimingResponse is the effective timing for an office and position, with
// IsDefault set when no row exists.
type TimingResponse struct {
	ReportingTime string  `json:"reporting_time"`
	DutyHours     float64 `json:"duty_hours"`
	IsDefault     bool    `json:"is_default"`
}
