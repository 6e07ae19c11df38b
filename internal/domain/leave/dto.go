package leave

import "github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"

type AddApprovedLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Reason     *string `json:"reason,omitempty"`
	ApprovedBy *string `json:"-"` // From JWT
}

func (r *AddApprovedLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidCalendarDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD or RFC3339",
		})
	}
	if r.Reason != nil && len(*r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RemoveApprovedLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r *RemoveApprovedLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidCalendarDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD or RFC3339",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListApprovedLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *ListApprovedLeaveRequest) Validate() error {
	errs := validator.ValidatePeriod(r.Year, r.Month)

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApprovedLeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

func (l ApprovedLeave) ToResponse() ApprovedLeaveResponse {
	return ApprovedLeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Date:         l.Date.String(),
		ApprovedBy:   l.ApprovedBy,
		Reason:       l.Reason,
	}
}
