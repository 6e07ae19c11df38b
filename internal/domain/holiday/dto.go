package holiday

import "github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"

// UpcomingLimit is the default size of Upcoming.
const UpcomingLimit = 10

type CreateHolidayRequest struct {
	Name   string  `json:"name"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
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

// UpdateHolidayRequest is a partial update; nil fields are kept.
type UpdateHolidayRequest struct {
	ID     string  `json:"-"`
	Name   *string `json:"name,omitempty"`
	Date   *string `json:"date,omitempty"`
	Reason *string `json:"reason,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && (validator.IsEmpty(*r.Name) || len(*r.Name) > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be 1-100 characters",
		})
	}
	if r.Date != nil && !validator.IsValidCalendarDate(*r.Date) {
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

type ListHolidayQuery struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

func (q *ListHolidayQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.FromDate != "" && !validator.IsValidCalendarDate(q.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date must be YYYY-MM-DD"})
	}
	if q.ToDate != "" && !validator.IsValidCalendarDate(q.ToDate) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

func (h Holiday) ToResponse() HolidayResponse {
	return HolidayResponse{ID: h.ID, Name: h.Name, Date: h.Date.String(), Reason: h.Reason}
}
