package attendance

import (
	"fmt"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
)

// MaxBatchSize bounds BulkUpsert requests.
const MaxBatchSize = 5000

type UpsertAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	PunchIn    string `json:"punch_in"`
	PunchOut   string `json:"punch_out"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	errs := r.validate("")
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpsertAttendanceRequest) validate(prefix string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: prefix + "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: prefix + "date", Message: "date is required"})
	} else if !validator.IsValidCalendarDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: prefix + "date", Message: "date must be YYYY-MM-DD or RFC3339"})
	}
	// Empty punches are allowed and mean "no punch".
	if !validator.IsEmpty(r.PunchIn) && !validator.IsValidTimeOfDay(r.PunchIn) {
		errs = append(errs, validator.ValidationError{Field: prefix + "punch_in", Message: "punch_in must be HH:mm or HH:mm:ss"})
	}
	if !validator.IsEmpty(r.PunchOut) && !validator.IsValidTimeOfDay(r.PunchOut) {
		errs = append(errs, validator.ValidationError{Field: prefix + "punch_out", Message: "punch_out must be HH:mm or HH:mm:ss"})
	}

	return errs
}

type BulkUpsertAttendanceRequest struct {
	Records []UpsertAttendanceRequest `json:"records"`
}

func (r *BulkUpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: ErrEmptyBatch.Error()})
	} else if len(r.Records) > MaxBatchSize {
		errs = append(errs, validator.ValidationError{Field: "records", Message: fmt.Sprintf("at most %d records per batch", MaxBatchSize)})
	}
	for i := range r.Records {
		errs = append(errs, r.Records[i].validate(fmt.Sprintf("records[%d].", i))...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceQuery struct {
	EmployeeID string `json:"employee_id"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

func (q *ListAttendanceQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.FromDate != "" && !validator.IsValidCalendarDate(q.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date must be YYYY-MM-DD"})
	}
	if q.ToDate != "" && !validator.IsValidCalendarDate(q.ToDate) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must be YYYY-MM-DD"})
	}
	if q.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be positive"})
	}
	if q.Limit < 0 || q.Limit > 500 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be between 1 and 500"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeleteMonthRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *DeleteMonthRequest) Validate() error {
	if errs := validator.ValidatePeriod(r.Year, r.Month); len(errs) > 0 {
		return errs
	}
	return nil
}

type DeleteEmployeeMonthRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *DeleteEmployeeMonthRequest) Validate() error {
	errs := validator.ValidatePeriod(r.Year, r.Month)
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	PunchIn      string  `json:"punch_in"`
	PunchOut     string  `json:"punch_out"`
}

type BulkUpsertAttendanceResponse struct {
	Saved int `json:"saved"`
}

type ListAttendanceResponse struct {
	Records    []AttendanceResponse `json:"records"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}

type DeleteAttendanceResponse struct {
	DeletedRecords  int64 `json:"deleted_records"`
	DeletedPayrolls int64 `json:"deleted_payrolls"`
}

// ToResponse converts a record for the API.
func (r Record) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date.String(),
		PunchIn:      r.PunchIn,
		PunchOut:     r.PunchOut,
	}
}
