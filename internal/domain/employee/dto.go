package employee

import (
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	// ID is optional; the next free code is assigned when empty.
	ID            string          `json:"employee_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         *string         `json:"phone,omitempty"`
	OfficeID      *string         `json:"office_id,omitempty"`
	PositionID    *string         `json:"position_id,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	JoiningDate   *string         `json:"joining_date,omitempty"`
	Status        *int            `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID != "" && !validator.IsValidEmployeeCode(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be 1-10 letters, numbers or hyphens",
		})
	}
	errs = append(errs, validateName(r.Name)...)
	errs = append(errs, validateEmail(r.Email)...)
	errs = append(errs, validateOptional(r.Phone, r.OfficeID, r.PositionID, r.JoiningDate, r.Status)...)
	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: ErrNegativeSalary.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Email         *string          `json:"email,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	OfficeID      *string          `json:"office_id,omitempty"`
	PositionID    *string          `json:"position_id,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	JoiningDate   *string          `json:"joining_date,omitempty"`
	Status        *int             `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Name != nil {
		errs = append(errs, validateName(*r.Name)...)
	}
	if r.Email != nil {
		errs = append(errs, validateEmail(*r.Email)...)
	}
	errs = append(errs, validateOptional(r.Phone, r.OfficeID, r.PositionID, r.JoiningDate, r.Status)...)
	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: ErrNegativeSalary.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsEmpty reports an update that changes nothing.
func (r *UpdateEmployeeRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil && r.OfficeID == nil &&
		r.PositionID == nil && r.MonthlySalary == nil && r.JoiningDate == nil && r.Status == nil
}

func validateName(name string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	return errs
}

func validateEmail(email string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	return errs
}

func validateOptional(phone, officeID, positionID, joiningDate *string, status *int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if phone != nil && *phone != "" && !validator.IsValidPhoneNumber(*phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be 7-15 digits, optionally starting with +",
		})
	}
	// An empty office or position unassigns it.
	if officeID != nil && *officeID != "" && !validator.IsValidUUID(*officeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_id",
			Message: "office_id must be a valid UUID",
		})
	}
	if positionID != nil && *positionID != "" && !validator.IsValidUUID(*positionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_id",
			Message: "position_id must be a valid UUID",
		})
	}
	if joiningDate != nil && *joiningDate != "" && !validator.IsValidCalendarDate(*joiningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be YYYY-MM-DD",
		})
	}
	if status != nil && *status != int(StatusActive) && *status != int(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 0 or 1",
		})
	}
	return errs
}

type ListEmployeeQuery struct {
	OfficeID   string `json:"office_id"`
	PositionID string `json:"position_id"`
	Status     string `json:"status"`
	Search     string `json:"search"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

func (q *ListEmployeeQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.OfficeID != "" && !validator.IsValidUUID(q.OfficeID) {
		errs = append(errs, validator.ValidationError{Field: "office_id", Message: "office_id must be a valid UUID"})
	}
	if q.PositionID != "" && !validator.IsValidUUID(q.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "position_id must be a valid UUID"})
	}
	if q.Status != "" && q.Status != "0" && q.Status != "1" {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be 0 or 1"})
	}
	if q.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be positive"})
	}
	if q.Limit < 0 || q.Limit > 200 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be between 1 and 200"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string          `json:"employee_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         *string         `json:"phone,omitempty"`
	OfficeID      *string         `json:"office_id,omitempty"`
	OfficeName    *string         `json:"office_name,omitempty"`
	PositionID    *string         `json:"position_id,omitempty"`
	PositionName  *string         `json:"position_name,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	JoiningDate   *string         `json:"joining_date,omitempty"`
	Status        int             `json:"status"`
}

func (e Employee) ToResponse() EmployeeResponse {
	resp := EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		OfficeID:      e.OfficeID,
		OfficeName:    e.OfficeName,
		PositionID:    e.PositionID,
		PositionName:  e.PositionName,
		MonthlySalary: e.MonthlySalary.Round(2),
		Status:        int(e.Status),
	}
	if e.JoiningDate != nil {
		s := e.JoiningDate.String()
		resp.JoiningDate = &s
	}
	return resp
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

type NextIDResponse struct {
	NextID string `json:"next_id"`
}

type OfficeHeadcountResponse struct {
	OfficeID      *string         `json:"office_id"`
	OfficeName    string          `json:"office_name"`
	Employees     int             `json:"employees"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

type SummaryResponse struct {
	TotalEmployees     int                       `json:"total_employees"`
	ActiveEmployees    int                       `json:"active_employees"`
	TotalMonthlySalary decimal.Decimal           `json:"total_monthly_salary"`
	ByOffice           []OfficeHeadcountResponse `json:"by_office"`
}
