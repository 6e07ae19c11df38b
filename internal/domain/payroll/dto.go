package payroll

import (
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Currency fields are rounded to this many places in responses only.
const MoneyPlaces = 2

func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ========== REQUEST DTOs ==========

type PayrollReportRequest struct {
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
	OfficeID   *string `json:"office_id,omitempty"`
	PositionID *string `json:"position_id,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (r *PayrollReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date is required"})
	} else if !validator.IsValidCalendarDate(r.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.ToDate) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date is required"})
	} else if !validator.IsValidCalendarDate(r.ToDate) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must be YYYY-MM-DD"})
	}
	if r.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be positive"})
	}
	if r.Limit < 0 || r.Limit > 200 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be between 1 and 200"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GeneratePayrollRequest struct {
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	OfficeID   *string `json:"office_id,omitempty"`
	PositionID *string `json:"position_id,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	if errs := validator.ValidatePeriod(r.Year, r.Month); len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeDetailsRequest struct {
	EmployeeID string `json:"employee_id"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
}

func (r *EmployeeDetailsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidCalendarDate(r.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date must be YYYY-MM-DD"})
	}
	if !validator.IsValidCalendarDate(r.ToDate) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PendingDaysRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *PendingDaysRequest) Validate() error {
	errs := validator.ValidatePeriod(r.Year, r.Month)
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *PeriodRequest) Validate() error {
	if errs := validator.ValidatePeriod(r.Year, r.Month); len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type DeductionBreakdown struct {
	Absent        decimal.Decimal `json:"absent"`
	ApprovedLeave decimal.Decimal `json:"approved_leave"`
	Missing       decimal.Decimal `json:"missing"`
	Excess        decimal.Decimal `json:"excess"`
	HalfDay       decimal.Decimal `json:"half_day"`
	Gross         decimal.Decimal `json:"gross"`
	Total         decimal.Decimal `json:"total"`
}

func NewDeductionBreakdown(r PayrollResult) DeductionBreakdown {
	return DeductionBreakdown{
		Absent:        RoundMoney(r.AbsentDeduction),
		ApprovedLeave: RoundMoney(r.ApprovedLeaveDeduction),
		Missing:       RoundMoney(r.MissingDeduction),
		Excess:        RoundMoney(r.ExcessDeduction),
		HalfDay:       RoundMoney(r.HalfDayDeduction),
		Gross:         RoundMoney(r.GrossDeductions),
		Total:         RoundMoney(r.TotalDeductions),
	}
}

type PayrollReportRow struct {
	EmployeeID      string                    `json:"employee_id"`
	Name            string                    `json:"name"`
	Email           string                    `json:"email"`
	OfficeName      *string                   `json:"office_name,omitempty"`
	PositionName    *string                   `json:"position_name,omitempty"`
	MonthlySalary   decimal.Decimal           `json:"monthly_salary"`
	PerDaySalary    decimal.Decimal           `json:"per_day_salary"`
	WorkingDays     int                       `json:"working_days"`
	PresentDays     int                       `json:"present_days"`
	HalfDays        int                       `json:"half_days"`
	LateDays        int                       `json:"late_days"`
	AbsentDays      int                       `json:"absent_days"`
	ExcessLeaves    int                       `json:"excess_leaves"`
	ApprovedLeaves  int                       `json:"approved_leaves"`
	MissingDays     int                       `json:"missing_days"`
	Deductions      DeductionBreakdown        `json:"deductions"`
	TotalDeductions decimal.Decimal           `json:"total_deductions"`
	NetSalary       decimal.Decimal           `json:"net_salary"`
	DayStatus       map[civil.Date]DayCode    `json:"day_status"`
	StreakMasks     map[civil.Date]StreakMask `json:"streak_masks"`
}

type ReportSummary struct {
	TotalEmployees  int             `json:"total_employees"`
	TotalBaseSalary decimal.Decimal `json:"total_base_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
}

type PayrollReportResponse struct {
	RunID        string             `json:"run_id"`
	FromDate     civil.Date         `json:"from_date"`
	ToDate       civil.Date         `json:"to_date"`
	Month        int                `json:"month"`
	Year         int                `json:"year"`
	WorkingDays  int                `json:"working_days"`
	WorkingDates []civil.Date       `json:"working_dates"`
	Rows         []PayrollReportRow `json:"rows"`
	Summary      ReportSummary      `json:"summary"`
	Saved        bool               `json:"saved"`
	TotalCount   int64              `json:"total_count"`
	Page         int                `json:"page"`
	Limit        int                `json:"limit"`
	TotalPages   int                `json:"total_pages"`
}

type DailyRow struct {
	Date         civil.Date      `json:"date"`
	PunchIn      string          `json:"punch_in"`
	PunchOut     string          `json:"punch_out"`
	WorkingHours decimal.Decimal `json:"working_hours"`
	Code         *DayCode        `json:"code,omitempty"`
	WorkingDay   bool            `json:"working_day"`
	Present      bool            `json:"present"`
	Late         bool            `json:"late"`
	HalfDay      bool            `json:"half_day"`
	Absent       bool            `json:"absent"`
	Excess       bool            `json:"excess"`
	Approved     bool            `json:"approved"`
	Missing      bool            `json:"missing"`
}

type TimingResponse struct {
	ReportingTime string  `json:"reporting_time"`
	DutyHours     float64 `json:"duty_hours"`
}

type EmployeePayrollDetailsResponse struct {
	FromDate  civil.Date       `json:"from_date"`
	ToDate    civil.Date       `json:"to_date"`
	Timing    TimingResponse   `json:"timing"`
	Summary   PayrollReportRow `json:"summary"`
	DailyRows []DailyRow       `json:"daily_rows"`
}

type PendingDaysResponse struct {
	EmployeeID   string       `json:"employee_id"`
	Year         int          `json:"year"`
	Month        int          `json:"month"`
	WorkingDays  int          `json:"working_days"`
	RecordedDays int          `json:"recorded_days"`
	PendingCount int          `json:"pending_count"`
	PendingDays  []civil.Date `json:"pending_days"`
}

type AttendanceDaysResponse struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Count int          `json:"count"`
	Days  []civil.Date `json:"days"`
}

type PayrollRecordResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	OfficeName       *string         `json:"office_name,omitempty"`
	PositionName     *string         `json:"position_name,omitempty"`
	PeriodMonth      int             `json:"period_month"`
	PeriodYear       int             `json:"period_year"`
	WorkingDays      int             `json:"working_days"`
	PresentDays      int             `json:"present_days"`
	HalfDays         int             `json:"half_days"`
	LateDays         int             `json:"late_days"`
	AbsentDays       int             `json:"absent_days"`
	ExcessLeaves     int             `json:"excess_leaves"`
	ApprovedLeaves   int             `json:"approved_leaves"`
	MissingDays      int             `json:"missing_days"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	DeductionsAmount decimal.Decimal `json:"deductions_amount"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	RunID            *string         `json:"run_id,omitempty"`
}

func (r PayrollRecord) ToResponse() PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		OfficeName:       r.OfficeName,
		PositionName:     r.PositionName,
		PeriodMonth:      r.PeriodMonth,
		PeriodYear:       r.PeriodYear,
		WorkingDays:      r.WorkingDays,
		PresentDays:      r.PresentDays,
		HalfDays:         r.HalfDays,
		LateDays:         r.LateDays,
		AbsentDays:       r.AbsentDays,
		ExcessLeaves:     r.ExcessLeaves,
		ApprovedLeaves:   r.ApprovedLeaves,
		MissingDays:      r.MissingDays,
		BaseSalary:       RoundMoney(r.BaseSalary),
		DeductionsAmount: RoundMoney(r.DeductionsAmount),
		NetSalary:        RoundMoney(r.NetSalary),
		RunID:            r.RunID,
	}
}

type PayrollSummaryResponse struct {
	PeriodMonth     int             `json:"period_month"`
	PeriodYear      int             `json:"period_year"`
	TotalEmployees  int             `json:"total_employees"`
	TotalBaseSalary decimal.Decimal `json:"total_base_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
}

// Filter dropdown entries for the report screen.
type FilterOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Event names published while a payroll run is in flight.
const (
	EventRunStarted   = "payroll.started"
	EventRunProgress  = "payroll.progress"
	EventRunCompleted = "payroll.completed"
	EventRunFailed    = "payroll.failed"
)

type RunEvent struct {
	RunID string `json:"run_id"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
	Error string `json:"error,omitempty"`
}
