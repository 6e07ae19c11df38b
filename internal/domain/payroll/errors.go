package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrInvalidDateRange      = errors.New("to_date must not be before from_date")
	ErrRangeSpansMonths      = errors.New("date range must stay within one month")
)
