package payroll

import "context"

type PayrollService interface {
	// GenerateReport classifies and prices one page of employees over a date range.
	GenerateReport(ctx context.Context, req PayrollReportRequest) (PayrollReportResponse, error)

	// GeneratePayroll computes and stores snapshots for every matching employee of a month.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (PayrollReportResponse, error)

	GetEmployeeDetails(ctx context.Context, req EmployeeDetailsRequest) (EmployeePayrollDetailsResponse, error)
	GetPendingAttendanceDays(ctx context.Context, req PendingDaysRequest) (PendingDaysResponse, error)
	GetAttendanceDaysInMonth(ctx context.Context, req PeriodRequest) (AttendanceDaysResponse, error)

	ListRecords(ctx context.Context, req PeriodRequest) ([]PayrollRecordResponse, error)
	GetSummary(ctx context.Context, req PeriodRequest) (PayrollSummaryResponse, error)

	// RefreshMonth regenerates every active employee's snapshot for the month.
	RefreshMonth(ctx context.Context, year, month int) (int, error)
}
