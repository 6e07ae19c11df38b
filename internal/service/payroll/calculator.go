package payroll

import (
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculator prices classified attendance against a monthly salary.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate derives every deduction from the per-day rate, caps the total at
// the base salary and returns the unrounded result. wd.Count sets the rate;
// metrics.MissingDays must already be filled in by the caller.
func (c *Calculator) Calculate(monthlySalary decimal.Decimal, metrics payroll.AttendanceMetrics, wd payroll.WorkingDays) payroll.PayrollResult {
	perDay := decimal.Zero
	if wd.Count > 0 {
		perDay = monthlySalary.Div(decimal.NewFromInt(int64(wd.Count)))
	}

	days := func(n int) decimal.Decimal {
		return perDay.Mul(decimal.NewFromInt(int64(n)))
	}

	res := payroll.PayrollResult{
		BaseSalary:             monthlySalary,
		PerDaySalary:           perDay,
		AbsentDeduction:        days(metrics.RegularAbsentDays),
		ApprovedLeaveDeduction: days(metrics.ApprovedLeaveDays),
		MissingDeduction:       days(metrics.MissingDays),
		ExcessDeduction:        days(metrics.ExcessLeaves * payroll.ExcessMultiplier),
		HalfDayDeduction:       days(metrics.HalfDays).Div(decimal.NewFromInt(2)),
	}

	res.GrossDeductions = decimal.Sum(
		res.AbsentDeduction,
		res.ApprovedLeaveDeduction,
		res.MissingDeduction,
		res.ExcessDeduction,
		res.HalfDayDeduction,
	)
	res.TotalDeductions = decimal.Min(res.GrossDeductions, monthlySalary)
	res.NetSalary = monthlySalary.Sub(res.TotalDeductions)

	return res
}
