package payroll

import (
	"testing"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func workingDays(n int) payroll.WorkingDays {
	days := make([]civil.Date, 0, n)
	for d := 1; d <= n; d++ {
		days = append(days, day(d))
	}
	return payroll.WorkingDays{Count: n, Days: days}
}

func TestCalculate_MixedDeductions(t *testing.T) {
	metrics := payroll.AttendanceMetrics{
		RegularAbsentDays: 2,
		ExcessLeaves:      1,
		ApprovedLeaveDays: 1,
		HalfDays:          1,
	}

	res := NewCalculator().Calculate(dec("3000"), metrics, workingDays(26))

	assert.Equal(t, "115.38", payroll.RoundMoney(res.PerDaySalary).String())
	assert.Equal(t, "230.77", payroll.RoundMoney(res.AbsentDeduction).String())
	assert.Equal(t, "230.77", payroll.RoundMoney(res.ExcessDeduction).String())
	assert.Equal(t, "115.38", payroll.RoundMoney(res.ApprovedLeaveDeduction).String())
	assert.Equal(t, "57.69", payroll.RoundMoney(res.HalfDayDeduction).String())
	assert.True(t, res.MissingDeduction.IsZero())
	assert.Equal(t, "634.62", payroll.RoundMoney(res.TotalDeductions).String())
	assert.Equal(t, "2365.38", payroll.RoundMoney(res.NetSalary).String())
	assert.True(t, res.BaseSalary.Equal(res.NetSalary.Add(res.TotalDeductions)))
}

func TestCalculate_ZeroWorkingDays(t *testing.T) {
	metrics := payroll.AttendanceMetrics{RegularAbsentDays: 2, ExcessLeaves: 9, HalfDays: 4, MissingDays: 3}

	res := NewCalculator().Calculate(dec("4200"), metrics, payroll.WorkingDays{})

	assert.True(t, res.PerDaySalary.IsZero())
	assert.True(t, res.TotalDeductions.IsZero())
	assert.True(t, res.NetSalary.Equal(dec("4200")))
}

func TestCalculate_MissingDays(t *testing.T) {
	metrics := payroll.AttendanceMetrics{MissingDays: 3}

	res := NewCalculator().Calculate(dec("2600"), metrics, workingDays(26))

	assert.True(t, res.MissingDeduction.Equal(dec("300")))
	assert.True(t, res.NetSalary.Equal(dec("2300")))
}

func TestCalculate_CapsAtBaseSalary(t *testing.T) {
	metrics := payroll.AttendanceMetrics{RegularAbsentDays: 2, ExcessLeaves: 20}

	res := NewCalculator().Calculate(dec("2200"), metrics, workingDays(22))

	assert.True(t, res.GrossDeductions.Equal(dec("4200")))
	assert.True(t, res.TotalDeductions.Equal(dec("2200")))
	assert.True(t, res.NetSalary.IsZero())
}

func TestCalculate_NeverNegative(t *testing.T) {
	calc := NewCalculator()
	for absent := 0; absent <= 2; absent++ {
		for excess := 0; excess <= 30; excess += 5 {
			for half := 0; half <= 30; half += 10 {
				metrics := payroll.AttendanceMetrics{RegularAbsentDays: absent, ExcessLeaves: excess, HalfDays: half, MissingDays: half / 2}
				res := calc.Calculate(dec("1000"), metrics, workingDays(26))

				assert.True(t, res.TotalDeductions.LessThanOrEqual(res.BaseSalary))
				assert.False(t, res.NetSalary.IsNegative())
			}
		}
	}
}

func TestCalculate_ExtraPresentDayNeverLowersNet(t *testing.T) {
	wd := workingDays(10)
	base := []attendance.Record{
		rec(1, "09:00", "17:00"),
		rec(2, "", ""),
		rec(3, "", ""),
		rec(4, "", ""),
		rec(5, "09:30", "12:00"),
	}
	withExtra := append(append([]attendance.Record{}, base...), rec(6, "09:00", "17:00"))

	price := func(records []attendance.Record) decimal.Decimal {
		m := WithMissingDays(classify(records), wd)
		return NewCalculator().Calculate(dec("5000"), m, wd).NetSalary
	}

	assert.True(t, price(withExtra).GreaterThanOrEqual(price(base)))
}

func TestCalculate_EndToEndWithClassifier(t *testing.T) {
	wd := workingDays(26)
	records := []attendance.Record{
		rec(1, "", ""),
		rec(2, "", ""),
		rec(3, "", ""),
		rec(4, "09:00", "12:00"),
	}
	for d := 5; d <= 25; d++ {
		records = append(records, rec(d, "09:00", "17:00"))
	}

	m := WithMissingDays(classify(records, day(26)), wd)
	res := NewCalculator().Calculate(dec("3000"), m, wd)

	assert.Equal(t, 2, m.RegularAbsentDays)
	assert.Equal(t, 1, m.ExcessLeaves)
	assert.Equal(t, 1, m.ApprovedLeaveDays)
	assert.Equal(t, 1, m.HalfDays)
	assert.Zero(t, m.MissingDays)
	assert.Equal(t, "634.62", payroll.RoundMoney(res.TotalDeductions).String())
	assert.Equal(t, "2365.38", payroll.RoundMoney(res.NetSalary).String())
}
