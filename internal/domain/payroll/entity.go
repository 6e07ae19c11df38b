package payroll

import (
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/shopspring/decimal"
)

// Fixed attendance policy. These are not configurable per office.
const (
	// LateTolerance is the number of late arrivals in a period that stay full days.
	LateTolerance = 3
	// AbsenceTolerance is the number of unexcused absences charged at the normal rate.
	AbsenceTolerance = 2
	// ExcessMultiplier is applied to the per-day rate for absences beyond the tolerance.
	ExcessMultiplier = 2

	// MaxWorkedMinutes rejects punches spanning more than a day.
	MaxWorkedMinutes = 24 * 60
)

const (
	DefaultDutyHours     = 8
	DefaultReportingTime = "09:00:00"
)

// DayCode is the classification of one date.
type DayCode string

const (
	DayPresent       DayCode = "P"
	DayPresentLate   DayCode = "PL"
	DayHalfDay       DayCode = "HD"
	DayHalfDayLate   DayCode = "HDL"
	DayAbsent        DayCode = "A"
	DayApprovedLeave DayCode = "AL"
)

func (c DayCode) IsLate() bool {
	return c == DayPresentLate || c == DayHalfDayLate
}

func (c DayCode) IsHalfDay() bool {
	return c == DayHalfDay || c == DayHalfDayLate
}

// IsFullDay reports a present day that was not reduced to a half day.
func (c DayCode) IsFullDay() bool {
	return c == DayPresent || c == DayPresentLate
}

// DayStatus is one classified date.
type DayStatus struct {
	Date          civil.Date `json:"date"`
	Code          DayCode    `json:"code"`
	WorkedMinutes int        `json:"worked_minutes"`
	LateMinutes   int        `json:"late_minutes"`
}

// StreakMask marks how an absent or approved date is charged.
type StreakMask struct {
	Absent   int  `json:"absent"`
	Excess   int  `json:"excess"`
	Approved bool `json:"approved,omitempty"`
}

// ApprovedLeaveSet is the set of excused dates for one employee.
type ApprovedLeaveSet map[civil.Date]struct{}

func NewApprovedLeaveSet(dates ...civil.Date) ApprovedLeaveSet {
	set := make(ApprovedLeaveSet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

func (s ApprovedLeaveSet) Has(d civil.Date) bool {
	_, ok := s[d]
	return ok
}

// TimingConfig is the reporting time and duty length for an office/position pair.
type TimingConfig struct {
	DutyMinutes   int
	ReportingTime civil.TimeOfDay
}

func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		DutyMinutes:   DefaultDutyHours * 60,
		ReportingTime: civil.MustParseTimeOfDay(DefaultReportingTime),
	}
}

// NewTimingConfig falls back to the defaults for any missing, unparseable
// or non-positive value.
func NewTimingConfig(reportingTime string, dutyHours float64) TimingConfig {
	cfg := DefaultTimingConfig()
	if t, ok := civil.ParseTimeOfDay(reportingTime); ok {
		cfg.ReportingTime = t
	}
	if minutes := int(dutyHours*60 + 0.5); dutyHours > 0 && minutes > 0 {
		cfg.DutyMinutes = minutes
	}
	return cfg
}

func (c TimingConfig) DutyHours() float64 {
	return float64(c.DutyMinutes) / 60
}

// AttendanceMetrics aggregates one employee's classified period.
type AttendanceMetrics struct {
	PresentDays       int
	HalfDays          int
	LateDays          int
	RegularAbsentDays int
	ApprovedLeaveDays int
	ExcessLeaves      int
	MissingDays       int

	DayStatus   []DayStatus
	StreakMasks map[civil.Date]StreakMask
}

// Status returns the classification of d, if d was classified.
func (m AttendanceMetrics) Status(d civil.Date) (DayStatus, bool) {
	for _, s := range m.DayStatus {
		if s.Date == d {
			return s, true
		}
	}
	return DayStatus{}, false
}

// WorkingDays is the resolved working calendar of a month.
type WorkingDays struct {
	Count int
	Days  []civil.Date
}

// PayrollResult is the salary outcome of one employee's period.
type PayrollResult struct {
	BaseSalary   decimal.Decimal
	PerDaySalary decimal.Decimal

	AbsentDeduction        decimal.Decimal
	ApprovedLeaveDeduction decimal.Decimal
	MissingDeduction       decimal.Decimal
	ExcessDeduction        decimal.Decimal
	HalfDayDeduction       decimal.Decimal

	// GrossDeductions is the uncapped sum of the components.
	GrossDeductions decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// PayrollRecord is the saved snapshot of a generated payroll.
type PayrollRecord struct {
	ID               string
	EmployeeID       string
	PeriodMonth      int
	PeriodYear       int
	WorkingDays      int
	PresentDays      int
	HalfDays         int
	LateDays         int
	AbsentDays       int
	ExcessLeaves     int
	ApprovedLeaves   int
	MissingDays      int
	BaseSalary       decimal.Decimal
	DeductionsAmount decimal.Decimal
	NetSalary        decimal.Decimal
	RunID            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
	OfficeName   *string
	PositionName *string
}

// PayrollSummary totals a period's snapshots.
type PayrollSummary struct {
	PeriodMonth     int
	PeriodYear      int
	TotalEmployees  int
	TotalBaseSalary decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNetSalary  decimal.Decimal
}
