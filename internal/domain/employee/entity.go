package employee

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/shopspring/decimal"
)

type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

// IDPrefix and IDDigits shape generated employee codes such as EMP001.
const (
	IDPrefix = "EMP"
	IDDigits = 3
)

type Employee struct {
	ID            string // employee code, e.g. EMP001
	Name          string
	Email         string
	Phone         *string
	OfficeID      *string
	PositionID    *string
	MonthlySalary decimal.Decimal
	JoiningDate   *civil.Date
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	OfficeName   *string
	PositionName *string
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

// Filter narrows List. Nil fields match everything.
type Filter struct {
	OfficeID   *string
	PositionID *string
	Status     *Status
	Search     *string // name, email or ID, case-insensitive
	Page       int
	Limit      int

	// AttendedIn keeps only employees with an attendance record inside the range.
	AttendedIn *civil.Range
}

// Offset returns the row offset of the filter's page.
func (f Filter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// Summary aggregates the employee table.
type Summary struct {
	TotalEmployees     int
	ActiveEmployees    int
	TotalMonthlySalary decimal.Decimal
	ByOffice           []OfficeHeadcount
}

type OfficeHeadcount struct {
	OfficeID      *string
	OfficeName    string
	Employees     int
	MonthlySalary decimal.Decimal
}

// NextCode returns the code after the highest numeric suffix among codes
// carrying IDPrefix. Codes with other shapes are ignored.
func NextCode(existing []string) string {
	highest := 0
	for _, code := range existing {
		if !strings.HasPrefix(code, IDPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(code, IDPrefix))
		if err != nil || n < 0 {
			continue
		}
		highest = max(highest, n)
	}
	return fmt.Sprintf("%s%0*d", IDPrefix, IDDigits, highest+1)
}
