package attendance

import (
	"slices"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

// Record is one employee's punch pair for one calendar date. Punches are
// kept exactly as they were submitted; an empty or malformed punch is a
// valid record that classifies as absent.
type Record struct {
	ID         string
	EmployeeID string
	Date       civil.Date
	PunchIn    string
	PunchOut   string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Chronological is a date-ascending sequence of records. The only way to
// get one is Chronologically, so holders can rely on the ordering.
type Chronological struct {
	records []Record
}

// Chronologically returns a sorted copy of records. The sort is stable.
func Chronologically(records []Record) Chronological {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return a.Date.Compare(b.Date)
	})
	return Chronological{records: sorted}
}

func (c Chronological) Len() int {
	return len(c.records)
}

// At returns the i-th record in date order.
func (c Chronological) At(i int) Record {
	return c.records[i]
}

// Records returns a copy of the ordered records.
func (c Chronological) Records() []Record {
	return slices.Clone(c.records)
}

// Filter narrows List queries. Nil fields are not applied.
type Filter struct {
	EmployeeID *string
	From       *civil.Date
	To         *civil.Date
	Page       int
	Limit      int
}
