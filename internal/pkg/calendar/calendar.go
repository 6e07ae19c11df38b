// Package calendar resolves which dates of a month are working days.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeRestDay
	DayTypeHoliday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeRestDay:
		return "rest_day"
	case DayTypeHoliday:
		return "holiday"
	}
	return "unknown"
}

func (t DayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      civil.Date `json:"date"`
	Type      DayType    `json:"type"`
	IsWorkday bool       `json:"is_workday"`
	Note      string     `json:"note,omitempty"`
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year      int        `json:"year"`
	Month     time.Month `json:"month"`
	TotalDays int        `json:"total_days"`
	WorkDays  int        `json:"working_days"`
	RestDays  int        `json:"rest_days"`
	Holidays  int        `json:"holidays"`
	Days      []DayInfo  `json:"days"`
}

// WorkingDates returns the working days of the month in order.
func (m *MonthInfo) WorkingDates() []civil.Date {
	dates := make([]civil.Date, 0, m.WorkDays)
	for _, d := range m.Days {
		if d.IsWorkday {
			dates = append(dates, d.Date)
		}
	}
	return dates
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(ctx context.Context, date civil.Date) (bool, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(ctx context.Context, year int, month time.Month) (*MonthInfo, error)
}

// ParseRestDays reads a comma separated list of weekday names, e.g. "friday,saturday".
func ParseRestDays(s string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		found := false
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			full := strings.ToLower(wd.String())
			if name == full || name == full[:3] {
				days = append(days, wd)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
	}
	if len(days) == 0 {
		return []time.Weekday{time.Sunday}, nil
	}
	return days, nil
}

type restDaySet map[time.Weekday]bool

func newRestDaySet(days []time.Weekday) restDaySet {
	set := make(restDaySet, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

// buildMonth classifies every date of the month given the holiday names.
func buildMonth(year int, month time.Month, rest restDaySet, holidays map[civil.Date]string) *MonthInfo {
	info := &MonthInfo{
		Year:      year,
		Month:     month,
		TotalDays: civil.DaysIn(year, month),
	}

	for _, d := range civil.MonthDates(year, month) {
		day := DayInfo{Date: d, Type: DayTypeWorkday, IsWorkday: true}
		if rest[d.Weekday()] {
			day.Type = DayTypeRestDay
			day.IsWorkday = false
			info.RestDays++
		} else if name, ok := holidays[d]; ok {
			// A holiday on a rest day is only counted as a rest day.
			day.Type = DayTypeHoliday
			day.IsWorkday = false
			day.Note = name
			info.Holidays++
		} else {
			info.WorkDays++
		}
		info.Days = append(info.Days, day)
	}

	return info
}
