package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

// HolidaySource supplies registered holidays, keyed by date with their names.
type HolidaySource interface {
	HolidayNames(ctx context.Context, from, to civil.Date) (map[civil.Date]string, error)
}

// HolidayCalendar excludes the weekly rest days and every registered holiday.
type HolidayCalendar struct {
	source HolidaySource
	rest   restDaySet
}

func NewHolidayCalendar(source HolidaySource, restDays []time.Weekday) *HolidayCalendar {
	return &HolidayCalendar{source: source, rest: newRestDaySet(restDays)}
}

func (c *HolidayCalendar) IsWorkday(ctx context.Context, date civil.Date) (bool, error) {
	if c.rest[date.Weekday()] {
		return false, nil
	}
	names, err := c.source.HolidayNames(ctx, date, date)
	if err != nil {
		return false, fmt.Errorf("failed to load holidays: %w", err)
	}
	_, holiday := names[date]
	return !holiday, nil
}

func (c *HolidayCalendar) GetMonthInfo(ctx context.Context, year int, month time.Month) (*MonthInfo, error) {
	from, to := civil.MonthBounds(year, month)
	names, err := c.source.HolidayNames(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays for %d-%02d: %w", year, month, err)
	}
	return buildMonth(year, month, c.rest, names), nil
}

// WeekendCalendar only knows the weekly rest days. It is the local fallback
// when holidays cannot be loaded.
type WeekendCalendar struct {
	rest restDaySet
}

func NewWeekendCalendar(restDays []time.Weekday) *WeekendCalendar {
	return &WeekendCalendar{rest: newRestDaySet(restDays)}
}

func (c *WeekendCalendar) IsWorkday(_ context.Context, date civil.Date) (bool, error) {
	return !c.rest[date.Weekday()], nil
}

func (c *WeekendCalendar) GetMonthInfo(_ context.Context, year int, month time.Month) (*MonthInfo, error) {
	return buildMonth(year, month, c.rest, nil), nil
}
