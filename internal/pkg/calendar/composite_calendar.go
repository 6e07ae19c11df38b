package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: HolidayCalendar (database)
// Fallback: WeekendCalendar (rest days only)
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *slog.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *slog.Logger) *CompositeCalendar {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// IsWorkday checks if the given date is a working day
func (cc *CompositeCalendar) IsWorkday(ctx context.Context, date civil.Date) (bool, error) {
	isWorkday, err := cc.primary.IsWorkday(ctx, date)
	if err == nil {
		return isWorkday, nil
	}

	cc.logger.Warn("Primary calendar failed, falling back to rest days only",
		slog.String("date", date.String()),
		slog.Any("error", err))

	return cc.fallback.IsWorkday(ctx, date)
}

// GetMonthInfo returns calendar info for the entire month
func (cc *CompositeCalendar) GetMonthInfo(ctx context.Context, year int, month time.Month) (*MonthInfo, error) {
	monthInfo, err := cc.primary.GetMonthInfo(ctx, year, month)
	if err == nil {
		return monthInfo, nil
	}

	cc.logger.Warn("Primary calendar failed, falling back to rest days only",
		slog.Int("year", year),
		slog.Int("month", int(month)),
		slog.Any("error", err))

	return cc.fallback.GetMonthInfo(ctx, year, month)
}
