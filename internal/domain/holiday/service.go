package holiday

import (
	"context"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/calendar"
)

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query ListHolidayQuery) ([]HolidayResponse, error)
	ListByMonth(ctx context.Context, year, month int) ([]HolidayResponse, error)
	Upcoming(ctx context.Context, limit int) ([]HolidayResponse, error)

	// WorkingDays resolves a month through the calendar provider.
	WorkingDays(ctx context.Context, year, month int) (calendar.MonthInfo, error)
}
