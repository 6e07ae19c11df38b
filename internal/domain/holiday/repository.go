package holiday

import (
	"context"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	List(ctx context.Context, from, to *civil.Date) ([]Holiday, error)
	Upcoming(ctx context.Context, from civil.Date, limit int) ([]Holiday, error)
	Update(ctx context.Context, req UpdateHolidayRequest) error
	Delete(ctx context.Context, id string) error

	// HolidayNames backs the working-day calendar.
	HolidayNames(ctx context.Context, from, to civil.Date) (map[civil.Date]string, error)
}
