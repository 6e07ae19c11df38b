package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/holiday"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/calendar"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	calendar   calendar.Calendar
	normalizer civil.Normalizer
	logger     *slog.Logger
}

func NewHolidayService(
	holidayRepo holiday.HolidayRepository,
	cal calendar.Calendar,
	normalizer civil.Normalizer,
	logger *slog.Logger,
) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
		calendar:          cal,
		normalizer:        normalizer,
		logger:            logger,
	}
}

// Create implements holiday.HolidayService.
func (h *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	date, err := h.normalizer.ParseDate(req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := h.HolidayRepository.Create(ctx, holiday.Holiday{
		Name:   strings.TrimSpace(req.Name),
		Date:   date,
		Reason: req.Reason,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	h.logger.Info("holiday created", slog.String("date", date.String()), slog.String("name", created.Name))
	return created.ToResponse(), nil
}

// Update implements holiday.HolidayService.
func (h *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.Date != nil {
		date, err := h.normalizer.ParseDate(*req.Date)
		if err != nil {
			return holiday.HolidayResponse{}, err
		}
		normalized := date.String()
		req.Date = &normalized
	}

	if err := h.HolidayRepository.Update(ctx, req); err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated, err := h.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Delete implements holiday.HolidayService.
func (h *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return h.HolidayRepository.Delete(ctx, id)
}

// List implements holiday.HolidayService.
func (h *HolidayServiceImpl) List(ctx context.Context, query holiday.ListHolidayQuery) ([]holiday.HolidayResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var from, to *civil.Date
	if query.FromDate != "" {
		d, err := h.normalizer.ParseDate(query.FromDate)
		if err != nil {
			return nil, err
		}
		from = &d
	}
	if query.ToDate != "" {
		d, err := h.normalizer.ParseDate(query.ToDate)
		if err != nil {
			return nil, err
		}
		to = &d
	}

	holidays, err := h.HolidayRepository.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toResponses(holidays), nil
}

// ListByMonth implements holiday.HolidayService.
func (h *HolidayServiceImpl) ListByMonth(ctx context.Context, year, month int) ([]holiday.HolidayResponse, error) {
	if errs := validator.ValidatePeriod(year, month); len(errs) > 0 {
		return nil, errs
	}

	from, to := civil.MonthBounds(year, time.Month(month))
	holidays, err := h.HolidayRepository.List(ctx, &from, &to)
	if err != nil {
		return nil, err
	}
	return toResponses(holidays), nil
}

// Upcoming implements holiday.HolidayService.
func (h *HolidayServiceImpl) Upcoming(ctx context.Context, limit int) ([]holiday.HolidayResponse, error) {
	if limit <= 0 {
		limit = holiday.UpcomingLimit
	}

	holidays, err := h.HolidayRepository.Upcoming(ctx, h.normalizer.Today(), limit)
	if err != nil {
		return nil, err
	}
	return toResponses(holidays), nil
}

// WorkingDays implements holiday.HolidayService.
func (h *HolidayServiceImpl) WorkingDays(ctx context.Context, year, month int) (calendar.MonthInfo, error) {
	if errs := validator.ValidatePeriod(year, month); len(errs) > 0 {
		return calendar.MonthInfo{}, errs
	}

	info, err := h.calendar.GetMonthInfo(ctx, year, time.Month(month))
	if err != nil {
		return calendar.MonthInfo{}, fmt.Errorf("failed to resolve working days: %w", err)
	}
	return *info, nil
}

func toResponses(holidays []holiday.Holiday) []holiday.HolidayResponse {
	resp := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, h.ToResponse())
	}
	return resp
}
