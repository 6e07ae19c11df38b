package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	payroll.PayrollRepository
	normalizer civil.Normalizer
	logger     *slog.Logger
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	payrollRepo payroll.PayrollRepository,
	normalizer civil.Normalizer,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		PayrollRepository:    payrollRepo,
		normalizer:           normalizer,
		logger:               logger,
	}
}

func (a *AttendanceServiceImpl) toRecord(req attendance.UpsertAttendanceRequest) (attendance.Record, error) {
	date, err := a.normalizer.ParseDate(req.Date)
	if err != nil {
		return attendance.Record{}, err
	}
	return attendance.Record{
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		Date:       date,
		PunchIn:    strings.TrimSpace(req.PunchIn),
		PunchOut:   strings.TrimSpace(req.PunchOut),
	}, nil
}

// Upsert implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.toRecord(req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	saved, err := a.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return saved.ToResponse(), nil
}

// BulkUpsert implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BulkUpsert(ctx context.Context, req attendance.BulkUpsertAttendanceRequest) (attendance.BulkUpsertAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkUpsertAttendanceResponse{}, err
	}

	records := make([]attendance.Record, 0, len(req.Records))
	for i, r := range req.Records {
		record, err := a.toRecord(r)
		if err != nil {
			return attendance.BulkUpsertAttendanceResponse{}, fmt.Errorf("records[%d]: %w", i, err)
		}
		records = append(records, record)
	}

	start := time.Now()
	err := a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		for i, record := range records {
			if _, err := a.AttendanceRepository.Upsert(txCtx, record); err != nil {
				return fmt.Errorf("records[%d] (%s %s): %w", i, record.EmployeeID, record.Date, err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.BulkUpsertAttendanceResponse{}, err
	}

	a.logger.Info("attendance batch saved",
		slog.Int("records", len(records)),
		slog.Duration("took", time.Since(start)),
	)
	return attendance.BulkUpsertAttendanceResponse{Saved: len(records)}, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, query attendance.ListAttendanceQuery) (attendance.ListAttendanceResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 50
	}

	filter := attendance.Filter{Page: query.Page, Limit: query.Limit}
	if id := strings.TrimSpace(query.EmployeeID); id != "" {
		filter.EmployeeID = &id
	}
	if query.FromDate != "" {
		d, err := a.normalizer.ParseDate(query.FromDate)
		if err != nil {
			return attendance.ListAttendanceResponse{}, err
		}
		filter.From = &d
	}
	if query.ToDate != "" {
		d, err := a.normalizer.ParseDate(query.ToDate)
		if err != nil {
			return attendance.ListAttendanceResponse{}, err
		}
		filter.To = &d
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Records:    make([]attendance.AttendanceResponse, 0, len(records)),
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, r.ToResponse())
	}
	return resp, nil
}

// DeleteByMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteByMonth(ctx context.Context, req attendance.DeleteMonthRequest) (attendance.DeleteAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DeleteAttendanceResponse{}, err
	}
	from, to := civil.MonthBounds(req.Year, time.Month(req.Month))

	var resp attendance.DeleteAttendanceResponse
	err := a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		if resp.DeletedRecords, err = a.AttendanceRepository.DeleteByRange(txCtx, from, to); err != nil {
			return fmt.Errorf("failed to delete attendance: %w", err)
		}
		if resp.DeletedPayrolls, err = a.PayrollRepository.DeleteByPeriod(txCtx, req.Month, req.Year); err != nil {
			return fmt.Errorf("failed to delete payroll records: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.DeleteAttendanceResponse{}, err
	}

	a.logger.Info("attendance month deleted",
		slog.Int("year", req.Year),
		slog.Int("month", req.Month),
		slog.Int64("records", resp.DeletedRecords),
		slog.Int64("payrolls", resp.DeletedPayrolls),
	)
	return resp, nil
}

// DeleteByEmployeeMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteByEmployeeMonth(ctx context.Context, req attendance.DeleteEmployeeMonthRequest) (attendance.DeleteAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DeleteAttendanceResponse{}, err
	}
	from, to := civil.MonthBounds(req.Year, time.Month(req.Month))

	var resp attendance.DeleteAttendanceResponse
	err := a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		if resp.DeletedRecords, err = a.AttendanceRepository.DeleteByEmployeeRange(txCtx, req.EmployeeID, from, to); err != nil {
			return fmt.Errorf("failed to delete attendance: %w", err)
		}
		if resp.DeletedPayrolls, err = a.PayrollRepository.DeleteByEmployeePeriod(txCtx, req.EmployeeID, req.Month, req.Year); err != nil {
			return fmt.Errorf("failed to delete payroll record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.DeleteAttendanceResponse{}, err
	}
	return resp, nil
}
