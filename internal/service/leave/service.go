package leave

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/employee"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/leave"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

type ApprovedLeaveServiceImpl struct {
	leave.ApprovedLeaveRepository
	employeeRepo employee.EmployeeRepository
	normalizer   civil.Normalizer
	logger       *slog.Logger
}

func NewApprovedLeaveService(
	leaveRepo leave.ApprovedLeaveRepository,
	employeeRepo employee.EmployeeRepository,
	normalizer civil.Normalizer,
	logger *slog.Logger,
) leave.ApprovedLeaveService {
	return &ApprovedLeaveServiceImpl{
		ApprovedLeaveRepository: leaveRepo,
		employeeRepo:            employeeRepo,
		normalizer:              normalizer,
		logger:                  logger,
	}
}

func (l *ApprovedLeaveServiceImpl) ensureEmployee(ctx context.Context, id string) error {
	if _, err := l.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

// Add implements leave.ApprovedLeaveService.
func (l *ApprovedLeaveServiceImpl) Add(ctx context.Context, req leave.AddApprovedLeaveRequest) (leave.ApprovedLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApprovedLeaveResponse{}, err
	}
	employeeID := strings.TrimSpace(req.EmployeeID)
	if err := l.ensureEmployee(ctx, employeeID); err != nil {
		return leave.ApprovedLeaveResponse{}, err
	}

	date, err := l.normalizer.ParseDate(req.Date)
	if err != nil {
		return leave.ApprovedLeaveResponse{}, err
	}

	saved, err := l.ApprovedLeaveRepository.Upsert(ctx, leave.ApprovedLeave{
		EmployeeID: employeeID,
		Date:       date,
		ApprovedBy: req.ApprovedBy,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.ApprovedLeaveResponse{}, err
	}

	l.logger.Info("approved leave added", slog.String("employee_id", employeeID), slog.String("date", date.String()))
	return saved.ToResponse(), nil
}

// Remove implements leave.ApprovedLeaveService.
func (l *ApprovedLeaveServiceImpl) Remove(ctx context.Context, req leave.RemoveApprovedLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	date, err := l.normalizer.ParseDate(req.Date)
	if err != nil {
		return err
	}
	return l.ApprovedLeaveRepository.Delete(ctx, strings.TrimSpace(req.EmployeeID), date)
}

// List implements leave.ApprovedLeaveService.
func (l *ApprovedLeaveServiceImpl) List(ctx context.Context, req leave.ListApprovedLeaveRequest) ([]leave.ApprovedLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := l.ensureEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	from, to := civil.MonthBounds(req.Year, time.Month(req.Month))
	leaves, err := l.ApprovedLeaveRepository.ListByEmployee(ctx, req.EmployeeID, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]leave.ApprovedLeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		resp = append(resp, lv.ToResponse())
	}
	return resp, nil
}

// DatesBetween implements leave.ApprovedLeaveService.
func (l *ApprovedLeaveServiceImpl) DatesBetween(ctx context.Context, employeeID string, from, to civil.Date) ([]civil.Date, error) {
	byEmployee, err := l.ApprovedLeaveRepository.DatesByEmployees(ctx, []string{employeeID}, from, to)
	if err != nil {
		return nil, err
	}
	return byEmployee[employeeID], nil
}
