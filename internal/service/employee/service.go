package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/employee"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

// generatedIDAttempts bounds retries when a concurrent create takes the generated code.
const generatedIDAttempts = 3

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, logger *slog.Logger) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		ID:            strings.TrimSpace(req.ID),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         emptyToNil(req.Phone),
		OfficeID:      emptyToNil(req.OfficeID),
		PositionID:    emptyToNil(req.PositionID),
		MonthlySalary: req.MonthlySalary,
		Status:        employee.StatusActive,
	}
	if req.Status != nil {
		newEmployee.Status = employee.Status(*req.Status)
	}
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		d, err := civil.ParseDate(*req.JoiningDate)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		newEmployee.JoiningDate = &d
	}

	if newEmployee.ID != "" {
		if _, err := s.employeeRepo.Create(ctx, newEmployee); err != nil {
			return employee.EmployeeResponse{}, err
		}
		return s.GetByID(ctx, newEmployee.ID)
	}

	for attempt := 1; ; attempt++ {
		next, err := s.nextID(ctx)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		newEmployee.ID = next

		_, err = s.employeeRepo.Create(ctx, newEmployee)
		if err == nil {
			break
		}
		if !errors.Is(err, employee.ErrEmployeeIDExists) || attempt == generatedIDAttempts {
			return employee.EmployeeResponse{}, err
		}
		s.logger.Warn("generated employee id already taken, retrying", slog.String("employee_id", next), slog.Int("attempt", attempt))
	}

	s.logger.Info("employee created", slog.String("employee_id", newEmployee.ID))
	return s.GetByID(ctx, newEmployee.ID)
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return e.ToResponse(), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, query employee.ListEmployeeQuery) (employee.ListEmployeeResponse, error) {
	if err := query.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	filter := employee.Filter{
		OfficeID:   emptyToNil(&query.OfficeID),
		PositionID: emptyToNil(&query.PositionID),
		Search:     emptyToNil(&query.Search),
		Page:       query.Page,
		Limit:      query.Limit,
	}
	if query.Status != "" {
		n, err := strconv.Atoi(query.Status)
		if err != nil {
			return employee.ListEmployeeResponse{}, fmt.Errorf("invalid status filter: %w", err)
		}
		status := employee.Status(n)
		filter.Status = &status
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, e.ToResponse())
	}
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &email
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	if req.IsEmpty() {
		return s.GetByID(ctx, req.ID)
	}
	if err := s.employeeRepo.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.GetByID(ctx, req.ID)
}

// Delete implements employee.EmployeeService. Attendance, approved leave
// and payroll snapshots go with the employee.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("employee deleted", slog.String("employee_id", id))
	return nil
}

// NextID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) NextID(ctx context.Context) (employee.NextIDResponse, error) {
	next, err := s.nextID(ctx)
	if err != nil {
		return employee.NextIDResponse{}, err
	}
	return employee.NextIDResponse{NextID: next}, nil
}

func (s *EmployeeServiceImpl) nextID(ctx context.Context) (string, error) {
	ids, err := s.employeeRepo.ListIDs(ctx, employee.IDPrefix)
	if err != nil {
		return "", fmt.Errorf("failed to list employee ids: %w", err)
	}
	return employee.NextCode(ids), nil
}

// Summary implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Summary(ctx context.Context) (employee.SummaryResponse, error) {
	summary, err := s.employeeRepo.Summary(ctx)
	if err != nil {
		return employee.SummaryResponse{}, err
	}

	resp := employee.SummaryResponse{
		TotalEmployees:     summary.TotalEmployees,
		ActiveEmployees:    summary.ActiveEmployees,
		TotalMonthlySalary: summary.TotalMonthlySalary.Round(2),
		ByOffice:           make([]employee.OfficeHeadcountResponse, 0, len(summary.ByOffice)),
	}
	for _, o := range summary.ByOffice {
		resp.ByOffice = append(resp.ByOffice, employee.OfficeHeadcountResponse{
			OfficeID:      o.OfficeID,
			OfficeName:    o.OfficeName,
			Employees:     o.Employees,
			MonthlySalary: o.MonthlySalary.Round(2),
		})
	}
	return resp, nil
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
