package master

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/office"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/position"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/timing"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
)

type MasterService interface {
	// Office operations
	CreateOffice(ctx context.Context, req office.CreateOfficeRequest) (office.OfficeResponse, error)
	GetOffice(ctx context.Context, id string) (office.OfficeResponse, error)
	ListOffices(ctx context.Context) ([]office.OfficeResponse, error)
	UpdateOffice(ctx context.Context, req office.UpdateOfficeRequest) error
	DeleteOffice(ctx context.Context, id string) error

	// Position operations
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetPosition(ctx context.Context, id string) (position.PositionResponse, error)
	ListPositions(ctx context.Context) ([]position.PositionResponse, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error
	DeletePosition(ctx context.Context, id string) error

	// Office/position timing operations
	UpsertOfficePosition(ctx context.Context, req timing.UpsertOfficePositionRequest) (timing.OfficePositionResponse, error)
	ListOfficePositions(ctx context.Context, officeID *string) ([]timing.OfficePositionResponse, error)
	DeleteOfficePosition(ctx context.Context, officeID, positionID string) error
	GetTimingConfig(ctx context.Context, officeID, positionID *string) (timing.TimingResponse, error)
}

type masterServiceImpl struct {
	officeRepo         office.OfficeRepository
	positionRepo       position.PositionRepository
	officePositionRepo timing.OfficePositionRepository
}

func NewMasterService(
	officeRepo office.OfficeRepository,
	positionRepo position.PositionRepository,
	officePositionRepo timing.OfficePositionRepository,
) MasterService {
	return &masterServiceImpl{
		officeRepo:         officeRepo,
		positionRepo:       positionRepo,
		officePositionRepo: officePositionRepo,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ==================== OFFICE OPERATIONS ====================

func (s *masterServiceImpl) CreateOffice(ctx context.Context, req office.CreateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	created, err := s.officeRepo.Create(ctx, office.Office{
		Name:     strings.TrimSpace(req.Name),
		Location: req.Location,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return office.OfficeResponse{}, office.ErrOfficeNameExists
		}
		return office.OfficeResponse{}, fmt.Errorf("failed to create office: %w", err)
	}

	return created.ToResponse(), nil
}

func (s *masterServiceImpl) GetOffice(ctx context.Context, id string) (office.OfficeResponse, error) {
	entity, err := s.officeRepo.GetByID(ctx, id)
	if err != nil {
		return office.OfficeResponse{}, err
	}
	return entity.ToResponse(), nil
}

func (s *masterServiceImpl) ListOffices(ctx context.Context) ([]office.OfficeResponse, error) {
	entities, err := s.officeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]office.OfficeResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, e.ToResponse())
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateOffice(ctx context.Context, req office.UpdateOfficeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	if err := s.officeRepo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return office.ErrOfficeNameExists
		}
		return err
	}
	return nil
}

// DeleteOffice unassigns the office's employees and drops its timings.
func (s *masterServiceImpl) DeleteOffice(ctx context.Context, id string) error {
	return s.officeRepo.Delete(ctx, id)
}

// ==================== POSITION OPERATIONS ====================

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.positionRepo.Create(ctx, position.Position{Title: strings.TrimSpace(req.Title)})
	if err != nil {
		if isUniqueViolation(err) {
			return position.PositionResponse{}, position.ErrPositionTitleExists
		}
		return position.PositionResponse{}, fmt.Errorf("failed to create position: %w", err)
	}

	return created.ToResponse(), nil
}

func (s *masterServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	entity, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return entity.ToResponse(), nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	entities, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, e.ToResponse())
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	req.Title = strings.TrimSpace(req.Title)

	if err := s.positionRepo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return position.ErrPositionTitleExists
		}
		return err
	}
	return nil
}

func (s *masterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	return s.positionRepo.Delete(ctx, id)
}

// ==================== TIMING OPERATIONS ====================

func (s *masterServiceImpl) UpsertOfficePosition(ctx context.Context, req timing.UpsertOfficePositionRequest) (timing.OfficePositionResponse, error) {
	if err := req.Validate(); err != nil {
		return timing.OfficePositionResponse{}, err
	}

	if _, err := s.officePositionRepo.Upsert(ctx, timing.OfficePosition{
		OfficeID:      req.OfficeID,
		PositionID:    req.PositionID,
		ReportingTime: req.NormalizedReportingTime(),
		DutyHours:     req.DutyHours,
	}); err != nil {
		return timing.OfficePositionResponse{}, err
	}

	// Re-read for the joined names.
	saved, err := s.officePositionRepo.Get(ctx, req.OfficeID, req.PositionID)
	if err != nil {
		return timing.OfficePositionResponse{}, err
	}
	return saved.ToResponse(), nil
}

func (s *masterServiceImpl) ListOfficePositions(ctx context.Context, officeID *string) ([]timing.OfficePositionResponse, error) {
	entities, err := s.officePositionRepo.List(ctx, officeID)
	if err != nil {
		return nil, err
	}

	responses := make([]timing.OfficePositionResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, e.ToResponse())
	}
	return responses, nil
}

func (s *masterServiceImpl) DeleteOfficePosition(ctx context.Context, officeID, positionID string) error {
	return s.officePositionRepo.Delete(ctx, officeID, positionID)
}

func (s *masterServiceImpl) GetTimingConfig(ctx context.Context, officeID, positionID *string) (timing.TimingResponse, error) {
	cfg, isDefault, err := ResolveTiming(ctx, s.officePositionRepo, officeID, positionID)
	if err != nil {
		return timing.TimingResponse{}, err
	}
	return timing.TimingResponse{
		ReportingTime: cfg.ReportingTime.String(),
		DutyHours:     cfg.DutyHours(),
		IsDefault:     isDefault,
	}, nil
}

// ResolveTiming returns the timing for an employee's office and position.
// isDefault is true when either ID is missing or no row exists for the pair.
func ResolveTiming(ctx context.Context, repo timing.OfficePositionRepository, officeID, positionID *string) (cfg payroll.TimingConfig, isDefault bool, err error) {
	if officeID == nil || positionID == nil || *officeID == "" || *positionID == "" {
		return payroll.DefaultTimingConfig(), true, nil
	}

	op, err := repo.Get(ctx, *officeID, *positionID)
	if err != nil {
		if errors.Is(err, timing.ErrTimingNotFound) {
			return payroll.DefaultTimingConfig(), true, nil
		}
		return payroll.TimingConfig{}, false, err
	}
	return op.Config(), false, nil
}
