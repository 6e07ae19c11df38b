package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/timing"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/database"
)

type officePositionRepositoryImpl struct {
	db *database.DB
}

func NewOfficePositionRepository(db *database.DB) timing.OfficePositionRepository {
	return &officePositionRepositoryImpl{db: db}
}

const officePositionSelect = `
	SELECT op.office_id, op.position_id, op.reporting_time, op.duty_hours::float8,
	       op.created_at, op.updated_at, o.name, p.title
	FROM office_positions op
	JOIN offices o ON o.id = op.office_id
	JOIN positions p ON p.id = op.position_id`

// Upsert implements timing.OfficePositionRepository.
func (r *officePositionRepositoryImpl) Upsert(ctx context.Context, op timing.OfficePosition) (timing.OfficePosition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO office_positions (office_id, position_id, reporting_time, duty_hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (office_id, position_id) DO UPDATE
		SET reporting_time = EXCLUDED.reporting_time, duty_hours = EXCLUDED.duty_hours, updated_at = NOW()
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, op.OfficeID, op.PositionID, op.ReportingTime, op.DutyHours).
		Scan(&op.CreatedAt, &op.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "position_id") {
				return timing.OfficePosition{}, timing.ErrPositionNotFound
			}
			return timing.OfficePosition{}, timing.ErrOfficeNotFound
		}
		return timing.OfficePosition{}, fmt.Errorf("failed to upsert office position: %w", err)
	}
	return op, nil
}

// Get implements timing.OfficePositionRepository.
func (r *officePositionRepositoryImpl) Get(ctx context.Context, officeID, positionID string) (timing.OfficePosition, error) {
	q := GetQuerier(ctx, r.db)

	op, err := scanOfficePosition(q.QueryRow(ctx, officePositionSelect+" WHERE op.office_id = $1 AND op.position_id = $2", officeID, positionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timing.OfficePosition{}, timing.ErrTimingNotFound
		}
		return timing.OfficePosition{}, fmt.Errorf("failed to get office position: %w", err)
	}
	return op, nil
}

// List implements timing.OfficePositionRepository.
func (r *officePositionRepositoryImpl) List(ctx context.Context, officeID *string) ([]timing.OfficePosition, error) {
	q := GetQuerier(ctx, r.db)

	query := officePositionSelect
	args := []interface{}{}
	if officeID != nil {
		query += " WHERE op.office_id = $1"
		args = append(args, *officeID)
	}
	query += " ORDER BY o.name, p.title"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list office positions: %w", err)
	}
	defer rows.Close()

	var out []timing.OfficePosition
	for rows.Next() {
		op, err := scanOfficePosition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan office position: %w", err)
		}
		out = append(out, op)
	}
	return out, rows.Err()
}

// Delete implements timing.OfficePositionRepository.
func (r *officePositionRepositoryImpl) Delete(ctx context.Context, officeID, positionID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM office_positions WHERE office_id = $1 AND position_id = $2`, officeID, positionID)
	if err != nil {
		return fmt.Errorf("failed to delete office position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timing.ErrTimingNotFound
	}
	return nil
}

func scanOfficePosition(row pgx.Row) (timing.OfficePosition, error) {
	var op timing.OfficePosition
	err := row.Scan(&op.OfficeID, &op.PositionID, &op.ReportingTime, &op.DutyHours,
		&op.CreatedAt, &op.UpdatedAt, &op.OfficeName, &op.PositionTitle)
	return op, err
}
