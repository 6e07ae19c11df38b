package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/holiday"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO holidays (name, date, reason) VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, h.Name, h.Date.Time(), h.Reason).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.Holiday{}, mapHolidayWriteError(err)
	}
	return h, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `
		SELECT id, name, date, reason, created_at, updated_at FROM holidays WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, from, to *civil.Date) ([]holiday.Holiday, error) {
	query := `SELECT id, name, date, reason, created_at, updated_at FROM holidays WHERE 1=1`
	args := []interface{}{}
	if from != nil {
		args = append(args, from.Time())
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, to.Time())
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date"

	return r.query(ctx, query, args...)
}

// Upcoming implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Upcoming(ctx context.Context, from civil.Date, limit int) ([]holiday.Holiday, error) {
	return r.query(ctx, `
		SELECT id, name, date, reason, created_at, updated_at FROM holidays
		WHERE date >= $1 ORDER BY date LIMIT $2
	`, from.Time(), limit)
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}

	if req.Name != nil {
		args = append(args, *req.Name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.Date != nil {
		d, err := civil.ParseDate(*req.Date)
		if err != nil {
			return err
		}
		args = append(args, d.Time())
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", len(args)))
	}
	if req.Reason != nil {
		args = append(args, nullIfEmpty(*req.Reason))
		setClauses = append(setClauses, fmt.Sprintf("reason = $%d", len(args)))
	}
	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf("UPDATE holidays SET %s WHERE id = $%d", strings.Join(setClauses, ", "), len(args))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapHolidayWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// HolidayNames implements calendar.HolidaySource.
func (r *holidayRepositoryImpl) HolidayNames(ctx context.Context, from, to civil.Date) (map[civil.Date]string, error) {
	holidays, err := r.List(ctx, &from, &to)
	if err != nil {
		return nil, err
	}
	names := make(map[civil.Date]string, len(holidays))
	for _, h := range holidays {
		names[h.Date] = h.Name
	}
	return names, nil
}

func (r *holidayRepositoryImpl) query(ctx context.Context, query string, args ...interface{}) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var out []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	var date time.Time
	if err := row.Scan(&h.ID, &h.Name, &date, &h.Reason, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return holiday.Holiday{}, err
	}
	h.Date = civil.DateOf(date)
	return h, nil
}

func mapHolidayWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return holiday.ErrHolidayDateExists
	}
	return fmt.Errorf("failed to write holiday: %w", err)
}
