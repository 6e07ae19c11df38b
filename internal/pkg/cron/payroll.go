package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

// MonthRefresher regenerates the stored payroll snapshots of a month.
type MonthRefresher interface {
	RefreshMonth(ctx context.Context, year, month int) (int, error)
}

type PayrollJobs struct {
	refresher  MonthRefresher
	normalizer civil.Normalizer
	logger     *slog.Logger
	now        func() time.Time
}

func NewPayrollJobs(refresher MonthRefresher, normalizer civil.Normalizer, logger *slog.Logger) *PayrollJobs {
	if logger == nil {
		logger = slog.Default()
	}
	return &PayrollJobs{
		refresher:  refresher,
		normalizer: normalizer,
		logger:     logger,
		now:        time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("refresh_payroll_snapshots", interval, j.RefreshCurrentMonth)
}

// RefreshCurrentMonth keeps the running month's snapshots in step with
// attendance edits. On the first day of a month the previous month is
// refreshed too, so late corrections still land.
func (j *PayrollJobs) RefreshCurrentMonth(ctx context.Context) error {
	today := j.normalizer.NormalizeDate(j.now())

	periods := []civil.Date{today}
	if today.Day == 1 {
		periods = append(periods, today.AddDays(-1))
	}

	for _, p := range periods {
		n, err := j.refresher.RefreshMonth(ctx, p.Year, int(p.Month))
		if err != nil {
			return fmt.Errorf("failed to refresh payroll for %d-%02d: %w", p.Year, p.Month, err)
		}
		j.logger.Info("Cron: payroll snapshots refreshed", "year", p.Year, "month", int(p.Month), "employees", n)
	}
	return nil
}
