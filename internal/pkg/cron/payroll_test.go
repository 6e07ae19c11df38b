package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refreshCall struct{ year, month int }

type fakeRefresher struct {
	calls []refreshCall
	err   error
}

func (f *fakeRefresher) RefreshMonth(_ context.Context, year, month int) (int, error) {
	f.calls = append(f.calls, refreshCall{year, month})
	return 7, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRefreshCurrentMonth_MidMonth(t *testing.T) {
	r := &fakeRefresher{}
	jobs := NewPayrollJobs(r, civil.NormalizerIn(time.UTC), testLogger())
	jobs.now = func() time.Time { return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC) }

	require.NoError(t, jobs.RefreshCurrentMonth(context.Background()))
	assert.Equal(t, []refreshCall{{2024, 3}}, r.calls)
}

func TestRefreshCurrentMonth_FirstDayAlsoRefreshesPreviousMonth(t *testing.T) {
	r := &fakeRefresher{}
	jobs := NewPayrollJobs(r, civil.NormalizerIn(time.UTC), testLogger())
	jobs.now = func() time.Time { return time.Date(2024, time.January, 1, 2, 0, 0, 0, time.UTC) }

	require.NoError(t, jobs.RefreshCurrentMonth(context.Background()))
	assert.Equal(t, []refreshCall{{2024, 1}, {2023, 12}}, r.calls)
}

func TestRefreshCurrentMonth_PropagatesError(t *testing.T) {
	r := &fakeRefresher{err: errors.New("db down")}
	jobs := NewPayrollJobs(r, civil.NormalizerIn(time.UTC), testLogger())

	err := jobs.RefreshCurrentMonth(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler(testLogger())
	ran := 0
	s.AddJob("count", time.Hour, func(context.Context) error { ran++; return nil })
	s.AddJob("fail", time.Hour, func(context.Context) error { return errors.New("boom") })

	s.RunOnce(context.Background())

	assert.Equal(t, 1, ran)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(testLogger())
	done := make(chan struct{}, 1)
	s.AddJob("signal", time.Hour, func(context.Context) error {
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}
