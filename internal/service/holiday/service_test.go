package holiday

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/holiday"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/calendar"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memHolidayRepo struct {
	rows map[string]holiday.Holiday
}

func (m *memHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	for _, existing := range m.rows {
		if existing.Date == h.Date {
			return holiday.Holiday{}, holiday.ErrHolidayDateExists
		}
	}
	h.ID = h.Date.String()
	m.rows[h.ID] = h
	return h, nil
}

func (m *memHolidayRepo) GetByID(_ context.Context, id string) (holiday.Holiday, error) {
	h, ok := m.rows[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, nil
}

func (m *memHolidayRepo) List(_ context.Context, from, to *civil.Date) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range m.rows {
		if from != nil && h.Date.Before(*from) || to != nil && h.Date.After(*to) {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *memHolidayRepo) Upcoming(ctx context.Context, from civil.Date, limit int) ([]holiday.Holiday, error) {
	out, _ := m.List(ctx, &from, nil)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memHolidayRepo) Update(_ context.Context, req holiday.UpdateHolidayRequest) error {
	h, ok := m.rows[req.ID]
	if !ok {
		return holiday.ErrHolidayNotFound
	}
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Date != nil {
		d, err := civil.ParseDate(*req.Date)
		if err != nil {
			return err
		}
		h.Date = d
	}
	m.rows[req.ID] = h
	return nil
}

func (m *memHolidayRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memHolidayRepo) HolidayNames(ctx context.Context, from, to civil.Date) (map[civil.Date]string, error) {
	list, _ := m.List(ctx, &from, &to)
	names := make(map[civil.Date]string, len(list))
	for _, h := range list {
		names[h.Date] = h.Name
	}
	return names, nil
}

func newTestService() (holiday.HolidayService, *memHolidayRepo) {
	repo := &memHolidayRepo{rows: make(map[string]holiday.Holiday)}
	cal := calendar.NewHolidayCalendar(repo, []time.Weekday{time.Sunday})
	svc := NewHolidayService(repo, cal, civil.NormalizerIn(time.UTC), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, repo
}

func TestCreate_RejectsDuplicateDate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, holiday.CreateHolidayRequest{Name: " Holi ", Date: "2024-03-25"})
	require.NoError(t, err)
	assert.Equal(t, "Holi", resp.Name)

	_, err = svc.Create(ctx, holiday.CreateHolidayRequest{Name: "Again", Date: "2024-03-25T10:00:00Z"})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)

	_, err = svc.Create(ctx, holiday.CreateHolidayRequest{Date: "soon"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdate_NormalizesDate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, holiday.CreateHolidayRequest{Name: "Holi", Date: "2024-03-25"})
	require.NoError(t, err)

	moved := "2024-03-26T00:00:00Z"
	resp, err := svc.Update(ctx, holiday.UpdateHolidayRequest{ID: created.ID, Date: &moved})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-26", resp.Date)

	_, err = svc.Update(ctx, holiday.UpdateHolidayRequest{ID: "missing", Date: &moved})
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestListByMonth(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	for _, d := range []string{"2024-02-29", "2024-03-08", "2024-03-25"} {
		_, err := svc.Create(ctx, holiday.CreateHolidayRequest{Name: "h" + d, Date: d})
		require.NoError(t, err)
	}

	march, err := svc.ListByMonth(ctx, 2024, 3)
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, "2024-03-08", march[0].Date)

	_, err = svc.ListByMonth(ctx, 2024, 0)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestWorkingDays_ExcludesSundaysAndHolidays(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	// 2024-03-25 is a Monday; 2024-03-31 a Sunday.
	for _, d := range []string{"2024-03-25", "2024-03-31"} {
		_, err := svc.Create(ctx, holiday.CreateHolidayRequest{Name: "h", Date: d})
		require.NoError(t, err)
	}

	info, err := svc.WorkingDays(ctx, 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 31, info.TotalDays)
	assert.Equal(t, 5, info.RestDays)
	assert.Equal(t, 25, info.WorkDays)
	assert.Len(t, info.WorkingDates(), 25)
	assert.NotContains(t, info.WorkingDates(), civil.NewDate(2024, time.March, 25))
}
