package calendar

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

type fakeHolidays struct {
	names map[civil.Date]string
	err   error
	calls int
}

func (f *fakeHolidays) HolidayNames(_ context.Context, from, to civil.Date) (map[civil.Date]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[civil.Date]string)
	for d, n := range f.names {
		if !d.Before(from) && !d.After(to) {
			out[d] = n
		}
	}
	return out, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseRestDays(t *testing.T) {
	tests := []struct {
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"sunday", []time.Weekday{time.Sunday}, false},
		{"Friday, sat", []time.Weekday{time.Friday, time.Saturday}, false},
		{"", []time.Weekday{time.Sunday}, false},
		{"funday", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRestDays(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHolidayCalendar_MonthInfo(t *testing.T) {
	// March 2024 has five Sundays (3, 10, 17, 24, 31).
	src := &fakeHolidays{names: map[civil.Date]string{
		civil.NewDate(2024, time.March, 11): "Founders Day",
		civil.NewDate(2024, time.March, 17): "On a Sunday",
		civil.NewDate(2024, time.April, 1):  "Next month",
	}}
	cal := NewHolidayCalendar(src, []time.Weekday{time.Sunday})

	info, err := cal.GetMonthInfo(context.Background(), 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, 31, info.TotalDays)
	assert.Equal(t, 5, info.RestDays)
	assert.Equal(t, 1, info.Holidays)
	assert.Equal(t, 25, info.WorkDays)
	assert.Len(t, info.WorkingDates(), 25)
	assert.NotContains(t, info.WorkingDates(), civil.NewDate(2024, time.March, 11))
	assert.Equal(t, "Founders Day", info.Days[10].Note)
	assert.Equal(t, DayTypeHoliday, info.Days[10].Type)
}

func TestHolidayCalendar_IsWorkday(t *testing.T) {
	src := &fakeHolidays{names: map[civil.Date]string{civil.NewDate(2024, time.March, 11): "Founders Day"}}
	cal := NewHolidayCalendar(src, []time.Weekday{time.Friday, time.Saturday})
	ctx := context.Background()

	ok, err := cal.IsWorkday(ctx, civil.NewDate(2024, time.March, 11))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = cal.IsWorkday(ctx, civil.NewDate(2024, time.March, 15)) // Friday
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = cal.IsWorkday(ctx, civil.NewDate(2024, time.March, 17)) // Sunday
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompositeCalendar_FallsBackToRestDays(t *testing.T) {
	src := &fakeHolidays{err: errors.New("connection refused")}
	cal := NewCompositeCalendar(
		NewHolidayCalendar(src, []time.Weekday{time.Sunday}),
		NewWeekendCalendar([]time.Weekday{time.Sunday}),
		quietLogger(),
	)

	info, err := cal.GetMonthInfo(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 26, info.WorkDays)
	assert.Zero(t, info.Holidays)
	assert.Equal(t, 1, src.calls)

	ok, err := cal.IsWorkday(context.Background(), civil.NewDate(2024, time.March, 4))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompositeCalendar_PrefersPrimary(t *testing.T) {
	src := &fakeHolidays{names: map[civil.Date]string{civil.NewDate(2024, time.March, 4): "Holiday"}}
	cal := NewCompositeCalendar(
		NewHolidayCalendar(src, []time.Weekday{time.Sunday}),
		NewWeekendCalendar([]time.Weekday{time.Sunday}),
		quietLogger(),
	)

	info, err := cal.GetMonthInfo(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 25, info.WorkDays)
}
