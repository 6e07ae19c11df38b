package attendance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stagedTx applies writes only when fn succeeds.
type stagedTx struct {
	repo  *memAttendanceRepo
	calls int
}

func (s *stagedTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	before := make(map[string]attendance.Record, len(s.repo.rows))
	for k, v := range s.repo.rows {
		before[k] = v
	}
	if err := fn(ctx); err != nil {
		s.repo.rows = before
		return err
	}
	return nil
}

type memAttendanceRepo struct {
	attendance.AttendanceRepository
	rows      map[string]attendance.Record
	employees map[string]bool
	deleted   []string
}

func key(r attendance.Record) string { return r.EmployeeID + "|" + r.Date.String() }

func (m *memAttendanceRepo) Upsert(_ context.Context, r attendance.Record) (attendance.Record, error) {
	if !m.employees[r.EmployeeID] {
		return attendance.Record{}, attendance.ErrEmployeeNotFound
	}
	m.rows[key(r)] = r
	return r, nil
}

func (m *memAttendanceRepo) List(_ context.Context, f attendance.Filter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, r := range m.rows {
		if f.From != nil && r.Date.Before(*f.From) {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (m *memAttendanceRepo) DeleteByRange(_ context.Context, from, to civil.Date) (int64, error) {
	m.deleted = append(m.deleted, from.String()+".."+to.String())
	return int64(len(m.rows)), nil
}

func (m *memAttendanceRepo) DeleteByEmployeeRange(_ context.Context, employeeID string, from, to civil.Date) (int64, error) {
	m.deleted = append(m.deleted, employeeID+":"+from.String()+".."+to.String())
	return 1, nil
}

type memPayrollRepo struct {
	payroll.PayrollRepository
	err     error
	periods []string
}

func (m *memPayrollRepo) DeleteByPeriod(_ context.Context, month, year int) (int64, error) {
	m.periods = append(m.periods, time.Month(month).String())
	return 3, m.err
}

func (m *memPayrollRepo) DeleteByEmployeePeriod(_ context.Context, employeeID string, month, year int) (int64, error) {
	m.periods = append(m.periods, employeeID)
	return 1, m.err
}

func newTestService(t *testing.T, zone string) (*AttendanceServiceImpl, *memAttendanceRepo, *memPayrollRepo, *stagedTx) {
	t.Helper()
	normalizer, err := civil.NewNormalizer(zone)
	require.NoError(t, err)

	repo := &memAttendanceRepo{rows: make(map[string]attendance.Record), employees: map[string]bool{"EMP001": true, "EMP002": true}}
	payrolls := &memPayrollRepo{}
	tx := &stagedTx{repo: repo}
	svc := NewAttendanceService(tx, repo, payrolls, normalizer, slog.New(slog.NewTextHandler(io.Discard, nil))).(*AttendanceServiceImpl)
	return svc, repo, payrolls, tx
}

func TestUpsert_NormalizesTimestampDate(t *testing.T) {
	svc, repo, _, _ := newTestService(t, "Asia/Kolkata")

	resp, err := svc.Upsert(context.Background(), attendance.UpsertAttendanceRequest{
		EmployeeID: " EMP001 ",
		Date:       "2024-03-03T20:00:00Z", // 01:30 on the 4th in Kolkata
		PunchIn:    "09:00",
		PunchOut:   " 17:00 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", resp.Date)
	assert.Equal(t, "17:00", repo.rows["EMP001|2024-03-04"].PunchOut)
}

func TestUpsert_KeepsEmptyPunches(t *testing.T) {
	svc, repo, _, _ := newTestService(t, "")

	_, err := svc.Upsert(context.Background(), attendance.UpsertAttendanceRequest{EmployeeID: "EMP001", Date: "2024-03-04"})
	require.NoError(t, err)
	assert.Equal(t, attendance.Record{EmployeeID: "EMP001", Date: civil.NewDate(2024, time.March, 4)}, repo.rows["EMP001|2024-03-04"])
}

func TestBulkUpsert_IsAtomic(t *testing.T) {
	svc, repo, _, tx := newTestService(t, "")
	ctx := context.Background()

	_, err := svc.BulkUpsert(ctx, attendance.BulkUpsertAttendanceRequest{Records: []attendance.UpsertAttendanceRequest{
		{EmployeeID: "EMP001", Date: "2024-03-04", PunchIn: "09:00", PunchOut: "17:00"},
		{EmployeeID: "EMP404", Date: "2024-03-04", PunchIn: "09:00", PunchOut: "17:00"},
	}})
	assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
	assert.Empty(t, repo.rows)
	assert.Equal(t, 1, tx.calls)

	resp, err := svc.BulkUpsert(ctx, attendance.BulkUpsertAttendanceRequest{Records: []attendance.UpsertAttendanceRequest{
		{EmployeeID: "EMP001", Date: "2024-03-04", PunchIn: "09:00", PunchOut: "17:00"},
		{EmployeeID: "EMP002", Date: "2024-03-04"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Saved)
	assert.Len(t, repo.rows, 2)
}

func TestBulkUpsert_ValidatesEveryRow(t *testing.T) {
	svc, repo, _, tx := newTestService(t, "")

	_, err := svc.BulkUpsert(context.Background(), attendance.BulkUpsertAttendanceRequest{Records: []attendance.UpsertAttendanceRequest{
		{EmployeeID: "EMP001", Date: "2024-03-04", PunchIn: "9am"},
		{EmployeeID: "", Date: "04/03/2024"},
	}})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]string{
		"records[0].punch_in":    "punch_in must be HH:mm or HH:mm:ss",
		"records[1].employee_id": "employee_id is required",
		"records[1].date":        "date must be YYYY-MM-DD or RFC3339",
	}, verrs.ToMap())
	assert.Empty(t, repo.rows)
	assert.Zero(t, tx.calls)

	_, err = svc.BulkUpsert(context.Background(), attendance.BulkUpsertAttendanceRequest{})
	require.ErrorAs(t, err, &verrs)
}

func TestList_Paginates(t *testing.T) {
	svc, repo, _, _ := newTestService(t, "")
	for d := 1; d <= 5; d++ {
		r := attendance.Record{EmployeeID: "EMP001", Date: civil.NewDate(2024, time.March, d)}
		repo.rows[key(r)] = r
	}

	resp, err := svc.List(context.Background(), attendance.ListAttendanceQuery{FromDate: "2024-03-02", Limit: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 4, resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 1, resp.Page)
}

func TestDeleteByMonth_RemovesSnapshotsToo(t *testing.T) {
	svc, repo, payrolls, _ := newTestService(t, "")

	resp, err := svc.DeleteByMonth(context.Background(), attendance.DeleteMonthRequest{Year: 2024, Month: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-01..2024-02-29"}, repo.deleted)
	assert.Equal(t, []string{"February"}, payrolls.periods)
	assert.EqualValues(t, 3, resp.DeletedPayrolls)

	_, err = svc.DeleteByMonth(context.Background(), attendance.DeleteMonthRequest{Year: 1999, Month: 13})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestDeleteByEmployeeMonth_PropagatesFailure(t *testing.T) {
	svc, repo, payrolls, _ := newTestService(t, "")
	payrolls.err = errors.New("db down")

	_, err := svc.DeleteByEmployeeMonth(context.Background(), attendance.DeleteEmployeeMonthRequest{EmployeeID: "EMP001", Year: 2024, Month: 3})
	assert.ErrorContains(t, err, "db down")
	assert.Equal(t, []string{"EMP001:2024-03-01..2024-03-31"}, repo.deleted)
}
