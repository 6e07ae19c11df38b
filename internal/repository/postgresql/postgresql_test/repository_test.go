package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/employee"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/holiday"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/office"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/position"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/timing"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/user"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	ctx := context.Background()

	setup, ok, err := NewTestDatabase(ctx)
	if !ok {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, err)
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)
	return setup
}

func seedEmployee(t *testing.T, setup *TestDatabaseSetup, id string) employee.Employee {
	t.Helper()
	ctx := context.Background()

	o, err := postgresql.NewOfficeRepository(setup.DB).Create(ctx, office.Office{Name: "HQ " + id})
	require.NoError(t, err)
	p, err := postgresql.NewPositionRepository(setup.DB).Create(ctx, position.Position{Title: "Clerk " + id})
	require.NoError(t, err)

	e, err := postgresql.NewEmployeeRepository(setup.DB).Create(ctx, employee.Employee{
		ID:            id,
		Name:          "Employee " + id,
		Email:         id + "@example.com",
		OfficeID:      &o.ID,
		PositionID:    &p.ID,
		MonthlySalary: decimal.NewFromInt(3000),
		Status:        employee.StatusActive,
	})
	require.NoError(t, err)
	return e
}

func TestEmployeeRepository_CreateGetAndConflicts(t *testing.T) {
	setup := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	seeded := seedEmployee(t, setup, "EMP001")

	got, err := repo.GetByID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, got.Name)
	assert.True(t, got.MonthlySalary.Equal(decimal.NewFromInt(3000)))
	require.NotNil(t, got.OfficeName)

	_, err = repo.Create(ctx, employee.Employee{ID: "EMP001", Name: "Dup", Email: "dup@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = repo.GetByID(ctx, "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	ids, err := repo.ListIDs(ctx, employee.IDPrefix)
	require.NoError(t, err)
	assert.Equal(t, "EMP002", employee.NextCode(ids))
}

func TestAttendanceRepository_UpsertReplacesPunches(t *testing.T) {
	setup := setupDB(t)
	ctx := context.Background()
	seedEmployee(t, setup, "EMP001")
	repo := postgresql.NewAttendanceRepository(setup.DB)
	day := civil.NewDate(2024, time.March, 4)

	_, err := repo.Upsert(ctx, attendance.Record{EmployeeID: "EMP001", Date: day, PunchIn: "09:00", PunchOut: "12:00"})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, attendance.Record{EmployeeID: "EMP001", Date: day, PunchIn: "09:00", PunchOut: "17:00"})
	require.NoError(t, err)

	records, err := repo.GetByEmployeeRange(ctx, "EMP001", day, day)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "17:00", records[0].PunchOut)
	assert.Equal(t, day, records[0].Date)

	_, err = repo.Upsert(ctx, attendance.Record{EmployeeID: "EMP404", Date: day})
	assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ListAttendedIn(t *testing.T) {
	setup := setupDB(t)
	ctx := context.Background()
	seedEmployee(t, setup, "EMP001")
	seedEmployee(t, setup, "EMP002")

	day := civil.NewDate(2024, time.March, 6)
	_, err := postgresql.NewAttendanceRepository(setup.DB).Upsert(ctx, attendance.Record{EmployeeID: "EMP002", Date: day, PunchIn: "09:00", PunchOut: "17:00"})
	require.NoError(t, err)

	repo := postgresql.NewEmployeeRepository(setup.DB)
	rows, total, err := repo.List(ctx, employee.Filter{AttendedIn: &civil.Range{From: day.AddDays(-2), To: day}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "EMP002", rows[0].ID)

	_, total, err = repo.List(ctx, employee.Filter{AttendedIn: &civil.Range{From: day.AddDays(1), To: day.AddDays(5)}})
	require.NoError(t, err)
	assert.Zero(t, total)

	_, total, err = repo.List(ctx, employee.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestWithTransaction_RollsBack(t *testing.T) {
	setup := setupDB(t)
	ctx := context.Background()
	seedEmployee(t, setup, "EMP001")
	repo := postgresql.NewAttendanceRepository(setup.DB)
	day := civil.NewDate(2024, time.March, 5)

	boom := errors.New("boom")
	err := postgresql.NewTransactor(setup.DB).WithinTx(ctx, func(ctx context.Context) error {
		if _, err := repo.Upsert(ctx, attendance.Record{EmployeeID: "EMP001", Date: day, PunchIn: "09:00", PunchOut: "17:00"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	records, err := repo.GetByEmployeeRange(ctx, "EMP001", day, day)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPayrollRepository_UpsertAndSummary(t *testing.T) {
	setup := setupDB(t)
	ctx := context.Background()
	seedEmployee(t, setup, "EMP001")
	repo := postgresql.NewPayrollRepository(setup.DB)

	rec := payroll.PayrollRecord{
		EmployeeID:       "EMP001",
		PeriodMonth:      3,
		PeriodYear:       2024,
		WorkingDays:      26,
		BaseSalary:       decimal.NewFromInt(3000),
		DeductionsAmount: decimal.RequireFromString("634.62"),
		NetSalary:        decimal.RequireFromString("2365.38"),
	}
	_, err := repo.UpsertRecord(ctx, rec)
	require.NoError(t, err)
	rec.NetSalary = decimal.NewFromInt(3000)
	rec.DeductionsAmount = decimal.Zero
	_, err = repo.UpsertRecord(ctx, rec)
	require.NoError(t, err)

	summary, err := repo.Summary(ctx, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalEmployees)
	assert.True(t, summary.TotalNetSalary.Equal(decimal.NewFromInt(3000)))

	n, err := repo.DeleteByPeriod(ctx, 3, 2024)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.GetRecord(ctx, "EMP001", 3, 2024)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestHolidayRepository_NamesAndDuplicates(t *testing.T) {
	setup := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewHolidayRepository(setup.DB)
	day := civil.NewDate(2024, time.March, 11)

	_, err := repo.Create(ctx, holiday.Holiday{Name: "Founders Day", Date: day})
	require.NoError(t, err)
	_, err = repo.Create(ctx, holiday.Holiday{Name: "Again", Date: day})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)

	from, to := civil.MonthBounds(2024, time.March)
	names, err := repo.HolidayNames(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, map[civil.Date]string{day: "Founders Day"}, names)
}

func TestOfficePositionRepository_Upsert(t *testing.T) {
	setup := setupDB(t)
	ctx := context.Background()
	e := seedEmployee(t, setup, "EMP001")
	repo := postgresql.NewOfficePositionRepository(setup.DB)

	_, err := repo.Upsert(ctx, timing.OfficePosition{OfficeID: *e.OfficeID, PositionID: *e.PositionID, ReportingTime: "08:30:00", DutyHours: 7.5})
	require.NoError(t, err)

	got, err := repo.Get(ctx, *e.OfficeID, *e.PositionID)
	require.NoError(t, err)
	assert.Equal(t, 450, got.Config().DutyMinutes)

	_, err = repo.Get(ctx, *e.OfficeID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, timing.ErrTimingNotFound)
}

func TestUserRepository_LookupIsCaseInsensitive(t *testing.T) {
	setup := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(setup.DB)

	_, err := repo.Create(ctx, user.User{Username: "Admin", Email: "admin@example.com", PasswordHash: "x", Role: user.RoleAdmin})
	require.NoError(t, err)

	u, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role)

	_, err = repo.Create(ctx, user.User{Username: "other", Email: "admin@example.com", PasswordHash: "x", Role: user.RoleHR})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}
