// Package app wires repositories, calendars and services for the entry points.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/payroll-hub/payroll-backend-go/internal/config"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/auth"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/employee"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/holiday"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/leave"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/calendar"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/database"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/jwt"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/sse"
	"github.com/payroll-hub/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/payroll-hub/payroll-backend-go/internal/service/attendance"
	authService       "github.com/payroll-hub/payroll-backend-go/internal/service/auth"
	employeeService   "github.com/payroll-hub/payroll-backend-go/internal/service/employee"
	holidayService    "github.com/payroll-hub/payroll-backend-go/internal/service/holiday"
	leaveService      "github.com/payroll-hub/payroll-backend-go/internal/service/leave"
	"github.com/payroll-hub/payroll-backend-go/internal/service/master"
	payrollService "github.com/payroll-hub/payroll-backend-go/internal/service/payroll"
)

type App struct {
	DB         *database.DB
	JWT        jwt.Service
	Events     *sse.Hub
	Calendar   calendar.Calendar
	Normalizer civil.Normalizer

	Auth       auth.AuthService
	Employee   employee.EmployeeService
	Master     master.MasterService
	Attendance attendance.AttendanceService
	Leave      leave.ApprovedLeaveService
	Holiday    holiday.HolidayService
	Payroll    *payrollService.PayrollServiceImpl
}

// New connects to the database and builds every service. Close releases the pool.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	normalizer, err := civil.NewNormalizer(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	restDays, err := calendar.ParseRestDays(cfg.Payroll.RestDays)
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_REST_DAYS: %w", err)
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to init jwt: %w", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	officeRepo := postgresql.NewOfficeRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	officePositionRepo := postgresql.NewOfficePositionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewApprovedLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	// Holiday lookups fall back to plain rest days when the table can't be read.
	cal := calendar.NewCompositeCalendar(
		calendar.NewHolidayCalendar(holidayRepo, restDays),
		calendar.NewWeekendCalendar(restDays),
		logger,
	)
	hub := sse.NewHub()

	return &App{
		DB:         db,
		JWT:        JWTService,
		Events:     hub,
		Calendar:   cal,
		Normalizer: normalizer,

		Auth:       authService.NewAuthService(tx, userRepo, refreshTokenRepo, JWTService),
		Employee:   employeeService.NewEmployeeService(employeeRepo, logger),
		Master:     master.NewMasterService(officeRepo, positionRepo, officePositionRepo),
		Attendance: attendanceService.NewAttendanceService(tx, attendanceRepo, payrollRepo, normalizer, logger),
		Leave:      leaveService.NewApprovedLeaveService(leaveRepo, employeeRepo, normalizer, logger),
		Holiday:    holidayService.NewHolidayService(holidayRepo, cal, normalizer, logger),
		Payroll: payrollService.NewPayrollService(
			tx,
			payrollRepo,
			employeeRepo,
			officePositionRepo,
			attendanceRepo,
			leaveRepo,
			cal,
			normalizer,
			hub,
			cfg.Payroll.Workers,
			logger,
		),
	}, nil
}

func (a *App) Close() {
	a.DB.Close()
}
