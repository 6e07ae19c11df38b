package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/user"
	"github.com/payroll-hub/payroll-backend-go/internal/handler/http/middleware"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/jwt"
)

// Handlers groups every route handler the router mounts.
type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Master     MasterHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Holiday    HolidayHandler
	Payroll    PayrollHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	authenticated := chi.Chain(
		jwtauth.Verifier(JWTService.JWTAuth()),
		middleware.AuthRequired(JWTService),
	)
	can := middleware.RequirePermission

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(authenticated...)
				r.Post("/logout", h.Auth.Logout)
				r.With(can(user.PermissionViewOwnProfile)).Get("/profile", h.Auth.Profile)
				r.Post("/sse-token", h.Auth.SSEToken)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/register", h.Auth.Register)
					r.Get("/users", h.Auth.ListUsers)
					r.Put("/users/{id}/role", h.Auth.UpdateRole)
				})
			})
		})

		r.Route("/payroll", func(r chi.Router) {
			// Authenticated by the short-lived token in the query string
			r.Get("/events", h.Payroll.Events)

			r.Group(func(r chi.Router) {
				r.Use(authenticated...)
				r.With(can(user.PermissionPayrollView)).Group(func(r chi.Router) {
					r.Get("/report", h.Payroll.Report)
					r.Get("/employees/{employeeId}", h.Payroll.EmployeeDetails)
					r.Get("/pending-days", h.Payroll.PendingDays)
					r.Get("/attendance-days", h.Payroll.AttendanceDays)
					r.Get("/records", h.Payroll.Records)
					r.Get("/summary", h.Payroll.Summary)
					r.Get("/offices", h.Payroll.Offices)
					r.Get("/positions", h.Payroll.Positions)
				})
				r.With(can(user.PermissionPayrollGenerate)).Post("/generate", h.Payroll.Generate)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(authenticated...)
			r.Route("/employees", func(r chi.Router) {
				r.With(can(user.PermissionEmployeeView)).Group(func(r chi.Router) {
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/next-id", h.Employee.NextID)
					r.Get("/summary", h.Employee.Summary)
					r.Get("/{id}", h.Employee.GetEmployee)
				})
				r.With(can(user.PermissionEmployeeManage)).Group(func(r chi.Router) {
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/masters", func(r chi.Router) {
				r.With(can(user.PermissionMasterView)).Group(func(r chi.Router) {
					r.Get("/offices", h.Master.ListOffices)
					r.Get("/offices/{id}", h.Master.GetOffice)
					r.Get("/positions", h.Master.ListPositions)
					r.Get("/positions/{id}", h.Master.GetPosition)
					r.Get("/office-positions", h.Master.ListOfficePositions)
					r.Get("/office-positions/{officeId}/{positionId}", h.Master.GetOfficePosition)
				})
				r.With(can(user.PermissionMasterManage)).Group(func(r chi.Router) {
					r.Post("/offices", h.Master.CreateOffice)
					r.Put("/offices/{id}", h.Master.UpdateOffice)
					r.Delete("/offices/{id}", h.Master.DeleteOffice)
					r.Post("/positions", h.Master.CreatePosition)
					r.Put("/positions/{id}", h.Master.UpdatePosition)
					r.Delete("/positions/{id}", h.Master.DeletePosition)
					r.Post("/office-positions", h.Master.UpsertOfficePosition)
					r.Delete("/office-positions/{officeId}/{positionId}", h.Master.DeleteOfficePosition)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(can(user.PermissionHolidayView)).Group(func(r chi.Router) {
					r.Get("/", h.Holiday.List)
					r.Get("/month", h.Holiday.ListByMonth)
					r.Get("/upcoming", h.Holiday.Upcoming)
					r.Get("/working-days", h.Holiday.WorkingDays)
				})
				r.With(can(user.PermissionHolidayManage)).Group(func(r chi.Router) {
					r.Post("/", h.Holiday.Create)
					r.Put("/{id}", h.Holiday.Update)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(can(user.PermissionAttendanceView)).Get("/", h.Attendance.List)
				r.With(can(user.PermissionAttendanceManage)).Group(func(r chi.Router) {
					r.Post("/", h.Attendance.Upsert)
					r.Post("/bulk", h.Attendance.BulkUpsert)
					r.Delete("/month", h.Attendance.DeleteMonth)
					r.Delete("/employee-month", h.Attendance.DeleteEmployeeMonth)
				})
			})

			r.Route("/approved-leaves", func(r chi.Router) {
				r.With(can(user.PermissionLeaveView)).Get("/{employeeId}", h.Leave.List)
				r.With(can(user.PermissionLeaveManage)).Group(func(r chi.Router) {
					r.Post("/", h.Leave.Add)
					r.Delete("/{employeeId}/{date}", h.Leave.Remove)
				})
			})
		})
	})
	return r
}
