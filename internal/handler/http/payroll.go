package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/handler/http/response"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/jwt"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/sse"
	"github.com/payroll-hub/payroll-backend-go/internal/service/master"
)

const keepaliveInterval = 30 * time.Second

// EventSubscriber is the receiving half of the SSE hub.
type EventSubscriber interface {
	Subscribe(key string) (<-chan sse.Event, func())
}

type PayrollHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	EmployeeDetails(w http.ResponseWriter, r *http.Request)
	PendingDays(w http.ResponseWriter, r *http.Request)
	AttendanceDays(w http.ResponseWriter, r *http.Request)
	Records(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Offices(w http.ResponseWriter, r *http.Request)
	Positions(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	masterService  master.MasterService
	jwtService     jwt.Service
	events         EventSubscriber
}

func NewPayrollHandler(
	payrollService payroll.PayrollService,
	masterService master.MasterService,
	jwtService jwt.Service,
	events EventSubscriber,
) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		masterService:  masterService,
		jwtService:     jwtService,
		events:         events,
	}
}

// Report computes a page of the payroll for a date range given in the query.
func (h *payrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := payroll.PayrollReportRequest{
		FromDate:   q.Get("from_date"),
		ToDate:     q.Get("to_date"),
		OfficeID:   queryOptional(r, "office_id"),
		PositionID: queryOptional(r, "position_id"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 50),
	}

	result, err := h.payrollService.GenerateReport(r.Context(), req)
	if err != nil {
		slog.Error("Payroll report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, response.NewMeta(result.Page, result.Limit, result.TotalCount, result.TotalPages))
}

// Generate computes and saves the whole month in one run.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.GeneratePayroll(r.Context(), req)
	if err != nil {
		slog.Error("Payroll generate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated successfully", result)
}

func (h *payrollHandlerImpl) EmployeeDetails(w http.ResponseWriter, r *http.Request) {
	req := payroll.EmployeeDetailsRequest{
		EmployeeID: chi.URLParam(r, "employeeId"),
		FromDate:   r.URL.Query().Get("from_date"),
		ToDate:     r.URL.Query().Get("to_date"),
	}

	result, err := h.payrollService.GetEmployeeDetails(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) PendingDays(w http.ResponseWriter, r *http.Request) {
	req := payroll.PendingDaysRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Year:       queryInt(r, "year", 0),
		Month:      queryInt(r, "month", 0),
	}

	result, err := h.payrollService.GetPendingAttendanceDays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) AttendanceDays(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetAttendanceDaysInMonth(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Records(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListRecords(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSummary(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Offices lists the office filter of the report screen.
func (h *payrollHandlerImpl) Offices(w http.ResponseWriter, r *http.Request) {
	offices, err := h.masterService.ListOffices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	options := make([]payroll.FilterOption, 0, len(offices))
	for _, o := range offices {
		options = append(options, payroll.FilterOption{ID: o.ID, Name: o.Name})
	}
	response.Success(w, options)
}

// Positions lists the position filter of the report screen.
func (h *payrollHandlerImpl) Positions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.masterService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	options := make([]payroll.FilterOption, 0, len(positions))
	for _, p := range positions {
		options = append(options, payroll.FilterOption{ID: p.ID, Name: p.Title})
	}
	response.Success(w, options)
}

// Events streams payroll run progress for the user named by the SSE token.
func (h *payrollHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		response.Unauthorized(w, "Missing token")
		return
	}

	userID, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.events.Subscribe(userID)
	defer cleanup()

	if err := sse.Write(w, sse.Event{Name: "connected", Data: map[string]string{"user_id": userID}}); err != nil {
		return
	}
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := sse.Write(w, event); err != nil {
				slog.Warn("SSE write failed", "user_id", userID, "error", err)
				return
			}
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, ": ping %d\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func periodFromQuery(r *http.Request) payroll.PeriodRequest {
	return payroll.PeriodRequest{
		Year:  queryInt(r, "year", 0),
		Month: queryInt(r, "month", 0),
	}
}
