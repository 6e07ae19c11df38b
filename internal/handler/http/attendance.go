package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/handler/http/response"
)

// maxBulkBody caps a bulk upload body.
const maxBulkBody = 8 << 20

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	BulkUpsert(w http.ResponseWriter, r *http.Request)
	DeleteMonth(w http.ResponseWriter, r *http.Request)
	DeleteEmployeeMonth(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := attendance.ListAttendanceQuery{
		EmployeeID: q.Get("employee_id"),
		FromDate:   q.Get("from_date"),
		ToDate:     q.Get("to_date"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 50),
	}

	result, err := h.attendanceService.List(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, response.NewMeta(result.Page, result.Limit, result.TotalCount, result.TotalPages))
}

func (h *attendanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", result)
}

// BulkUpsert accepts either a bare JSON array of records or {"records": [...]}.
func (h *attendanceHandlerImpl) BulkUpsert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBulkBody))
	if err != nil {
		response.BadRequest(w, "Failed to read request body", nil)
		return
	}

	var req attendance.BulkUpsertAttendanceRequest
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &req.Records)
	} else {
		err = json.Unmarshal(body, &req)
	}
	if err != nil {
		slog.Error("Bulk attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.BulkUpsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance uploaded", result)
}

func (h *attendanceHandlerImpl) DeleteMonth(w http.ResponseWriter, r *http.Request) {
	req := attendance.DeleteMonthRequest{
		Year:  queryInt(r, "year", 0),
		Month: queryInt(r, "month", 0),
	}

	result, err := h.attendanceService.DeleteByMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", result)
}

func (h *attendanceHandlerImpl) DeleteEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	req := attendance.DeleteEmployeeMonthRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Year:       queryInt(r, "year", 0),
		Month:      queryInt(r, "month", 0),
	}

	result, err := h.attendanceService.DeleteByEmployeeMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", result)
}
