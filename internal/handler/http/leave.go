package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/leave"
	"github.com/payroll-hub/payroll-backend-go/internal/handler/http/response"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/jwt"
)

type LeaveHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.ApprovedLeaveService
}

func NewLeaveHandler(leaveService leave.ApprovedLeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Add implements LeaveHandler. The approver is the authenticated user.
func (l *LeaveHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req leave.AddApprovedLeaveRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if claims, err := jwt.ClaimsFromContext(r.Context()); err == nil && claims.Username != "" {
		req.ApprovedBy = &claims.Username
	}

	result, err := l.leaveService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave approved", result)
}

// Remove implements LeaveHandler.
func (l *LeaveHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	req := leave.RemoveApprovedLeaveRequest{
		EmployeeID: chi.URLParam(r, "employeeId"),
		Date:       chi.URLParam(r, "date"),
	}

	if err := l.leaveService.Remove(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Approved leave removed", nil)
}

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := leave.ListApprovedLeaveRequest{
		EmployeeID: chi.URLParam(r, "employeeId"),
		Year:       queryInt(r, "year", 0),
		Month:      queryInt(r, "month", 0),
	}

	result, err := l.leaveService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
