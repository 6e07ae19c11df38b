package response

import (
	"errors"
	"net/http"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/auth"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/employee"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/holiday"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/leave"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/office"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/position"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/timing"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/user"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and user errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminPrivilegeRequired), errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, attendance.ErrEmployeeNotFound),
		errors.Is(err, leave.ErrEmployeeNotFound),
		errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrOfficeNotFound):
		BadRequest(w, "Office does not exist", nil)
	case errors.Is(err, employee.ErrPositionNotFound):
		BadRequest(w, "Position does not exist", nil)

	// Master data errors
	case errors.Is(err, office.ErrOfficeNotFound):
		NotFound(w, "Office not found")
	case errors.Is(err, office.ErrOfficeNameExists):
		Conflict(w, "Office with this name already exists")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionTitleExists):
		Conflict(w, "Position with this title already exists")
	case errors.Is(err, timing.ErrTimingNotFound):
		NotFound(w, "Office position timing not found")
	case errors.Is(err, timing.ErrOfficeNotFound), errors.Is(err, timing.ErrPositionNotFound):
		BadRequest(w, err.Error(), nil)

	// Attendance, leave and holiday errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmptyBatch), errors.Is(err, attendance.ErrBatchTooLarge):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrApprovedLeaveNotFound):
		NotFound(w, "Approved leave not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayDateExists):
		Conflict(w, "A holiday already exists on this date")

	// Payroll errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidDateRange),
		errors.Is(err, payroll.ErrRangeSpansMonths),
		errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
