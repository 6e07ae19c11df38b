package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/employee"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelopes(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []string{"EMP001"}, NewMeta(2, 10, 11, 2))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	require.NotNil(t, body.Meta)
	assert.Equal(t, int64(11), body.Meta.TotalItems)
	assert.Equal(t, 2, body.Meta.TotalPages)

	rec = httptest.NewRecorder()
	Created(rec, "Employee created", map[string]string{"id": "EMP001"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Employee created", decode(t, rec).Message)
}

func TestErrorEnvelopesCarryStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		code   string
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "bad", nil) }, http.StatusBadRequest, "BAD_REQUEST"},
		{"validation", func(w http.ResponseWriter) { ValidationError(w, map[string]string{"month": "required"}) }, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "no") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "no") }, http.StatusForbidden, "FORBIDDEN"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "gone") }, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "dup") }, http.StatusConflict, "CONFLICT"},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "oops") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestUnencodablePayloadBecomesServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "ENCODING_ERROR", body.Error.Code)
}

func TestHandleErrorMapsDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", validator.ValidationErrors{{Field: "month", Message: "is required"}}, http.StatusUnprocessableEntity},
		{"wrapped not found", fmt.Errorf("load: %w", employee.ErrEmployeeNotFound), http.StatusNotFound},
		{"range", payroll.ErrRangeSpansMonths, http.StatusBadRequest},
		{"unknown", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandleErrorHidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("pq: password authentication failed"))

	body := decode(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "An unexpected error occurred", body.Error.Message)
	assert.Empty(t, body.Error.Details)
}
