package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/office"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/position"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/timing"
	"github.com/payroll-hub/payroll-backend-go/internal/handler/http/response"
	"github.com/payroll-hub/payroll-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Office handlers
	CreateOffice(w http.ResponseWriter, r *http.Request)
	GetOffice(w http.ResponseWriter, r *http.Request)
	ListOffices(w http.ResponseWriter, r *http.Request)
	UpdateOffice(w http.ResponseWriter, r *http.Request)
	DeleteOffice(w http.ResponseWriter, r *http.Request)

	// Position handlers
	CreatePosition(w http.ResponseWriter, r *http.Request)
	GetPosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)

	// Office/position timing handlers
	UpsertOfficePosition(w http.ResponseWriter, r *http.Request)
	ListOfficePositions(w http.ResponseWriter, r *http.Request)
	GetOfficePosition(w http.ResponseWriter, r *http.Request)
	DeleteOfficePosition(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== OFFICE HANDLERS ====================

func (h *masterHandlerImpl) CreateOffice(w http.ResponseWriter, r *http.Request) {
	var req office.CreateOfficeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateOffice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office created successfully", result)
}

func (h *masterHandlerImpl) GetOffice(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetOffice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListOffices(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListOffices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateOffice(w http.ResponseWriter, r *http.Request) {
	var req office.UpdateOfficeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateOffice(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office updated successfully", nil)
}

func (h *masterHandlerImpl) DeleteOffice(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteOffice(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office deleted successfully", nil)
}

// ==================== POSITION HANDLERS ====================

func (h *masterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreatePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", result)
}

func (h *masterHandlerImpl) GetPosition(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetPosition(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.UpdatePositionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdatePosition(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated successfully", nil)
}

func (h *masterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeletePosition(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}

// ==================== OFFICE POSITION HANDLERS ====================

func (h *masterHandlerImpl) UpsertOfficePosition(w http.ResponseWriter, r *http.Request) {
	var req timing.UpsertOfficePositionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpsertOfficePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office position timing saved", result)
}

func (h *masterHandlerImpl) ListOfficePositions(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListOfficePositions(r.Context(), queryOptional(r, "office_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOfficePosition returns the effective timing, falling back to the defaults.
func (h *masterHandlerImpl) GetOfficePosition(w http.ResponseWriter, r *http.Request) {
	officeID := chi.URLParam(r, "officeId")
	positionID := chi.URLParam(r, "positionId")

	result, err := h.masterService.GetTimingConfig(r.Context(), &officeID, &positionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteOfficePosition(w http.ResponseWriter, r *http.Request) {
	err := h.masterService.DeleteOfficePosition(r.Context(), chi.URLParam(r, "officeId"), chi.URLParam(r, "positionId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office position timing deleted", nil)
}
