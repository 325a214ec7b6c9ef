package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"gym-booking/internal/dto/request"
	"gym-booking/internal/usecase"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClassHandler struct {
	service usecase.ClassService
	log     *zap.Logger
}

func NewClassHandler(service usecase.ClassService, log *zap.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		log:     log.With(zap.String("handler", "class")),
	}
}

// GetClasses handles GET /api/classes (public)
func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.GetClasses(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// CreateClass handles POST /api/classes (admin only)
func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req request.CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	class, err := h.service.CreateClass(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create class")
		return
	}

	utils.ResponseCreated(w, "Class created", class)
}

// ToggleClass handles PUT /api/classes/{id}/toggle (admin only)
func (h *ClassHandler) ToggleClass(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")
	if classID == "" {
		utils.ResponseBadRequest(w, "Class ID is required", nil)
		return
	}

	class, err := h.service.ToggleClass(r.Context(), classID)
	if err != nil {
		h.handleServiceError(w, err, "toggle class")
		return
	}

	utils.ResponseSuccess(w, "Class updated", class)
}

// DeleteClass handles DELETE /api/classes/{id} (admin only)
func (h *ClassHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")
	if classID == "" {
		utils.ResponseBadRequest(w, "Class ID is required", nil)
		return
	}

	if err := h.service.DeleteClass(r.Context(), classID); err != nil {
		h.handleServiceError(w, err, "delete class")
		return
	}

	utils.ResponseSuccess(w, "Class deleted", nil)
}

func (h *ClassHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrScheduleNotInFuture):
		h.log.Warn(operation+" rejected - schedule not in future", zap.Error(err))
		utils.ResponseBadRequest(w, "Schedule must be in the future", nil)

	case errors.Is(err, usecase.ErrCapacityNotPositive):
		h.log.Warn(operation+" rejected - invalid capacity", zap.Error(err))
		utils.ResponseBadRequest(w, "Capacity must be greater than zero", nil)

	case errors.Is(err, usecase.ErrClassNotFound):
		h.log.Warn(operation+" failed - class not found", zap.Error(err))
		utils.ResponseNotFound(w, "Class not found")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}
