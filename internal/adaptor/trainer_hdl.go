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

type TrainerHandler struct {
	service usecase.TrainerService
	log     *zap.Logger
}

func NewTrainerHandler(service usecase.TrainerService, log *zap.Logger) *TrainerHandler {
	return &TrainerHandler{
		service: service,
		log:     log.With(zap.String("handler", "trainer")),
	}
}

// GetTrainers handles GET /api/trainers/all (public)
func (h *TrainerHandler) GetTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.service.GetTrainers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get trainers")
		return
	}

	utils.ResponseSuccess(w, "success", trainers)
}

// CreateTrainer handles POST /api/trainers/create (admin only)
func (h *TrainerHandler) CreateTrainer(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTrainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	trainer, err := h.service.CreateTrainer(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create trainer")
		return
	}

	utils.ResponseCreated(w, "Trainer created", trainer)
}

// DeleteTrainer handles DELETE /api/trainers/{id} (admin only)
func (h *TrainerHandler) DeleteTrainer(w http.ResponseWriter, r *http.Request) {
	trainerID := chi.URLParam(r, "id")
	if trainerID == "" {
		utils.ResponseBadRequest(w, "Trainer ID is required", nil)
		return
	}

	if err := h.service.DeleteTrainer(r.Context(), trainerID); err != nil {
		h.handleServiceError(w, err, "delete trainer")
		return
	}

	utils.ResponseSuccess(w, "Trainer deleted", nil)
}

func (h *TrainerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}
