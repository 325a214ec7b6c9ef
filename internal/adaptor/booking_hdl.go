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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.CreateBooking(r.Context(), userID.String(), &req); err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseSuccess(w, "Class booked", nil)
}

// GetUserBookings handles GET /api/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelBooking handles DELETE /api/bookings/{id} (protected)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), userID.String(), bookingID); err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

// handleServiceError maps booking errors ke HTTP status
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNoActiveMembership):
		h.log.Warn(operation+" rejected - no active membership", zap.Error(err))
		utils.ResponseForbidden(w, "You need an active package to book classes")

	case errors.Is(err, usecase.ErrClassUnavailable):
		h.log.Warn(operation+" rejected - class unavailable", zap.Error(err))
		utils.ResponseBadRequest(w, "Class not found or inactive", nil)

	case errors.Is(err, usecase.ErrClassInPast):
		h.log.Warn(operation+" rejected - class in past", zap.Error(err))
		utils.ResponseBadRequest(w, "Cannot book past classes", nil)

	case errors.Is(err, usecase.ErrClassFull):
		h.log.Warn(operation+" rejected - class full", zap.Error(err))
		utils.ResponseBadRequest(w, "Class is full", nil)

	case errors.Is(err, usecase.ErrAlreadyBooked):
		h.log.Warn(operation+" rejected - already booked", zap.Error(err))
		utils.ResponseBadRequest(w, "Already booked", nil)

	case errors.Is(err, usecase.ErrNotAllowed):
		h.log.Warn(operation+" rejected - not allowed", zap.Error(err))
		utils.ResponseForbidden(w, "Not allowed")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}
