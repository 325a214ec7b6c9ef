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

type PackageHandler struct {
	service usecase.PackageService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "package")),
	}
}

// GetPackages handles GET /api/packages (public)
func (h *PackageHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetActivePackages(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetAllPackages handles GET /api/packages/all (admin only)
// Termasuk paket non-aktif beserta jumlah member.
func (h *PackageHandler) GetAllPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetAllPackages(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get all packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// CreatePackage handles POST /api/packages (admin only)
func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create package")
		return
	}

	utils.ResponseCreated(w, "Package created", pkg)
}

// DeletePackage handles DELETE /api/packages/{id} (admin only)
func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	if packageID == "" {
		utils.ResponseBadRequest(w, "Package ID is required", nil)
		return
	}

	if err := h.service.DeletePackage(r.Context(), packageID); err != nil {
		h.handleServiceError(w, err, "delete package")
		return
	}

	utils.ResponseSuccess(w, "Package deleted", nil)
}

// Subscribe handles POST /api/packages/subscribe (protected)
func (h *PackageHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	subscription, err := h.service.Subscribe(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "subscribe")
		return
	}

	utils.ResponseCreated(w, "Subscribed", subscription)
}

// GetMyActiveSubscription handles GET /api/packages/my-active (protected)
func (h *PackageHandler) GetMyActiveSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	subscription, err := h.service.GetMyActiveSubscription(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get active subscription")
		return
	}

	// null kalau user tidak punya subscription aktif
	utils.ResponseSuccess(w, "success", subscription)
}

// GetSubscriptionHistory handles GET /api/packages/history (protected)
func (h *PackageHandler) GetSubscriptionHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	history, err := h.service.GetSubscriptionHistory(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get subscription history")
		return
	}

	utils.ResponseSuccess(w, "success", history)
}

func (h *PackageHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrPackageUnavailable):
		h.log.Warn(operation+" rejected - package unavailable", zap.Error(err))
		utils.ResponseBadRequest(w, "Package not found or inactive", nil)

	case errors.Is(err, usecase.ErrActiveSubscription):
		h.log.Warn(operation+" rejected - already subscribed", zap.Error(err))
		utils.ResponseBadRequest(w, "You already have an active package", nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}
