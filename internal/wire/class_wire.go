package wire

import (
	"gym-booking/internal/adaptor"
	"gym-booking/pkg/middleware"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClass(
	r chi.Router,
	classHandler *adaptor.ClassHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/classes - List classes with booking counts (public)
	r.Get("/api/classes", classHandler.GetClasses)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// POST /api/classes - Create class (admin)
		r.Post("/api/classes", classHandler.CreateClass)

		// PUT /api/classes/{id}/toggle - Flip active flag (admin)
		r.Put("/api/classes/{id}/toggle", classHandler.ToggleClass)

		// DELETE /api/classes/{id} - Delete class beserta bookings (admin)
		r.Delete("/api/classes/{id}", classHandler.DeleteClass)
	})
}
