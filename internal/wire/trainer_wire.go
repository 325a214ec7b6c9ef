package wire

import (
	"gym-booking/internal/adaptor"
	"gym-booking/pkg/middleware"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTrainer(
	r chi.Router,
	trainerHandler *adaptor.TrainerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/trainers/all - List trainers (public)
	r.Get("/api/trainers/all", trainerHandler.GetTrainers)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// POST /api/trainers/create - Create trainer (admin)
		r.Post("/api/trainers/create", trainerHandler.CreateTrainer)

		// DELETE /api/trainers/{id} - Delete trainer (admin)
		r.Delete("/api/trainers/{id}", trainerHandler.DeleteTrainer)
	})
}
