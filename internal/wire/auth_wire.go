package wire

import (
	"gym-booking/internal/adaptor"
	"gym-booking/pkg/middleware"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/register - Register new member
	r.Post("/api/auth/register", authHandler.Register)

	// POST /api/auth/login - Login, returns JWT + user
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// GET /api/auth/session - Current user info
		r.Get("/api/auth/session", authHandler.GetSession)

		// PUT /api/auth/profile - Update own name/password
		r.Put("/api/auth/profile", authHandler.UpdateProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// GET /api/auth/users - List all users (admin)
		r.Get("/api/auth/users", authHandler.GetUsers)
	})
}
