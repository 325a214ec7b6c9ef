package wire

import (
	"gym-booking/internal/adaptor"
	"gym-booking/pkg/middleware"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePackage(
	r chi.Router,
	packageHandler *adaptor.PackageHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/packages - List active packages (public)
	r.Get("/api/packages", packageHandler.GetPackages)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/packages/subscribe - Subscribe to a package
		r.Post("/api/packages/subscribe", packageHandler.Subscribe)

		// GET /api/packages/my-active - Current active subscription (null if none)
		r.Get("/api/packages/my-active", packageHandler.GetMyActiveSubscription)

		// GET /api/packages/history - All subscriptions, newest first
		r.Get("/api/packages/history", packageHandler.GetSubscriptionHistory)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// GET /api/packages/all - All packages with member counts (admin)
		r.Get("/api/packages/all", packageHandler.GetAllPackages)

		// POST /api/packages - Create package (admin)
		r.Post("/api/packages", packageHandler.CreatePackage)

		// DELETE /api/packages/{id} - Delete package (admin)
		r.Delete("/api/packages/{id}", packageHandler.DeletePackage)
	})
}
