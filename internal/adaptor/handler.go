package adaptor

import (
	"gym-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Class   *ClassHandler
	Package *PackageHandler
	Trainer *TrainerHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Booking: NewBookingHandler(service.Booking, log),
		Class:   NewClassHandler(service.Class, log),
		Package: NewPackageHandler(service.Package, log),
		Trainer: NewTrainerHandler(service.Trainer, log),
	}
}
