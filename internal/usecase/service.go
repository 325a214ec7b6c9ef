package usecase

import (
	"gym-booking/internal/data/repository"
	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Booking BookingService
	Package PackageService
	Class   ClassService
	Trainer TrainerService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, config, log),
		Booking: NewBookingService(repo.Membership, repo.Booking, repo.Admission, log),
		Package: NewPackageService(repo.Package, repo.Membership, log),
		Class:   NewClassService(repo.Class, log),
		Trainer: NewTrainerService(repo.Trainer, log),
	}
}
