package repository

import (
	"errors"

	"gym-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Trainer    TrainerRepository
	Package    PackageRepository
	Membership MembershipRepository
	Class      ClassRepository
	Booking    BookingRepository
	Admission  AdmissionRunner
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Trainer:    NewTrainerRepository(db, log),
		Package:    NewPackageRepository(db, log),
		Membership: NewMembershipRepository(db, log),
		Class:      NewClassRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Admission:  NewAdmissionRunner(db, log),
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
