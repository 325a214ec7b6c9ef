package entity

import (
	"time"

	"github.com/google/uuid"
)

type FitnessClass struct {
	Base
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	Schedule    time.Time  `db:"schedule"`
	Capacity    int        `db:"capacity"`
	IsActive    bool       `db:"is_active"`
	TrainerID   *uuid.UUID `db:"trainer_id"`
}

// ClassWithCount membawa class plus jumlah booking saat ini (derived)
type ClassWithCount struct {
	FitnessClass
	BookingCount int     `db:"booking_count"`
	TrainerName  *string `db:"trainer_name"`
}
