package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking adalah satu reservasi (user, class). Pasangan itu unique —
// constraint di tabel jadi backstop kalau pengecekan aplikasi kecolongan.
type Booking struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	ClassID uuid.UUID `db:"class_id"`
}

// BookingWithClass untuk listing riwayat booking member
type BookingWithClass struct {
	Booking
	ClassName     string    `db:"class_name"`
	ClassSchedule time.Time `db:"class_schedule"`
	TrainerName   *string   `db:"trainer_name"`
}
