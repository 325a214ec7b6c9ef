package response

import (
	"time"

	"gym-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	ClassID       string    `json:"class_id"`
	ClassName     string    `json:"class_name"`
	ClassSchedule time.Time `json:"class_schedule"`
	TrainerName   *string   `json:"trainer_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.BookingWithClass) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		ClassID:       booking.ClassID.String(),
		ClassName:     booking.ClassName,
		ClassSchedule: booking.ClassSchedule,
		TrainerName:   booking.TrainerName,
		CreatedAt:     booking.CreatedAt,
	}
}
