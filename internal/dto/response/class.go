package response

import (
	"time"

	"gym-booking/internal/data/entity"
)

type ClassResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Schedule     time.Time `json:"schedule"`
	Capacity     int       `json:"capacity"`
	IsActive     bool      `json:"is_active"`
	TrainerID    *string   `json:"trainer_id,omitempty"`
	TrainerName  *string   `json:"trainer_name,omitempty"`
	BookingCount int       `json:"booking_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func ClassToResponse(class *entity.FitnessClass) ClassResponse {
	resp := ClassResponse{
		ID:          class.ID.String(),
		Name:        class.Name,
		Description: class.Description,
		Schedule:    class.Schedule,
		Capacity:    class.Capacity,
		IsActive:    class.IsActive,
		CreatedAt:   class.CreatedAt,
	}
	if class.TrainerID != nil {
		id := class.TrainerID.String()
		resp.TrainerID = &id
	}
	return resp
}

func ClassWithCountToResponse(class *entity.ClassWithCount) ClassResponse {
	resp := ClassToResponse(&class.FitnessClass)
	resp.BookingCount = class.BookingCount
	resp.TrainerName = class.TrainerName
	return resp
}
