package response

import (
	"time"

	"gym-booking/internal/data/entity"
)

type TrainerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Bio       *string   `json:"bio,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func TrainerToResponse(trainer *entity.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:        trainer.ID.String(),
		Name:      trainer.Name,
		Specialty: trainer.Specialty,
		Bio:       trainer.Bio,
		ImageURL:  trainer.ImageURL,
		CreatedAt: trainer.CreatedAt,
	}
}
