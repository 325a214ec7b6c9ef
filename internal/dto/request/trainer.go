package request

type CreateTrainerRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	Specialty string  `json:"specialty" validate:"required,min=2,max=100"`
	Bio       *string `json:"bio,omitempty"`
}
