package request

type CreateClassRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	Schedule    string  `json:"schedule" validate:"required"` // RFC3339
	Capacity    int     `json:"capacity" validate:"required,gt=0"`
	TrainerID   *string `json:"trainer_id,omitempty" validate:"omitempty,uuid4"`
}
