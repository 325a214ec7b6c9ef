package request

type CreatePackageRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	DurationDays int     `json:"duration" validate:"required,gt=0"`
	Description  *string `json:"description,omitempty"`
}

type SubscribeRequest struct {
	PackageID string `json:"package_id" validate:"required,uuid4"`
}
