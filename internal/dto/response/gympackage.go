package response

import (
	"time"

	"gym-booking/internal/data/entity"
)

type PackageResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration"`
	Description  *string   `json:"description,omitempty"`
	IsActive     bool      `json:"is_active"`
	MemberCount  *int      `json:"member_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type SubscriptionResponse struct {
	ID        string    `json:"id"`
	PackageID string    `json:"package_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

func PackageToResponse(pkg *entity.Package) PackageResponse {
	return PackageResponse{
		ID:           pkg.ID.String(),
		Name:         pkg.Name,
		Price:        pkg.Price,
		DurationDays: pkg.DurationDays,
		Description:  pkg.Description,
		IsActive:     pkg.IsActive,
		CreatedAt:    pkg.CreatedAt,
	}
}

func SubscriptionToResponse(mp *entity.MemberPackage) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        mp.ID.String(),
		PackageID: mp.PackageID.String(),
		Name:      mp.Name,
		Price:     mp.Price,
		StartDate: mp.StartDate,
		EndDate:   mp.EndDate,
		CreatedAt: mp.CreatedAt,
	}
}
