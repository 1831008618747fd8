package dto

import "time"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateWorkspaceRequest struct {
	Name         string  `json:"name" validate:"required"`
	Address      string  `json:"address" validate:"required"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"price_per_hour" validate:"gt=0"`
	Capacity     int     `json:"capacity" validate:"gt=0"`
	FacilityIDs  []uint  `json:"facility_ids"`
}

type UpdateWorkspaceRequest struct {
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	Description  *string  `json:"description"`
	PricePerHour *float64 `json:"price_per_hour"`
	Capacity     *int     `json:"capacity"`
	FacilityIDs  []uint   `json:"facility_ids"`
}

type CreateBookingRequest struct {
	WorkspaceID uint      `json:"workspace_id" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}
