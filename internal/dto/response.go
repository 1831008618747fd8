package dto

import (
	"time"

	"github.com/coworkly/coworking-booking/internal/models"
)

type UserResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type FacilityResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type WorkspaceResponse struct {
	ID           uint               `json:"id"`
	AdminID      uint               `json:"admin_id"`
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	Description  string             `json:"description"`
	PricePerHour float64            `json:"price_per_hour"`
	Capacity     int                `json:"capacity"`
	Facilities   []FacilityResponse `json:"facilities"`
}

type BookingResponse struct {
	ID          uint                 `json:"id"`
	UserID      uint                 `json:"user_id"`
	WorkspaceID uint                 `json:"workspace_id"`
	StartTime   time.Time            `json:"start_time"`
	EndTime     time.Time            `json:"end_time"`
	TotalPrice  float64              `json:"total_price"`
	Status      models.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func ToFacilityResponse(f models.Facility) FacilityResponse {
	return FacilityResponse{ID: f.ID, Name: f.Name}
}

func ToWorkspaceResponse(w *models.Workspace) WorkspaceResponse {
	facilities := make([]FacilityResponse, len(w.Facilities))
	for i, f := range w.Facilities {
		facilities[i] = ToFacilityResponse(f)
	}
	return WorkspaceResponse{
		ID:           w.ID,
		AdminID:      w.AdminID,
		Name:         w.Name,
		Address:      w.Address,
		Description:  w.Description,
		PricePerHour: w.PricePerHour,
		Capacity:     w.Capacity,
		Facilities:   facilities,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		WorkspaceID: b.WorkspaceID,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}
