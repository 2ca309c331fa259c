package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	IsAdmin   bool      `json:"is_admin" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// swagger:model api.UserListResponse
type UserListResponse struct {
	Items   []UserResponse `json:"items"`
	Page    int            `json:"page" example:"1"`
	PerPage int            `json:"per_page" example:"20"`
	Total   int            `json:"total" example:"42"`
}
