package api

// swagger:model api.ProfileResponse
type ProfileResponse struct {
	User   UserResponse    `json:"user"`
	Orders []OrderResponse `json:"orders"`
}
