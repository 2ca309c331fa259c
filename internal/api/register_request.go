package api

// RegisterRequest carries the registration form.
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name            string `form:"username" validate:"required" example:"alice"`
	Email           string `form:"email" validate:"required,email" example:"alice@example.com"`
	Password        string `form:"password" validate:"required,min=6" example:"Secret123!"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password" example:"Secret123!"`
}
