package api

// swagger:model api.CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName  string `form:"customer_name" validate:"required" example:"Bob"`
	CustomerPhone string `form:"customer_phone" validate:"required" example:"+15550100"`
	CustomerEmail string `form:"customer_email" validate:"omitempty,email" example:"bob@example.com"`
	Quantity      int    `form:"quantity" example:"1"`
	Notes         string `form:"notes"`
}
