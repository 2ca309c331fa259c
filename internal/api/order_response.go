package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.OrderResponse
type OrderResponse struct {
	ID            int       `json:"id" example:"1"`
	CustomerName  string    `json:"customer_name" example:"Bob"`
	CustomerPhone string    `json:"customer_phone" example:"+15550100"`
	CustomerEmail *string   `json:"customer_email"`
	UserID        *int      `json:"user_id"`
	ProductID     int       `json:"product_id" example:"1"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity" example:"3"`
	Status        string    `json:"status" example:"new"`
	TotalPrice    float64   `json:"total_price" example:"300"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,
		UserID:        o.UserID,
		ProductID:     o.ProductID,
		ProductName:   o.ProductName,
		Quantity:      o.Quantity,
		Status:        o.Status,
		TotalPrice:    o.TotalPrice(),
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
	}
}

// swagger:model api.OrderListResponse
type OrderListResponse struct {
	Items    []OrderResponse `json:"items"`
	Page     int             `json:"page" example:"1"`
	PerPage  int             `json:"per_page" example:"20"`
	Total    int             `json:"total" example:"7"`
	NewCount int             `json:"new_count,omitempty" example:"2"`
}
