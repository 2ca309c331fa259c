package api

// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Name          string  `form:"name" validate:"required"`
	Description   string  `form:"description"`
	Price         float64 `form:"price" validate:"required,gt=0"`
	Category      string  `form:"category"`
	StockQuantity int     `form:"stock_quantity" validate:"gte=0"`
	IsActive      bool    `form:"is_active"`
	DeleteImage   bool    `form:"delete_image"`
}
