package api

// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name          string  `form:"name" validate:"required" example:"HP Pavilion laptop"`
	Description   string  `form:"description"`
	Price         float64 `form:"price" validate:"required,gt=0" example:"699.99"`
	Category      string  `form:"category" example:"electronics"`
	StockQuantity int     `form:"stock_quantity" validate:"gte=0" example:"10"`
}
