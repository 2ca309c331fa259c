package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID            int       `json:"id" example:"1"`
	Name          string    `json:"name" example:"HP Pavilion laptop"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" example:"699.99"`
	Image         *string   `json:"image"`
	Category      string    `json:"category" example:"electronics"`
	IsActive      bool      `json:"is_active" example:"true"`
	StockQuantity int       `json:"stock_quantity" example:"5"`
	InStock       bool      `json:"in_stock" example:"true"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Image:         p.Image,
		Category:      p.Category,
		IsActive:      p.IsActive,
		StockQuantity: p.StockQuantity,
		InStock:       p.InStock(),
		CreatedAt:     p.CreatedAt,
	}
}

// swagger:model api.ProductListResponse
type ProductListResponse struct {
	Items   []ProductResponse `json:"items"`
	Page    int               `json:"page" example:"1"`
	PerPage int               `json:"per_page" example:"20"`
	Total   int               `json:"total" example:"4"`
}

// CatalogResponse is the filtered public listing plus the known categories.
// swagger:model api.CatalogResponse
type CatalogResponse struct {
	Items      []ProductResponse `json:"items"`
	Categories []string          `json:"categories"`
	Page       int               `json:"page" example:"1"`
	PerPage    int               `json:"per_page" example:"12"`
	Total      int               `json:"total" example:"30"`
}
