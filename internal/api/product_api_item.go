package api

import "storefront/internal/model"

// ProductAPIItem is the compact product shape served by GET /api/products.
// swagger:model api.ProductAPIItem
type ProductAPIItem struct {
	ID            int     `json:"id" example:"1"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	InStock       bool    `json:"in_stock"`
	StockQuantity int     `json:"stock_quantity"`
	Image         *string `json:"image"`
}

func NewProductAPIItem(p model.Product) ProductAPIItem {
	item := ProductAPIItem{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Category:      p.Category,
		InStock:       p.InStock(),
		StockQuantity: p.StockQuantity,
	}
	if p.Image != nil {
		url := "/static/" + *p.Image
		item.Image = &url
	}
	return item
}

// SearchResult is one hit served by GET /api/search.
// swagger:model api.SearchResult
type SearchResult struct {
	ID      int     `json:"id" example:"1"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	URL     string  `json:"url" example:"/product/1"`
	InStock bool    `json:"in_stock"`
}
