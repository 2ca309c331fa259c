package model

import "time"

type Product struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	Price         float64   `db:"price" json:"price"`
	Image         *string   `db:"image" json:"image"`
	Category      string    `db:"category" json:"category"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	StockQuantity int       `db:"stock_quantity" json:"stock_quantity"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// InStock reports whether the product can currently be ordered.
func (p Product) InStock() bool {
	return p.IsActive && p.StockQuantity > 0
}
