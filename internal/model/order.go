package model

import "time"

// Order status lifecycle. No transition table is enforced: an admin may
// move an order between any two statuses.
const (
	StatusNew        = "new"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

var Statuses = []string{StatusNew, StatusProcessing, StatusDone, StatusCancelled}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

type Order struct {
	ID            int       `db:"id" json:"id"`
	CustomerName  string    `db:"customer_name" json:"customer_name"`
	CustomerPhone string    `db:"customer_phone" json:"customer_phone"`
	CustomerEmail *string   `db:"customer_email" json:"customer_email"`
	UserID        *int      `db:"user_id" json:"user_id"`
	ProductID     int       `db:"product_id" json:"product_id"`
	Quantity      int       `db:"quantity" json:"quantity"`
	Status        string    `db:"status" json:"status"`
	Notes         *string   `db:"notes" json:"notes"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`

	// Joined from products on read so the total always reflects the
	// product's current price.
	ProductName  string  `db:"product_name" json:"product_name"`
	ProductPrice float64 `db:"product_price" json:"product_price"`
}

// TotalPrice is computed at read time from the current product price.
func (o Order) TotalPrice() float64 {
	return o.ProductPrice * float64(o.Quantity)
}
