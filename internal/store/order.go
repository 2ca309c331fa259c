package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrInsufficientStock is returned when an order asks for more units
// than the product has left (or the product went inactive).
var ErrInsufficientStock = errors.New("insufficient stock")

const orderColumns = `o.id, o.customer_name, o.customer_phone, o.customer_email, o.user_id,
	 o.product_id, o.quantity, o.status, o.notes, o.created_at, p.name, p.price`

// CreateOrder inserts the order and decrements the product's stock in one
// transaction. The conditional UPDATE serializes concurrent placements:
// whichever commits first wins the remaining stock.
func CreateOrder(ctx context.Context, db database.DB, o *model.Order) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("CreateOrder: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE products SET stock_quantity = stock_quantity - $2
		 WHERE id = $1 AND is_active AND stock_quantity >= $2`,
		o.ProductID, o.Quantity,
	)
	if err != nil {
		return fmt.Errorf("CreateOrder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientStock
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO orders (customer_name, customer_phone, customer_email, user_id, product_id, quantity, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		o.CustomerName,
		o.CustomerPhone,
		o.CustomerEmail,
		o.UserID,
		o.ProductID,
		o.Quantity,
		o.Status,
		o.Notes,
	)
	if err := row.Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("CreateOrder: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("CreateOrder: %w", err)
	}
	return nil
}

func GetOrderByID(ctx context.Context, db database.DB, orderID int) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o JOIN products p ON p.id = o.product_id
		 WHERE o.id = $1`,
		orderID,
	)
	o := &model.Order{}
	if err := scanOrder(row, o); err != nil {
		return nil, fmt.Errorf("GetOrderByID: %w", err)
	}
	return o, nil
}

func ListOrdersByUser(ctx context.Context, db database.DB, userID int) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o JOIN products p ON p.id = o.product_id
		 WHERE o.user_id = $1
		 ORDER BY o.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	defer rows.Close()
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	return orders, nil
}

// ListOrders returns one admin page of orders, optionally restricted to a
// status, plus the unpaged match count.
func ListOrders(ctx context.Context, db database.DB, status string, page, perPage int) ([]model.Order, int, error) {
	where := ""
	args := []any{}
	if status != "" {
		where = " WHERE o.status = $1"
		args = append(args, status)
	}

	total := 0
	if err := db.QueryRow(ctx, `SELECT count(*) FROM orders o`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListOrders: %w", err)
	}

	args = append(args, perPage, (page-1)*perPage)
	query := `SELECT ` + orderColumns + `
		 FROM orders o JOIN products p ON p.id = o.product_id` + where +
		fmt.Sprintf(` ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListOrders: %w", err)
	}
	defer rows.Close()
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("ListOrders: %w", err)
	}
	return orders, total, nil
}

func RecentOrders(ctx context.Context, db database.DB, limit int) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders o JOIN products p ON p.id = o.product_id
		 ORDER BY o.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("RecentOrders: %w", err)
	}
	defer rows.Close()
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("RecentOrders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus sets the status and appends note (already stamped by
// the caller) to the order's notes. An empty note leaves notes untouched.
func UpdateOrderStatus(ctx context.Context, db database.DB, orderID int, status, note string) error {
	_, err := db.Exec(ctx,
		`UPDATE orders
		 SET status = $2,
		     notes = CASE
		         WHEN $3 = '' THEN notes
		         WHEN notes IS NULL OR notes = '' THEN $3
		         ELSE notes || E'\n' || $3
		     END
		 WHERE id = $1`,
		orderID, status, note,
	)
	if err != nil {
		return fmt.Errorf("UpdateOrderStatus: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.CustomerEmail,
		&o.UserID,
		&o.ProductID,
		&o.Quantity,
		&o.Status,
		&o.Notes,
		&o.CreatedAt,
		&o.ProductName,
		&o.ProductPrice,
	)
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
