package store

import (
	"context"
	"fmt"

	"storefront/internal/database"
)

func CountOrders(ctx context.Context, db database.DB) (int, error) {
	return countRows(ctx, db, `SELECT count(*) FROM orders`)
}

func CountOrdersByStatus(ctx context.Context, db database.DB, status string) (int, error) {
	count := 0
	if err := db.QueryRow(ctx, `SELECT count(*) FROM orders WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountOrdersByStatus: %w", err)
	}
	return count, nil
}

func CountActiveProducts(ctx context.Context, db database.DB) (int, error) {
	return countRows(ctx, db, `SELECT count(*) FROM products WHERE is_active`)
}

func CountPublishedArticles(ctx context.Context, db database.DB) (int, error) {
	return countRows(ctx, db, `SELECT count(*) FROM articles WHERE is_published`)
}

func CountUsers(ctx context.Context, db database.DB) (int, error) {
	return countRows(ctx, db, `SELECT count(*) FROM users`)
}

func countRows(ctx context.Context, db database.DB, query string) (int, error) {
	count := 0
	if err := db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("countRows: %w", err)
	}
	return count, nil
}
