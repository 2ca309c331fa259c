package store

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, description, price, image, category, is_active, stock_quantity, created_at`

// CatalogFilter composes the public catalog query. Zero-value fields
// impose no constraint; inactive products are always excluded.
type CatalogFilter struct {
	Category    string
	MinPrice    *float64
	MaxPrice    *float64
	InStockOnly bool
	Page        int
	PerPage     int
}

func GetProductByID(ctx context.Context, db database.DB, productID int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		productID,
	)
	p := &model.Product{}
	if err := scanProduct(row, p); err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", err)
	}
	return p, nil
}

// ListActiveProducts returns active products, newest first. limit <= 0
// returns all of them.
func ListActiveProducts(ctx context.Context, db database.DB, limit int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListActiveProducts: %w", err)
	}
	defer rows.Close()
	products, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("ListActiveProducts: %w", err)
	}
	return products, nil
}

// ListCatalog applies the filter conjunctively and returns one page of
// products plus the unpaged match count.
func ListCatalog(ctx context.Context, db database.DB, f CatalogFilter) ([]model.Product, int, error) {
	where := []string{"is_active"}
	args := []any{}
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		where = append(where, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		where = append(where, fmt.Sprintf("price <= $%d", len(args)))
	}
	if f.InStockOnly {
		where = append(where, "stock_quantity > 0")
	}
	clause := " WHERE " + strings.Join(where, " AND ")

	total := 0
	if err := db.QueryRow(ctx, `SELECT count(*) FROM products`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListCatalog: %w", err)
	}

	args = append(args, f.PerPage, (f.Page-1)*f.PerPage)
	query := `SELECT ` + productColumns + ` FROM products` + clause +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListCatalog: %w", err)
	}
	defer rows.Close()
	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("ListCatalog: %w", err)
	}
	return products, total, nil
}

// ListCategories returns the distinct non-empty category labels.
func ListCategories(ctx context.Context, db database.DB) ([]string, error) {
	rows, err := db.Query(ctx,
		`SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return categories, nil
}

// ListProducts returns every product for the admin view, inactive included.
func ListProducts(ctx context.Context, db database.DB, page, perPage int) ([]model.Product, int, error) {
	total := 0
	if err := db.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListProducts: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()
	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("ListProducts: %w", err)
	}
	return products, total, nil
}

// SearchProducts matches the query against name and description,
// case-insensitively.
func SearchProducts(ctx context.Context, db database.DB, q string, limit int) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name ILIKE $1 OR description ILIKE $1
		 LIMIT $2`,
		"%"+q+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("SearchProducts: %w", err)
	}
	defer rows.Close()
	products, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("SearchProducts: %w", err)
	}
	return products, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, image, category, is_active, stock_quantity)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		p.Name,
		p.Description,
		p.Price,
		p.Image,
		p.Category,
		p.IsActive,
		p.StockQuantity,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

func UpdateProduct(ctx context.Context, db database.DB, p *model.Product) error {
	_, err := db.Exec(ctx,
		`UPDATE products
		 SET name = $1, description = $2, price = $3, image = $4,
		     category = $5, is_active = $6, stock_quantity = $7
		 WHERE id = $8`,
		p.Name,
		p.Description,
		p.Price,
		p.Image,
		p.Category,
		p.IsActive,
		p.StockQuantity,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProduct: %w", err)
	}
	return nil
}

func DeleteProduct(ctx context.Context, db database.DB, productID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	return nil
}

// ToggleProduct flips is_active and returns the new value.
func ToggleProduct(ctx context.Context, db database.DB, productID int) (bool, error) {
	row := db.QueryRow(ctx,
		`UPDATE products SET is_active = NOT is_active WHERE id = $1 RETURNING is_active`,
		productID,
	)
	var active bool
	if err := row.Scan(&active); err != nil {
		return false, fmt.Errorf("ToggleProduct: %w", err)
	}
	return active, nil
}

// CountOrdersForProduct guards product deletion: a product with orders
// must not be removed.
func CountOrdersForProduct(ctx context.Context, db database.DB, productID int) (int, error) {
	count := 0
	if err := db.QueryRow(ctx,
		`SELECT count(*) FROM orders WHERE product_id = $1`,
		productID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountOrdersForProduct: %w", err)
	}
	return count, nil
}

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Image,
		&p.Category,
		&p.IsActive,
		&p.StockQuantity,
		&p.CreatedAt,
	)
}

func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
