package store

import (
	"context"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/service"
)

// SeedDemo loads a demo admin, a test customer, a few products and two
// articles. It is a no-op when any user already exists.
func SeedDemo(ctx context.Context, db database.DB) error {
	users, err := CountUsers(ctx, db)
	if err != nil {
		return fmt.Errorf("SeedDemo: %w", err)
	}
	if users > 0 {
		return nil
	}

	accounts := []struct {
		name, email, password string
		admin                 bool
	}{
		{"admin", "admin@example.com", "admin123", true},
		{"testuser", "test@example.com", "test123", false},
	}
	for _, a := range accounts {
		hash, err := service.HashPassword(a.password)
		if err != nil {
			return fmt.Errorf("SeedDemo: %w", err)
		}
		if _, err := CreateUser(ctx, db, &model.User{
			Name:         a.name,
			Email:        a.email,
			PasswordHash: hash,
			IsAdmin:      a.admin,
		}); err != nil {
			return fmt.Errorf("SeedDemo: %w", err)
		}
	}

	products := []model.Product{
		{Name: "HP Pavilion laptop", Description: "A capable laptop for work and play.", Price: 699.99, Category: "electronics", IsActive: true, StockQuantity: 5},
		{Name: "Samsung Galaxy smartphone", Description: "Flagship phone with a 108MP camera.", Price: 549.50, Category: "electronics", IsActive: true, StockQuantity: 0},
		{Name: "Sony WH-1000XM4 headphones", Description: "Wireless noise-cancelling headphones.", Price: 249.00, Category: "accessories", IsActive: true, StockQuantity: 10},
		{Name: "Go programming handbook", Description: "A complete guide to the Go language.", Price: 15.99, Category: "books", IsActive: true, StockQuantity: 20},
	}
	for i := range products {
		if _, err := CreateProduct(ctx, db, &products[i]); err != nil {
			return fmt.Errorf("SeedDemo: %w", err)
		}
	}

	articles := []model.Article{
		{Title: "New store opening", Content: "We are happy to announce the opening of our new store!", IsPublished: true},
		{Title: "Seasonal discounts on electronics", Content: "Up to 30% off this December only!", IsPublished: true},
	}
	for i := range articles {
		if _, err := CreateArticle(ctx, db, &articles[i]); err != nil {
			return fmt.Errorf("SeedDemo: %w", err)
		}
	}

	return nil
}
