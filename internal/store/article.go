package store

import (
	"context"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

func GetArticleByID(ctx context.Context, db database.DB, articleID int) (*model.Article, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, content, image, is_published, created_at
		 FROM articles WHERE id = $1`,
		articleID,
	)
	a := &model.Article{}
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Image,
		&a.IsPublished,
		&a.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetArticleByID: %w", err)
	}
	return a, nil
}

// LatestPublishedArticles returns up to limit published articles, newest first.
func LatestPublishedArticles(ctx context.Context, db database.DB, limit int) ([]model.Article, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, content, image, is_published, created_at
		 FROM articles
		 WHERE is_published
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("LatestPublishedArticles: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

func ListPublishedArticles(ctx context.Context, db database.DB, page, perPage int) ([]model.Article, int, error) {
	total := 0
	if err := db.QueryRow(ctx, `SELECT count(*) FROM articles WHERE is_published`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListPublishedArticles: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT id, title, content, image, is_published, created_at
		 FROM articles
		 WHERE is_published
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListPublishedArticles: %w", err)
	}
	defer rows.Close()
	articles, err := scanArticles(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("ListPublishedArticles: %w", err)
	}
	return articles, total, nil
}

// ListArticles returns every article for the admin view, drafts included.
func ListArticles(ctx context.Context, db database.DB, page, perPage int) ([]model.Article, int, error) {
	total := 0
	if err := db.QueryRow(ctx, `SELECT count(*) FROM articles`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListArticles: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT id, title, content, image, is_published, created_at
		 FROM articles
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListArticles: %w", err)
	}
	defer rows.Close()
	articles, err := scanArticles(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("ListArticles: %w", err)
	}
	return articles, total, nil
}

func CreateArticle(ctx context.Context, db database.DB, a *model.Article) (*model.Article, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO articles (title, content, image, is_published)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.Title,
		a.Content,
		a.Image,
		a.IsPublished,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateArticle: %w", err)
	}
	return a, nil
}

func UpdateArticle(ctx context.Context, db database.DB, a *model.Article) error {
	_, err := db.Exec(ctx,
		`UPDATE articles SET title = $1, content = $2, image = $3, is_published = $4
		 WHERE id = $5`,
		a.Title,
		a.Content,
		a.Image,
		a.IsPublished,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateArticle: %w", err)
	}
	return nil
}

func DeleteArticle(ctx context.Context, db database.DB, articleID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM articles WHERE id = $1`,
		articleID,
	)
	if err != nil {
		return fmt.Errorf("DeleteArticle: %w", err)
	}
	return nil
}

func scanArticles(rows pgx.Rows) ([]model.Article, error) {
	var articles []model.Article
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Content,
			&a.Image,
			&a.IsPublished,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}
