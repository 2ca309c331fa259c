package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.ArticleResponse
type ArticleResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title" example:"Grand opening"`
	Content     string    `json:"content"`
	Image       *string   `json:"image"`
	IsPublished bool      `json:"is_published" example:"true"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewArticleResponse(a model.Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Image:       a.Image,
		IsPublished: a.IsPublished,
		CreatedAt:   a.CreatedAt,
	}
}

// swagger:model api.ArticleListResponse
type ArticleListResponse struct {
	Items   []ArticleResponse `json:"items"`
	Page    int               `json:"page" example:"1"`
	PerPage int               `json:"per_page" example:"10"`
	Total   int               `json:"total" example:"3"`
}
