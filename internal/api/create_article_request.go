package api

// CreateArticleRequest carries the admin news form. The optional image
// arrives as a separate multipart file part.
// swagger:model api.CreateArticleRequest
type CreateArticleRequest struct {
	Title       string `form:"title" validate:"required" example:"Grand opening"`
	Content     string `form:"content" validate:"required"`
	IsPublished bool   `form:"is_published" example:"true"`
}
