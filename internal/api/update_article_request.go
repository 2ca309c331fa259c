package api

// swagger:model api.UpdateArticleRequest
type UpdateArticleRequest struct {
	Title       string `form:"title" validate:"required"`
	Content     string `form:"content" validate:"required"`
	IsPublished bool   `form:"is_published"`
	DeleteImage bool   `form:"delete_image"`
}
