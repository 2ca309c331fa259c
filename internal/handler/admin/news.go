package admin

import (
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// @Summary     All articles
// @Description Every article, drafts included, twenty per page.
// @Tags        admin
// @Produce     json
// @Param       page query int false "Page number"
// @Success     200 {object} api.ArticleListResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/news [get]
func NewsListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := pageParam(c)
		articles, total, err := listArticles(c.Request().Context(), db, page, adminPerPage)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.ArticleListResponse{
			Items:   make([]api.ArticleResponse, 0, len(articles)),
			Page:    page,
			PerPage: adminPerPage,
			Total:   total,
		}
		for _, a := range articles {
			resp.Items = append(resp.Items, api.NewArticleResponse(a))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create an article
// @Description Creates a news item with an optional multipart image.
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Param       title        formData string true  "Title"
// @Param       content      formData string true  "Body text"
// @Param       is_published formData boolean false "Publish immediately"
// @Param       image        formData file   false "Cover image"
// @Success     201 {object} api.ArticleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/news [post]
func CreateArticleHandler(db database.DB, uploadDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		article := &model.Article{
			Title:       req.Title,
			Content:     req.Content,
			IsPublished: req.IsPublished,
		}
		if fh, err := c.FormFile("image"); err == nil {
			rel, err := saveImage(fh, uploadDir, "news")
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store image"})
			}
			article.Image = &rel
		}

		if _, err := createArticle(c.Request().Context(), db, article); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, api.NewArticleResponse(*article))
	}
}

// @Summary     Edit an article
// @Description Updates a news item. A new image replaces the old one;
// @Description delete_image removes it.
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Param       id           path     int    true  "Article ID"
// @Param       title        formData string true  "Title"
// @Param       content      formData string true  "Body text"
// @Param       is_published formData boolean false "Published"
// @Param       delete_image formData boolean false "Remove the current image"
// @Param       image        formData file   false "Replacement image"
// @Success     200 {object} api.ArticleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/news/{id} [put]
func UpdateArticleHandler(db database.DB, uploadDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		var req api.UpdateArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		article, err := getArticleByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
		}

		article.Title = req.Title
		article.Content = req.Content
		article.IsPublished = req.IsPublished

		oldImage := article.Image
		if fh, err := c.FormFile("image"); err == nil {
			rel, err := saveImage(fh, uploadDir, "news")
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store image"})
			}
			article.Image = &rel
		} else if req.DeleteImage {
			article.Image = nil
		}

		if err := updateArticle(ctx, db, article); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if oldImage != nil && (article.Image == nil || *article.Image != *oldImage) {
			if err := removeImage(uploadDir, *oldImage); err != nil {
				log.Warn().Err(err).Str("image", *oldImage).Msg("failed to remove replaced image")
			}
		}
		return c.JSON(http.StatusOK, api.NewArticleResponse(*article))
	}
}

// @Summary     Delete an article
// @Tags        admin
// @Produce     json
// @Param       id path int true "Article ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/news/{id} [delete]
func DeleteArticleHandler(db database.DB, uploadDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}

		ctx := c.Request().Context()
		article, err := getArticleByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
		}
		if err := deleteArticle(ctx, db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if article.Image != nil {
			if err := removeImage(uploadDir, *article.Image); err != nil {
				log.Warn().Err(err).Str("image", *article.Image).Msg("failed to remove article image")
			}
		}
		return c.NoContent(http.StatusNoContent)
	}
}
