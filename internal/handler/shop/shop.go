package shop

import (
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

const catalogPerPage = 12

var (
	latestPublishedArticles = store.LatestPublishedArticles
	listPublishedArticles   = store.ListPublishedArticles
	getArticleByID          = store.GetArticleByID
	listActiveProducts      = store.ListActiveProducts
	listCatalog             = store.ListCatalog
	listCategories          = store.ListCategories
	getProductByID          = store.GetProductByID
)

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// @Summary     Front page
// @Description Latest published news and a selection of active products.
// @Tags        shop
// @Produce     json
// @Success     200 {object} api.HomeResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      / [get]
func HomeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		news, err := latestPublishedArticles(ctx, db, 5)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		products, err := listActiveProducts(ctx, db, 8)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.HomeResponse{
			News:     make([]api.ArticleResponse, 0, len(news)),
			Products: make([]api.ProductResponse, 0, len(products)),
		}
		for _, a := range news {
			resp.News = append(resp.News, api.NewArticleResponse(a))
		}
		for _, p := range products {
			resp.Products = append(resp.Products, api.NewProductResponse(p))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Published news
// @Description Published articles, ten per page, newest first.
// @Tags        shop
// @Produce     json
// @Param       page query int false "Page number"
// @Success     200 {object} api.ArticleListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /news [get]
func NewsListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := pageParam(c)
		articles, total, err := listPublishedArticles(c.Request().Context(), db, page, 10)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.ArticleListResponse{
			Items:   make([]api.ArticleResponse, 0, len(articles)),
			Page:    page,
			PerPage: 10,
			Total:   total,
		}
		for _, a := range articles {
			resp.Items = append(resp.Items, api.NewArticleResponse(a))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Article detail
// @Tags        shop
// @Produce     json
// @Param       id path int true "Article ID"
// @Success     200 {object} api.ArticleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /news/{id} [get]
func NewsDetailHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid article ID"})
		}
		article, err := getArticleByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "article not found"})
		}
		return c.JSON(http.StatusOK, api.NewArticleResponse(*article))
	}
}

// @Summary     Product catalog
// @Description Active products filtered by category, price range and stock,
// @Description twelve per page, with the list of known categories.
// @Tags        shop
// @Produce     json
// @Param       category  query string  false "Category filter"
// @Param       min_price query number false "Minimum price"
// @Param       max_price query number false "Maximum price"
// @Param       in_stock  query string  false "Set to 1 to hide sold-out items"
// @Param       page      query int     false "Page number"
// @Success     200 {object} api.CatalogResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /catalog [get]
func CatalogHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.CatalogQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if q.Page < 1 {
			q.Page = 1
		}

		ctx := c.Request().Context()
		products, total, err := listCatalog(ctx, db, store.CatalogFilter{
			Category:    q.Category,
			MinPrice:    q.MinPrice,
			MaxPrice:    q.MaxPrice,
			InStockOnly: q.InStock == "1",
			Page:        q.Page,
			PerPage:     catalogPerPage,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		categories, err := listCategories(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.CatalogResponse{
			Items:      make([]api.ProductResponse, 0, len(products)),
			Categories: categories,
			Page:       q.Page,
			PerPage:    catalogPerPage,
			Total:      total,
		}
		for _, p := range products {
			resp.Items = append(resp.Items, api.NewProductResponse(p))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Product detail
// @Tags        shop
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /product/{id} [get]
func ProductDetailHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}
		product, err := getProductByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}
		return c.JSON(http.StatusOK, api.NewProductResponse(*product))
	}
}
