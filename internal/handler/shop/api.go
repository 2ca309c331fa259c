package shop

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	// ProductsCacheKey is where the active-products JSON is cached.
	// Admin product mutations invalidate it.
	ProductsCacheKey = "api:products"

	productsCacheTTL = time.Minute
)

var searchProducts = store.SearchProducts

// @Summary     Active products
// @Description All active products as JSON. Served from Redis when cached.
// @Tags        api
// @Produce     json
// @Success     200 {array} api.ProductAPIItem
// @Failure     500 {object} api.ErrorResponse
// @Router      /api/products [get]
func ProductsAPIHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := cch.Get(ctx, ProductsCacheKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		products, err := listActiveProducts(ctx, db, 0)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		items := make([]api.ProductAPIItem, 0, len(products))
		for _, p := range products {
			items = append(items, api.NewProductAPIItem(p))
		}

		payload, err := json.Marshal(items)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := cch.Set(ctx, ProductsCacheKey, payload, productsCacheTTL).Err(); err != nil {
			// Serve the response anyway; the next request repopulates.
			log.Warn().Err(err).Msg("failed to cache products payload")
		}
		return c.JSONBlob(http.StatusOK, payload)
	}
}

// @Summary     Product search
// @Description Case-insensitive name/description search, at most ten hits.
// @Tags        api
// @Produce     json
// @Param       q query string false "Search term"
// @Success     200 {array} api.SearchResult
// @Failure     500 {object} api.ErrorResponse
// @Router      /api/search [get]
func SearchAPIHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := c.QueryParam("q")
		results := []api.SearchResult{}
		if q == "" {
			return c.JSON(http.StatusOK, results)
		}

		products, err := searchProducts(c.Request().Context(), db, q, 10)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		for _, p := range products {
			results = append(results, api.SearchResult{
				ID:      p.ID,
				Name:    p.Name,
				Price:   p.Price,
				URL:     "/product/" + strconv.Itoa(p.ID),
				InStock: p.InStock(),
			})
		}
		return c.JSON(http.StatusOK, results)
	}
}
