package admin

import (
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/handler/shop"
	"storefront/internal/model"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// @Summary     All products
// @Description Every product, inactive included, twenty per page.
// @Tags        admin
// @Produce     json
// @Param       page query int false "Page number"
// @Success     200 {object} api.ProductListResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/products [get]
func ProductsListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := pageParam(c)
		products, total, err := listProducts(c.Request().Context(), db, page, adminPerPage)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.ProductListResponse{
			Items:   make([]api.ProductResponse, 0, len(products)),
			Page:    page,
			PerPage: adminPerPage,
			Total:   total,
		}
		for _, p := range products {
			resp.Items = append(resp.Items, api.NewProductResponse(p))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a product
// @Description Creates a product with an optional multipart image. The
// @Description products API cache is invalidated asynchronously.
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Param       name           formData string true  "Name"
// @Param       description    formData string false "Description"
// @Param       price          formData number true  "Price"
// @Param       category       formData string false "Category"
// @Param       stock_quantity formData int    false "Stock on hand"
// @Param       image          formData file   false "Product image"
// @Success     201 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/products [post]
func CreateProductHandler(db database.DB, cch cache.Cache, wp worker.Pool, uploadDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		product := &model.Product{
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			Category:      req.Category,
			StockQuantity: req.StockQuantity,
			IsActive:      true,
		}
		if fh, err := c.FormFile("image"); err == nil {
			rel, err := saveImage(fh, uploadDir, "products")
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store image"})
			}
			product.Image = &rel
		}

		if _, err := createProduct(c.Request().Context(), db, product); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		invalidateProductsCache(wp, cch, shop.ProductsCacheKey)
		return c.JSON(http.StatusCreated, api.NewProductResponse(*product))
	}
}

// @Summary     Edit a product
// @Description Updates a product. A new image replaces the old one;
// @Description delete_image removes it.
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Param       id             path     int    true  "Product ID"
// @Param       name           formData string true  "Name"
// @Param       description    formData string false "Description"
// @Param       price          formData number true  "Price"
// @Param       category       formData string false "Category"
// @Param       stock_quantity formData int    false "Stock on hand"
// @Param       is_active      formData boolean false "Visible in the catalog"
// @Param       delete_image   formData boolean false "Remove the current image"
// @Param       image          formData file   false "Replacement image"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/products/{id} [put]
func UpdateProductHandler(db database.DB, cch cache.Cache, wp worker.Pool, uploadDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}

		var req api.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		product, err := getProductByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}

		product.Name = req.Name
		product.Description = req.Description
		product.Price = req.Price
		product.Category = req.Category
		product.StockQuantity = req.StockQuantity
		product.IsActive = req.IsActive

		oldImage := product.Image
		if fh, err := c.FormFile("image"); err == nil {
			rel, err := saveImage(fh, uploadDir, "products")
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store image"})
			}
			product.Image = &rel
		} else if req.DeleteImage {
			product.Image = nil
		}

		if err := updateProduct(ctx, db, product); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if oldImage != nil && (product.Image == nil || *product.Image != *oldImage) {
			if err := removeImage(uploadDir, *oldImage); err != nil {
				log.Warn().Err(err).Str("image", *oldImage).Msg("failed to remove replaced image")
			}
		}

		invalidateProductsCache(wp, cch, shop.ProductsCacheKey)
		return c.JSON(http.StatusOK, api.NewProductResponse(*product))
	}
}

// @Summary     Delete a product
// @Description Refuses to delete a product that has orders; deactivate it
// @Description instead.
// @Tags        admin
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "product has orders"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/products/{id} [delete]
func DeleteProductHandler(db database.DB, cch cache.Cache, wp worker.Pool, uploadDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}

		ctx := c.Request().Context()
		product, err := getProductByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}

		orders, err := countOrdersForProduct(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if orders > 0 {
			return c.JSON(http.StatusConflict, api.ErrorResponse{
				Message: "product has orders and cannot be deleted; deactivate it instead",
			})
		}

		if err := deleteProduct(ctx, db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if product.Image != nil {
			if err := removeImage(uploadDir, *product.Image); err != nil {
				log.Warn().Err(err).Str("image", *product.Image).Msg("failed to remove product image")
			}
		}

		invalidateProductsCache(wp, cch, shop.ProductsCacheKey)
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Toggle product visibility
// @Description Flips is_active and reports the new value.
// @Tags        admin
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} map[string]bool
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/products/{id}/toggle [post]
func ToggleProductHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}

		active, err := toggleProduct(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}

		invalidateProductsCache(wp, cch, shop.ProductsCacheKey)
		return c.JSON(http.StatusOK, map[string]bool{"is_active": active})
	}
}
