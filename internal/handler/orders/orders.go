package orders

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	getProductByID = store.GetProductByID
	getOrderByID   = store.GetOrderByID
	getUserByID    = store.GetUserByID
	createOrder    = store.CreateOrder
)

// @Summary     Order form context
// @Description Returns the product being ordered. 409 when it is sold out.
// @Tags        orders
// @Produce     json
// @Param       product_id path int true "Product ID"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "product is out of stock"
// @Router      /order/create/{product_id} [get]
func OrderFormHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}
		product, err := getProductByID(c.Request().Context(), db, id)
		if err != nil || !product.IsActive {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}
		if !product.InStock() {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "product is out of stock"})
		}
		return c.JSON(http.StatusOK, api.NewProductResponse(*product))
	}
}

// @Summary     Place an order
// @Description Validates the order form, decrements stock and records the
// @Description order in one transaction. Logged-in customers get the order
// @Description linked to their account.
// @Tags        orders
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       product_id     path     int    true  "Product ID"
// @Param       customer_name  formData string true  "Customer name"
// @Param       customer_phone formData string true  "Customer phone"
// @Param       customer_email formData string false "Customer email"
// @Param       quantity       formData int    false "Quantity (defaults to 1)"
// @Param       notes          formData string false "Order notes"
// @Success     201 {object} api.OrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "not enough stock"
// @Failure     500 {object} api.ErrorResponse
// @Router      /order/create/{product_id} [post]
func CreateOrderHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}

		var req api.CreateOrderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Quantity < 1 {
			req.Quantity = 1
		}

		ctx := c.Request().Context()
		product, err := getProductByID(ctx, db, id)
		if err != nil || !product.IsActive {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}
		if req.Quantity > product.StockQuantity {
			return c.JSON(http.StatusConflict, api.ErrorResponse{
				Message: fmt.Sprintf("only %d left in stock", product.StockQuantity),
			})
		}

		order := &model.Order{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			ProductID:     product.ID,
			Quantity:      req.Quantity,
			Status:        model.StatusNew,
		}
		if req.CustomerEmail != "" {
			order.CustomerEmail = &req.CustomerEmail
		}
		if req.Notes != "" {
			order.Notes = &req.Notes
		}

		if claims, ok := c.Get(middleware.ContextUserKey).(*service.SessionClaims); ok && claims.UserID != 0 {
			userID := claims.UserID
			order.UserID = &userID
			if order.CustomerEmail == nil {
				if user, err := getUserByID(ctx, db, userID); err == nil {
					email := user.Email
					order.CustomerEmail = &email
				}
			}
		}

		if err := createOrder(ctx, db, order); err != nil {
			if errors.Is(err, store.ErrInsufficientStock) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{
					Message: fmt.Sprintf("only %d left in stock", product.StockQuantity),
				})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		order.ProductName = product.Name
		order.ProductPrice = product.Price
		log.Info().
			Int("order_id", order.ID).
			Int("product_id", product.ID).
			Int("quantity", order.Quantity).
			Msg("order placed")
		return c.JSON(http.StatusCreated, api.NewOrderResponse(*order))
	}
}

// @Summary     Order confirmation
// @Tags        orders
// @Produce     json
// @Param       id path int true "Order ID"
// @Success     200 {object} api.OrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /order/success/{id} [get]
func OrderSuccessHandler(db database.DB) echo.HandlerFunc {
	return orderByID(db)
}

// @Summary     Order status
// @Tags        orders
// @Produce     json
// @Param       id path int true "Order ID"
// @Success     200 {object} api.OrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /order/status/{id} [get]
func OrderStatusHandler(db database.DB) echo.HandlerFunc {
	return orderByID(db)
}

func orderByID(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid order ID"})
		}
		order, err := getOrderByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "order not found"})
		}
		return c.JSON(http.StatusOK, api.NewOrderResponse(*order))
	}
}
