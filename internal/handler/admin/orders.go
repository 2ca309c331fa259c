package admin

import (
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/labstack/echo/v4"
)

// @Summary     All orders
// @Description Orders newest first, twenty per page, optionally filtered by
// @Description status. Includes the count of unprocessed orders.
// @Tags        admin
// @Produce     json
// @Param       status query string false "Status filter" Enums(new, processing, done, cancelled)
// @Param       page   query int    false "Page number"
// @Success     200 {object} api.OrderListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/orders [get]
func OrdersListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := c.QueryParam("status")
		if status != "" && !model.ValidStatus(status) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "unknown order status"})
		}

		ctx := c.Request().Context()
		page := pageParam(c)
		orders, total, err := listOrders(ctx, db, status, page, adminPerPage)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		newCount, err := countOrdersByStatus(ctx, db, model.StatusNew)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.OrderListResponse{
			Items:    make([]api.OrderResponse, 0, len(orders)),
			Page:     page,
			PerPage:  adminPerPage,
			Total:    total,
			NewCount: newCount,
		}
		for _, o := range orders {
			resp.Items = append(resp.Items, api.NewOrderResponse(o))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Order detail
// @Tags        admin
// @Produce     json
// @Param       id path int true "Order ID"
// @Success     200 {object} api.OrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/orders/{id} [get]
func OrderDetailHandler(db database.DB) echo.HandlerFunc {
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

// @Summary     Update order status
// @Description Sets the status and appends an optional timestamped note.
// @Description Existing notes are kept.
// @Tags        admin
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id     path     int    true  "Order ID"
// @Param       status formData string true  "New status" Enums(new, processing, done, cancelled)
// @Param       note   formData string false "Admin note"
// @Success     200 {object} api.OrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/orders/{id} [put]
func UpdateOrderStatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid order ID"})
		}

		var req api.UpdateOrderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if _, err := getOrderByID(ctx, db, id); err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "order not found"})
		}

		note := req.Note
		if note != "" {
			note = fmt.Sprintf("[admin %s]: %s", timeNow().Format("2006-01-02 15:04"), note)
		}
		if err := updateOrderStatus(ctx, db, id, req.Status, note); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		order, err := getOrderByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewOrderResponse(*order))
	}
}
