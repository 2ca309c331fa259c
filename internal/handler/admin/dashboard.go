package admin

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/labstack/echo/v4"
)

// @Summary     Admin dashboard
// @Description Entity counts plus the ten most recent orders.
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.DashboardResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin [get]
func DashboardHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		resp := api.DashboardResponse{}
		var err error
		if resp.OrdersCount, err = countOrders(ctx, db); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if resp.NewOrdersCount, err = countOrdersByStatus(ctx, db, model.StatusNew); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if resp.ProductsCount, err = countActiveProducts(ctx, db); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if resp.ArticlesCount, err = countPublishedArticles(ctx, db); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if resp.UsersCount, err = countUsers(ctx, db); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		orders, err := recentOrders(ctx, db, 10)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp.RecentOrders = make([]api.OrderResponse, 0, len(orders))
		for _, o := range orders {
			resp.RecentOrders = append(resp.RecentOrders, api.NewOrderResponse(o))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
