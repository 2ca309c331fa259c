package admin

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/database"

	"github.com/labstack/echo/v4"
)

// @Summary     Registered users
// @Description Users newest first, twenty per page.
// @Tags        admin
// @Produce     json
// @Param       page query int false "Page number"
// @Success     200 {object} api.UserListResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users [get]
func UsersListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := pageParam(c)
		users, total, err := listUsers(c.Request().Context(), db, page, adminPerPage)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.UserListResponse{
			Items:   make([]api.UserResponse, 0, len(users)),
			Page:    page,
			PerPage: adminPerPage,
			Total:   total,
		}
		for _, u := range users {
			resp.Items = append(resp.Items, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
