package auth

import (
	"net/http"
	"strings"
	"time"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

// sessionTTL bounds how long a login cookie stays valid.
const sessionTTL = 24 * time.Hour

var (
	hashPassword      = service.HashPassword
	authenticateUser  = service.AuthenticateUser
	issueSessionToken = service.IssueSessionToken
	createUser        = store.CreateUser
	getUserByID       = store.GetUserByID
	getUserByName     = store.GetUserByName
	getUserByEmail    = store.GetUserByEmail
	listOrdersByUser  = store.ListOrdersByUser
)

func sessionCookie(token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// @Summary     Register a new account
// @Description Creates a customer account. Username and email must be unique.
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username         formData string true  "Username"
// @Param       email            formData string true  "Email"
// @Param       password         formData string true  "Password (min 6 chars)"
// @Param       confirm_password formData string true  "Password confirmation"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "name or email already taken"
// @Failure     500 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		req.Email = strings.ToLower(req.Email)
		if _, err := getUserByName(ctx, db, req.Name); err == nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username already taken"})
		}
		if _, err := getUserByEmail(ctx, db, req.Email); err == nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(ctx, db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(*user))
	}
}

// @Summary     Log in
// @Description Verifies credentials and sets the HttpOnly session cookie.
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "Username"
// @Param       password formData string true "Password"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "invalid credentials"
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := getUserByName(ctx, db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueSessionToken(*user, sessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue session"})
		}

		c.SetCookie(sessionCookie(token, time.Now().Add(sessionTTL)))
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// @Summary     Log out
// @Description Clears the session cookie.
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /logout [get]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(sessionCookie("", time.Unix(0, 0)))
		return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
	}
}

// @Summary     Current user profile
// @Description Returns the logged-in user together with their orders.
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.ProfileResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /profile [get]
func ProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.SessionClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing session"})
		}

		ctx := c.Request().Context()
		user, err := getUserByID(ctx, db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		orders, err := listOrdersByUser(ctx, db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.ProfileResponse{
			User:   api.NewUserResponse(*user),
			Orders: make([]api.OrderResponse, 0, len(orders)),
		}
		for _, o := range orders {
			resp.Orders = append(resp.Orders, api.NewOrderResponse(o))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
