package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	// ContextUserKey is where RequireAuth stores the session claims.
	ContextUserKey = "user"

	// SessionCookieName is the cookie the login handler sets.
	SessionCookieName = "session"
)

func extractClaims(c echo.Context) (*service.SessionClaims, error) {
	token := ""
	if ck, err := c.Cookie(SessionCookieName); err == nil && ck.Value != "" {
		token = ck.Value
	}
	if token == "" {
		// Bearer header fallback keeps the JSON API scriptable.
		authHeader := c.Request().Header.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			token = parts[1]
		}
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	claims, err := service.VerifySessionToken(token)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid session: %v", err))
	}
	return claims, nil
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		claims := c.Get(ContextUserKey).(*service.SessionClaims)
		if !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	})
}

// OptionalAuth attaches session claims when a valid session is present and
// lets the request through either way. Order placement uses it to link
// orders to logged-in customers.
func OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := extractClaims(c); err == nil {
			c.Set(ContextUserKey, claims)
		}
		return next(c)
	}
}
