package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newCookieContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	// no cookie, no header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx)
	require.Error(t, err)

	// bad header format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx)
	require.Error(t, err)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx)
	require.Error(t, err)

	// valid bearer token
	tok, err := service.IssueSessionToken(model.User{ID: 1, IsAdmin: true}, time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	claims, err := extractClaims(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.True(t, claims.IsAdmin)

	// valid session cookie
	ctx, _ = newCookieContext(tok)
	claims, err = extractClaims(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)

	// bad cookie value
	ctx, _ = newCookieContext("garbage")
	_, err = extractClaims(ctx)
	require.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	tok, err := service.IssueSessionToken(model.User{ID: 2}, time.Minute)
	require.NoError(t, err)

	ctx, rec := newCookieContext(tok)
	called := false
	handler := RequireAuth(func(c echo.Context) error {
		called = true
		cl := c.Get(ContextUserKey).(*service.SessionClaims)
		require.Equal(t, 2, cl.UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	ctx, _ = newContext("")
	called = false
	err = RequireAuth(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "adminsecret")
	adminTok, err := service.IssueSessionToken(model.User{ID: 3, IsAdmin: true}, time.Minute)
	require.NoError(t, err)
	userTok, err := service.IssueSessionToken(model.User{ID: 4, IsAdmin: false}, time.Minute)
	require.NoError(t, err)

	ctx, rec := newCookieContext(adminTok)
	called := false
	err = RequireAdmin(func(c echo.Context) error { called = true; return c.String(http.StatusOK, "admin") })(ctx)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	ctx, _ = newCookieContext(userTok)
	called = false
	err = RequireAdmin(func(c echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestOptionalAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "optsecret")
	tok, err := service.IssueSessionToken(model.User{ID: 7}, time.Minute)
	require.NoError(t, err)

	// with session: claims attached
	ctx, _ := newCookieContext(tok)
	err = OptionalAuth(func(c echo.Context) error {
		cl, ok := c.Get(ContextUserKey).(*service.SessionClaims)
		require.True(t, ok)
		require.Equal(t, 7, cl.UserID)
		return nil
	})(ctx)
	require.NoError(t, err)

	// without session: request still goes through
	ctx, _ = newContext("")
	called := false
	err = OptionalAuth(func(c echo.Context) error {
		called = true
		require.Nil(t, c.Get(ContextUserKey))
		return nil
	})(ctx)
	require.NoError(t, err)
	require.True(t, called)
}
