package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coworkly/coworking-booking/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithToken(t *testing.T, issuer *auth.TokenIssuer, authHeader string, next echo.HandlerFunc) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	return JWTAuth(issuer)(next)(c)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Minute)
	token, err := issuer.Issue(7, "customer", "john@example.com")
	require.NoError(t, err)

	var gotID uint
	var gotRole string
	err = callWithToken(t, issuer, "Bearer "+token, func(c echo.Context) error {
		gotID = UserID(c)
		gotRole, _ = c.Get(ContextUserRole).(string)
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), gotID)
	assert.Equal(t, "customer", gotRole)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Minute)

	err := callWithToken(t, issuer, "", func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Minute)
	other := auth.NewTokenIssuer("other-secret", time.Minute)
	token, err := other.Issue(7, "customer", "john@example.com")
	require.NoError(t, err)

	err = callWithToken(t, issuer, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", -time.Minute)
	token, err := issuer.Issue(7, "customer", "john@example.com")
	require.NoError(t, err)

	err = callWithToken(t, issuer, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()

	newCtx := func(role string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set(ContextUserRole, role)
		return c
	}

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	assert.NoError(t, RequireAdmin(ok)(newCtx("admin")))

	err := RequireAdmin(ok)(newCtx("customer"))
	he, isHTTP := err.(*echo.HTTPError)
	assert.True(t, isHTTP)
	assert.Equal(t, http.StatusForbidden, he.Code)
}
