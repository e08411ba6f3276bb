package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathParams(t *testing.T) {
	r := New()
	api := r.Group("/api")
	api.GET("/items/:id", func(ctx *Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"id": ctx.Param("id")})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/42", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "42", body["id"])
}

func TestLiteralRouteWinsByRegistrationOrder(t *testing.T) {
	r := New()
	api := r.Group("/api")
	api.GET("/users/me", func(ctx *Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"route": "me"})
	})
	api.GET("/users/:id", func(ctx *Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"route": "id"})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "me", body["route"])
}

func TestGroupMiddlewareAppliesToRoutesRegisteredAfterUse(t *testing.T) {
	r := New()
	api := r.Group("/api")
	api.Use(func(next HandlerFunc) HandlerFunc {
		return func(ctx *Context) error {
			ctx.Set("user_id", uint(7))
			return next(ctx)
		}
	})
	api.GET("/me", func(ctx *Context) error {
		return ctx.JSON(http.StatusOK, map[string]uint{"user_id": ctx.GetUint("user_id")})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	var body map[string]uint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint(7), body["user_id"])
}

func TestSiblingGroupsHaveIndependentMiddleware(t *testing.T) {
	r := New()

	protected := r.Group("/api")
	protected.Use(func(next HandlerFunc) HandlerFunc {
		return func(ctx *Context) error {
			return ctx.JSON(http.StatusUnauthorized, map[string]string{"error": "denied"})
		}
	})
	protected.GET("/secret", func(ctx *Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"ok": "yes"})
	})

	public := r.Group("/api/auth")
	public.POST("/login", func(ctx *Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"ok": "yes"})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/secret", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShouldBindJSONValidatesBindingTags(t *testing.T) {
	type payload struct {
		Name string `json:"name" binding:"required,min=3"`
	}

	r := New()
	api := r.Group("/api")
	api.POST("/things", func(ctx *Context) error {
		var p payload
		if err := ctx.ShouldBindJSON(&p); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return ctx.JSON(http.StatusCreated, p)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/things", strings.NewReader(`{"name":"ab"}`))
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/things", strings.NewReader(`{"name":"abc"}`))
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	r := New()
	r.Group("/api").GET("/known", func(ctx *Context) error {
		return ctx.JSON(http.StatusOK, nil)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
