package authentication

import (
	"net/http"
	"strings"

	"meditrack/core/router"
	"meditrack/core/types"
)

// Middleware parses the Bearer token and stores the caller's identity on the context
func Middleware(secret string) router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx *router.Context) error {
			header := ctx.Request.Header.Get("Authorization")
			if header == "" {
				return ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Missing authorization header"})
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Invalid authorization header"})
			}

			claims, err := parseToken(tokenString, secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Invalid or expired token"})
			}

			if userId, ok := claims["user_id"].(float64); ok {
				ctx.Set("user_id", uint(userId))
			}
			if role, ok := claims["role"].(string); ok {
				ctx.Set("user_role", role)
			}

			return next(ctx)
		}
	}
}
