package authorization

import (
	"net/http"

	"meditrack/core/router"
	"meditrack/core/types"
)

// RequireRole restricts a route to users holding one of the given roles.
// Expects the authentication middleware to have set "user_role" on the context.
func RequireRole(roles ...string) router.Middleware {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx *router.Context) error {
			role := ctx.GetString("user_role")
			if role == "" {
				return ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
			}
			if !allowed[role] {
				return ctx.JSON(http.StatusForbidden, types.ErrorResponse{Error: "Insufficient permissions"})
			}
			return next(ctx)
		}
	}
}
