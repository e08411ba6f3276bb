package authorization

import (
	"net/http"

	"meditrack/core/logger"
	"meditrack/core/router"
	"meditrack/core/types"
)

type AuthorizationController struct {
	Service *AuthorizationService
	Logger  logger.Logger
}

func NewAuthorizationController(service *AuthorizationService, logger logger.Logger) *AuthorizationController {
	return &AuthorizationController{
		Service: service,
		Logger:  logger,
	}
}

func (c *AuthorizationController) Routes(router *router.RouterGroup) {
	router.GET("/roles", c.GetRoles)
}

// GetRoles godoc
// @Summary      List roles
// @Description  Returns all roles defined in the system
// @Tags         core/authorization
// @Produce      json
// @Success      200  {array}  RoleResponse
// @Router       /roles [get]
func (c *AuthorizationController) GetRoles(ctx *router.Context) error {
	roles, err := c.Service.GetRoles()
	if err != nil {
		c.Logger.Error("failed to fetch roles", logger.String("error", err.Error()))
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch roles"})
	}

	responses := make([]*RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, role.ToResponse())
	}
	return ctx.JSON(http.StatusOK, responses)
}
