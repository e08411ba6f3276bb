package authentication

import (
	"net/http"

	"meditrack/core/logger"
	"meditrack/core/router"
	"meditrack/core/types"
)

type AuthController struct {
	Service *AuthService
	Logger  logger.Logger
}

func NewAuthController(service *AuthService, logger logger.Logger) *AuthController {
	return &AuthController{
		Service: service,
		Logger:  logger,
	}
}

func (c *AuthController) Routes(router *router.RouterGroup) {
	router.POST("/login", c.Login)
}

// Login godoc
// @Summary      Authenticate
// @Description  Verifies credentials and returns a bearer token
// @Tags         core/auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Username and password"
// @Success      200  {object}  LoginResponse
// @Failure      401  {object}  types.ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login(ctx *router.Context) error {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	result, err := c.Service.Login(&req)
	if err != nil {
		c.Logger.Warn("login failed",
			logger.String("username", req.Username),
			logger.String("ip", ctx.ClientIP()))
		return ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Invalid username or password"})
	}

	return ctx.JSON(http.StatusOK, result)
}
