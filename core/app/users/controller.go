package users

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"meditrack/core/logger"
	"meditrack/core/router"
	"meditrack/core/types"
)

type UserController struct {
	Service *UserService
	Logger  logger.Logger
}

func NewUserController(service *UserService, logger logger.Logger) *UserController {
	return &UserController{
		Service: service,
		Logger:  logger,
	}
}

func (c *UserController) Routes(router *router.RouterGroup) {
	router.GET("/users", c.GetAll)
	router.GET("/users/stats", c.GetStats)
	router.GET("/users/me", c.GetProfile)
	router.PUT("/users/me", c.UpdateProfile)
	router.POST("/users/me/password", c.ChangePassword)
	router.GET("/users/:id", c.GetById)
	router.POST("/users", c.Create)
	router.PUT("/users/:id", c.Update)
	router.DELETE("/users/:id", c.Delete)
}

// GetAll godoc
// @Summary      List users
// @Description  Returns users paginated with optional search and sorting
// @Tags         core/users
// @Produce      json
// @Param        page       query  int     false  "Page number"
// @Param        limit      query  int     false  "Items per page"
// @Param        search     query  string  false  "Search term"
// @Param        sort_by    query  string  false  "Sort field"
// @Param        sort_desc  query  string  false  "Sort direction"
// @Success      200  {object}  types.PaginatedResponse
// @Router       /users [get]
func (c *UserController) GetAll(ctx *router.Context) error {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	result, err := c.Service.GetAll(page, limit, ctx.Query("search"), ctx.Query("sort_by"), ctx.Query("sort_desc"))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch users"})
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetStats godoc
// @Summary      User statistics
// @Description  Returns user counts grouped by role
// @Tags         core/users
// @Produce      json
// @Success      200  {array}  types.ChartPoint
// @Router       /users/stats [get]
func (c *UserController) GetStats(ctx *router.Context) error {
	stats, err := c.Service.GetStats()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch user stats"})
	}
	return ctx.JSON(http.StatusOK, stats)
}

// GetProfile godoc
// @Summary      Current user profile
// @Tags         core/users
// @Produce      json
// @Success      200  {object}  UserResponse
// @Router       /users/me [get]
func (c *UserController) GetProfile(ctx *router.Context) error {
	userId := ctx.GetUint("user_id")
	if userId == 0 {
		return ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
	}

	user, err := c.Service.GetById(userId)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "User not found"})
	}
	return ctx.JSON(http.StatusOK, user.ToResponse())
}

// UpdateProfile godoc
// @Summary      Update current user profile
// @Tags         core/users
// @Accept       json
// @Produce      json
// @Param        user  body  UpdateUserRequest  true  "Profile fields"
// @Success      200  {object}  UserResponse
// @Router       /users/me [put]
func (c *UserController) UpdateProfile(ctx *router.Context) error {
	userId := ctx.GetUint("user_id")
	if userId == 0 {
		return ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}
	// profile updates never change the caller's role
	req.RoleId = 0

	user, err := c.Service.Update(userId, &req)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to update profile"})
	}
	return ctx.JSON(http.StatusOK, user.ToResponse())
}

// ChangePassword godoc
// @Summary      Change current user's password
// @Tags         core/users
// @Accept       json
// @Produce      json
// @Param        passwords  body  ChangePasswordRequest  true  "Current and new password"
// @Success      200  {object}  types.SuccessResponse
// @Router       /users/me/password [post]
func (c *UserController) ChangePassword(ctx *router.Context) error {
	userId := ctx.GetUint("user_id")
	if userId == 0 {
		return ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	if err := c.Service.ChangePassword(userId, &req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "Password updated"})
}

// GetById godoc
// @Summary      Get user
// @Tags         core/users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  UserResponse
// @Router       /users/{id} [get]
func (c *UserController) GetById(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid user id"})
	}

	user, err := c.Service.GetById(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "User not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch user"})
	}
	return ctx.JSON(http.StatusOK, user.ToResponse())
}

// Create godoc
// @Summary      Create user
// @Tags         core/users
// @Accept       json
// @Produce      json
// @Param        user  body  CreateUserRequest  true  "User fields"
// @Success      201  {object}  UserResponse
// @Router       /users [post]
func (c *UserController) Create(ctx *router.Context) error {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	user, err := c.Service.Create(&req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(http.StatusCreated, user.ToResponse())
}

// Update godoc
// @Summary      Update user
// @Tags         core/users
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "User id"
// @Param        user  body  UpdateUserRequest  true  "User fields"
// @Success      200  {object}  UserResponse
// @Router       /users/{id} [put]
func (c *UserController) Update(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid user id"})
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	user, err := c.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "User not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to update user"})
	}
	return ctx.JSON(http.StatusOK, user.ToResponse())
}

// Delete godoc
// @Summary      Delete user
// @Tags         core/users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  types.SuccessResponse
// @Router       /users/{id} [delete]
func (c *UserController) Delete(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid user id"})
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "User not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to delete user"})
	}
	return ctx.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "User deleted"})
}
