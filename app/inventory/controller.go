package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"meditrack/app/models"
	"meditrack/core/logger"
	"meditrack/core/router"
	"meditrack/core/types"
)

type InventoryController struct {
	Service *InventoryService
	Logger  logger.Logger
}

func NewInventoryController(service *InventoryService, logger logger.Logger) *InventoryController {
	return &InventoryController{
		Service: service,
		Logger:  logger,
	}
}

func (c *InventoryController) Routes(router *router.RouterGroup) {
	router.GET("/inventory", c.GetAll)
	router.GET("/inventory/summary", c.GetStatusSummary)
	router.GET("/inventory/low-stock", c.GetLowStock)
	router.GET("/inventory/classifications", c.GetClassifications)
	router.GET("/inventory/:id", c.GetById)
	router.POST("/inventory", c.Create)
	router.PUT("/inventory/:id", c.Update)
	router.POST("/inventory/:id/archive", c.Archive)
	router.POST("/inventory/:id/restore", c.Restore)
	router.DELETE("/inventory/:id", c.Delete)
}

// GetAll godoc
// @Summary      List inventory items
// @Description  Returns active items paginated with optional filters
// @Tags         app/inventory
// @Produce      json
// @Param        page            query  int     false  "Page number"
// @Param        limit           query  int     false  "Items per page"
// @Param        search          query  string  false  "Search term"
// @Param        department      query  string  false  "Filter by department"
// @Param        classification  query  string  false  "Filter by classification"
// @Param        status          query  string  false  "Filter by status"
// @Success      200  {object}  types.PaginatedResponse
// @Router       /inventory [get]
func (c *InventoryController) GetAll(ctx *router.Context) error {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	result, err := c.Service.GetAll(page, limit,
		ctx.Query("search"),
		ctx.Query("department"),
		ctx.Query("classification"),
		ctx.Query("status"),
		ctx.Query("sort_by"),
		ctx.Query("sort_desc"))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch inventory"})
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetStatusSummary godoc
// @Summary      Inventory status summary
// @Tags         app/inventory
// @Produce      json
// @Success      200  {array}  types.ChartPoint
// @Router       /inventory/summary [get]
func (c *InventoryController) GetStatusSummary(ctx *router.Context) error {
	summary, err := c.Service.GetStatusSummary()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch inventory summary"})
	}
	return ctx.JSON(http.StatusOK, summary)
}

// GetLowStock godoc
// @Summary      Low stock items
// @Tags         app/inventory
// @Produce      json
// @Success      200  {array}  models.InventoryItemResponse
// @Router       /inventory/low-stock [get]
func (c *InventoryController) GetLowStock(ctx *router.Context) error {
	items, err := c.Service.GetLowStock()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch low stock items"})
	}

	responses := make([]*models.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, item.ToResponse())
	}
	return ctx.JSON(http.StatusOK, responses)
}

// GetClassifications godoc
// @Summary      Inventory classifications
// @Tags         app/inventory
// @Produce      json
// @Success      200  {array}  models.InventoryClassification
// @Router       /inventory/classifications [get]
func (c *InventoryController) GetClassifications(ctx *router.Context) error {
	classifications, err := c.Service.GetClassifications()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch classifications"})
	}
	return ctx.JSON(http.StatusOK, classifications)
}

// GetById godoc
// @Summary      Get inventory item
// @Tags         app/inventory
// @Produce      json
// @Param        id  path  int  true  "Item id"
// @Success      200  {object}  models.InventoryItemResponse
// @Router       /inventory/{id} [get]
func (c *InventoryController) GetById(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid item id"})
	}

	item, err := c.Service.GetById(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Item not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch item"})
	}
	return ctx.JSON(http.StatusOK, item.ToResponse())
}

// Create godoc
// @Summary      Create inventory item
// @Tags         app/inventory
// @Accept       json
// @Produce      json
// @Param        item  body  models.CreateInventoryItemRequest  true  "Item fields"
// @Success      201  {object}  models.InventoryItemResponse
// @Router       /inventory [post]
func (c *InventoryController) Create(ctx *router.Context) error {
	var req models.CreateInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	item, err := c.Service.Create(&req)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to create item"})
	}
	return ctx.JSON(http.StatusCreated, item.ToResponse())
}

// Update godoc
// @Summary      Update inventory item
// @Tags         app/inventory
// @Accept       json
// @Produce      json
// @Param        id    path  int                                true  "Item id"
// @Param        item  body  models.UpdateInventoryItemRequest  true  "Item fields"
// @Success      200  {object}  models.InventoryItemResponse
// @Router       /inventory/{id} [put]
func (c *InventoryController) Update(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid item id"})
	}

	var req models.UpdateInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	item, err := c.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Item not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to update item"})
	}
	return ctx.JSON(http.StatusOK, item.ToResponse())
}

// Archive godoc
// @Summary      Archive inventory item
// @Tags         app/inventory
// @Produce      json
// @Param        id  path  int  true  "Item id"
// @Success      200  {object}  models.InventoryItemResponse
// @Router       /inventory/{id}/archive [post]
func (c *InventoryController) Archive(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid item id"})
	}

	item, err := c.Service.Archive(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Item not found"})
		}
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(http.StatusOK, item.ToResponse())
}

// Restore godoc
// @Summary      Restore archived inventory item
// @Tags         app/inventory
// @Produce      json
// @Param        id  path  int  true  "Item id"
// @Success      200  {object}  models.InventoryItemResponse
// @Router       /inventory/{id}/restore [post]
func (c *InventoryController) Restore(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid item id"})
	}

	item, err := c.Service.Restore(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Item not found"})
		}
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(http.StatusOK, item.ToResponse())
}

// Delete godoc
// @Summary      Delete inventory item
// @Tags         app/inventory
// @Produce      json
// @Param        id  path  int  true  "Item id"
// @Success      200  {object}  types.SuccessResponse
// @Router       /inventory/{id} [delete]
func (c *InventoryController) Delete(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid item id"})
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Item not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to delete item"})
	}
	return ctx.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "Item deleted"})
}
