package archives

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"meditrack/core/logger"
	"meditrack/core/router"
	"meditrack/core/types"
)

type ArchiveController struct {
	Service *ArchiveService
	Logger  logger.Logger
}

func NewArchiveController(service *ArchiveService, logger logger.Logger) *ArchiveController {
	return &ArchiveController{
		Service: service,
		Logger:  logger,
	}
}

func (c *ArchiveController) Routes(router *router.RouterGroup) {
	router.GET("/archives", c.GetAll)
	router.GET("/archives/summary", c.GetSummary)
	router.POST("/archives/:id/restore", c.Restore)
}

// GetAll godoc
// @Summary      List archived items
// @Tags         app/archives
// @Produce      json
// @Success      200  {array}  ArchivedItemResponse
// @Router       /archives [get]
func (c *ArchiveController) GetAll(ctx *router.Context) error {
	items, err := c.Service.GetAll()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch archives"})
	}
	return ctx.JSON(http.StatusOK, items)
}

// GetSummary godoc
// @Summary      Archive summary
// @Description  Returns archived item counts per classification
// @Tags         app/archives
// @Produce      json
// @Success      200  {array}  types.ChartPoint
// @Router       /archives/summary [get]
func (c *ArchiveController) GetSummary(ctx *router.Context) error {
	summary, err := c.Service.GetSummary()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch archive summary"})
	}
	return ctx.JSON(http.StatusOK, summary)
}

// Restore godoc
// @Summary      Restore archived item
// @Tags         app/archives
// @Produce      json
// @Param        id  path  int  true  "Item id"
// @Success      200  {object}  models.InventoryItemResponse
// @Router       /archives/{id}/restore [post]
func (c *ArchiveController) Restore(ctx *router.Context) error {
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
