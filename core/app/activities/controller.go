package activities

import (
	"net/http"
	"strconv"

	"meditrack/core/logger"
	"meditrack/core/router"
	"meditrack/core/types"
)

type ActivityController struct {
	Service *ActivityService
	Logger  logger.Logger
}

func NewActivityController(service *ActivityService, logger logger.Logger) *ActivityController {
	return &ActivityController{
		Service: service,
		Logger:  logger,
	}
}

func (c *ActivityController) Routes(router *router.RouterGroup) {
	router.GET("/activities", c.GetAll)
	router.GET("/activities/recent", c.GetRecent)
	router.GET("/activities/daily", c.GetDailyCounts)
}

// GetAll godoc
// @Summary      List activity logs
// @Description  Returns activities paginated, newest first
// @Tags         core/activities
// @Produce      json
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Items per page"
// @Param        category  query  string  false  "Filter by category"
// @Param        severity  query  string  false  "Filter by severity"
// @Success      200  {object}  types.PaginatedResponse
// @Router       /activities [get]
func (c *ActivityController) GetAll(ctx *router.Context) error {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	result, err := c.Service.GetAll(page, limit, ctx.Query("category"), ctx.Query("severity"))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch activities"})
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetRecent godoc
// @Summary      Recent activity
// @Description  Returns the most recent activity entries
// @Tags         core/activities
// @Produce      json
// @Param        limit  query  int  false  "Number of entries"
// @Success      200  {array}  ActivityResponse
// @Router       /activities/recent [get]
func (c *ActivityController) GetRecent(ctx *router.Context) error {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	activities, err := c.Service.GetLogs(limit)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch activities"})
	}

	responses := make([]*ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, activity.ToResponse())
	}
	return ctx.JSON(http.StatusOK, responses)
}

// GetDailyCounts godoc
// @Summary      Daily activity counts
// @Description  Returns per-day activity counts for charting
// @Tags         core/activities
// @Produce      json
// @Param        days  query  int  false  "Window in days"
// @Success      200  {array}  types.DatePoint
// @Router       /activities/daily [get]
func (c *ActivityController) GetDailyCounts(ctx *router.Context) error {
	days, _ := strconv.Atoi(ctx.Query("days"))

	points, err := c.Service.GetDailyCounts(days)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch activity counts"})
	}
	return ctx.JSON(http.StatusOK, points)
}
