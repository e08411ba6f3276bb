package search

import (
	"net/http"

	"meditrack/core/logger"
	"meditrack/core/router"
	"meditrack/core/types"
)

type SearchController struct {
	Service *SearchService
	Logger  logger.Logger
}

func NewSearchController(service *SearchService, logger logger.Logger) *SearchController {
	return &SearchController{
		Service: service,
		Logger:  logger,
	}
}

func (c *SearchController) Routes(router *router.RouterGroup) {
	router.GET("/search", c.Search)
	router.GET("/search/suggestions", c.Suggestions)
	router.DELETE("/search/cache", c.ClearCache)
}

// Search godoc
// @Summary      Universal search
// @Description  Searches inventory, archives, activity logs and users in one call
// @Tags         core/search
// @Produce      json
// @Param        q  query  string  false  "Search query"
// @Success      200  {object}  UniversalSearchResponse
// @Router       /search [get]
func (c *SearchController) Search(ctx *router.Context) error {
	query := ctx.Query("q")
	return ctx.JSON(http.StatusOK, c.Service.Search(query))
}

// Suggestions godoc
// @Summary      Search suggestions
// @Description  Returns completion candidates for a partial query
// @Tags         core/search
// @Produce      json
// @Param        q  query  string  true  "Partial query"
// @Success      200  {array}  string
// @Router       /search/suggestions [get]
func (c *SearchController) Suggestions(ctx *router.Context) error {
	suggestions := c.Service.Suggestions(ctx.Query("q"))
	if suggestions == nil {
		suggestions = []string{}
	}
	return ctx.JSON(http.StatusOK, suggestions)
}

// ClearCache godoc
// @Summary      Clear search cache
// @Description  Drops every cached search response
// @Tags         core/search
// @Produce      json
// @Success      200  {object}  types.SuccessResponse
// @Router       /search/cache [delete]
func (c *SearchController) ClearCache(ctx *router.Context) error {
	c.Service.ClearCache()
	return ctx.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "Search cache cleared"})
}
