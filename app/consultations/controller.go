package consultations

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

type ConsultationController struct {
	Service *ConsultationService
	Logger  logger.Logger
}

func NewConsultationController(service *ConsultationService, logger logger.Logger) *ConsultationController {
	return &ConsultationController{
		Service: service,
		Logger:  logger,
	}
}

func (c *ConsultationController) Routes(router *router.RouterGroup) {
	router.GET("/consultations", c.GetAll)
	router.GET("/consultations/daily", c.GetMonthlyCounts)
	router.GET("/consultations/:id", c.GetById)
	router.POST("/consultations", c.Create)
	router.PUT("/consultations/:id", c.Update)
	router.DELETE("/consultations/:id", c.Delete)
}

// GetAll godoc
// @Summary      List consultations
// @Tags         app/consultations
// @Produce      json
// @Param        page        query  int     false  "Page number"
// @Param        limit       query  int     false  "Items per page"
// @Param        patient_id  query  int     false  "Filter by patient"
// @Param        status      query  string  false  "Filter by status"
// @Success      200  {object}  types.PaginatedResponse
// @Router       /consultations [get]
func (c *ConsultationController) GetAll(ctx *router.Context) error {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	patientId, _ := strconv.ParseUint(ctx.Query("patient_id"), 10, 32)

	result, err := c.Service.GetAll(page, limit, uint(patientId), ctx.Query("status"))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch consultations"})
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetMonthlyCounts godoc
// @Summary      Daily consultation counts
// @Tags         app/consultations
// @Produce      json
// @Param        days  query  int  false  "Window in days"
// @Success      200  {array}  types.DatePoint
// @Router       /consultations/daily [get]
func (c *ConsultationController) GetMonthlyCounts(ctx *router.Context) error {
	days, _ := strconv.Atoi(ctx.Query("days"))

	points, err := c.Service.GetMonthlyCounts(days)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch consultation counts"})
	}
	return ctx.JSON(http.StatusOK, points)
}

// GetById godoc
// @Summary      Get consultation
// @Tags         app/consultations
// @Produce      json
// @Param        id  path  int  true  "Consultation id"
// @Success      200  {object}  models.ConsultationResponse
// @Router       /consultations/{id} [get]
func (c *ConsultationController) GetById(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid consultation id"})
	}

	consultation, err := c.Service.GetById(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Consultation not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch consultation"})
	}
	return ctx.JSON(http.StatusOK, consultation.ToResponse())
}

// Create godoc
// @Summary      Create consultation
// @Tags         app/consultations
// @Accept       json
// @Produce      json
// @Param        consultation  body  models.CreateConsultationRequest  true  "Consultation fields"
// @Success      201  {object}  models.ConsultationResponse
// @Router       /consultations [post]
func (c *ConsultationController) Create(ctx *router.Context) error {
	var req models.CreateConsultationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}
	if req.AttendingId == 0 {
		req.AttendingId = ctx.GetUint("user_id")
	}

	consultation, err := c.Service.Create(&req)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to create consultation"})
	}
	return ctx.JSON(http.StatusCreated, consultation.ToResponse())
}

// Update godoc
// @Summary      Update consultation
// @Tags         app/consultations
// @Accept       json
// @Produce      json
// @Param        id            path  int                               true  "Consultation id"
// @Param        consultation  body  models.UpdateConsultationRequest  true  "Consultation fields"
// @Success      200  {object}  models.ConsultationResponse
// @Router       /consultations/{id} [put]
func (c *ConsultationController) Update(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid consultation id"})
	}

	var req models.UpdateConsultationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	consultation, err := c.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Consultation not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to update consultation"})
	}
	return ctx.JSON(http.StatusOK, consultation.ToResponse())
}

// Delete godoc
// @Summary      Delete consultation
// @Tags         app/consultations
// @Produce      json
// @Param        id  path  int  true  "Consultation id"
// @Success      200  {object}  types.SuccessResponse
// @Router       /consultations/{id} [delete]
func (c *ConsultationController) Delete(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid consultation id"})
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Consultation not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to delete consultation"})
	}
	return ctx.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "Consultation deleted"})
}
