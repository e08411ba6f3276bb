package patients

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

type PatientController struct {
	Service *PatientService
	Logger  logger.Logger
}

func NewPatientController(service *PatientService, logger logger.Logger) *PatientController {
	return &PatientController{
		Service: service,
		Logger:  logger,
	}
}

func (c *PatientController) Routes(router *router.RouterGroup) {
	router.GET("/patients", c.GetAll)
	router.GET("/patients/options", c.GetSelectOptions)
	router.GET("/patients/summary", c.GenderSummary)
	router.GET("/patients/:id", c.GetById)
	router.GET("/patients/:id/records", c.GetRecords)
	router.POST("/patients/:id/records", c.CreateRecord)
	router.POST("/patients", c.Create)
	router.PUT("/patients/:id", c.Update)
	router.DELETE("/patients/:id", c.Delete)
}

// GetAll godoc
// @Summary      List patients
// @Tags         app/patients
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Items per page"
// @Param        search  query  string  false  "Search term"
// @Success      200  {object}  types.PaginatedResponse
// @Router       /patients [get]
func (c *PatientController) GetAll(ctx *router.Context) error {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	result, err := c.Service.GetAll(page, limit, ctx.Query("search"))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch patients"})
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetSelectOptions godoc
// @Summary      Patient dropdown options
// @Tags         app/patients
// @Produce      json
// @Success      200  {array}  models.PatientSelectOption
// @Router       /patients/options [get]
func (c *PatientController) GetSelectOptions(ctx *router.Context) error {
	options, err := c.Service.GetSelectOptions()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch patients"})
	}
	return ctx.JSON(http.StatusOK, options)
}

// GenderSummary godoc
// @Summary      Patient gender summary
// @Tags         app/patients
// @Produce      json
// @Success      200  {array}  types.ChartPoint
// @Router       /patients/summary [get]
func (c *PatientController) GenderSummary(ctx *router.Context) error {
	summary, err := c.Service.GenderSummary()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch patient summary"})
	}
	return ctx.JSON(http.StatusOK, summary)
}

// GetById godoc
// @Summary      Get patient
// @Tags         app/patients
// @Produce      json
// @Param        id  path  int  true  "Patient id"
// @Success      200  {object}  models.PatientResponse
// @Router       /patients/{id} [get]
func (c *PatientController) GetById(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid patient id"})
	}

	patient, err := c.Service.GetById(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Patient not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch patient"})
	}
	return ctx.JSON(http.StatusOK, patient.ToResponse())
}

// GetRecords godoc
// @Summary      Patient medical records
// @Tags         app/patients
// @Produce      json
// @Param        id  path  int  true  "Patient id"
// @Success      200  {array}  models.MedicalRecordResponse
// @Router       /patients/{id}/records [get]
func (c *PatientController) GetRecords(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid patient id"})
	}

	records, err := c.Service.GetRecords(uint(id))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch records"})
	}

	responses := make([]*models.MedicalRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, record.ToResponse())
	}
	return ctx.JSON(http.StatusOK, responses)
}

// CreateRecord godoc
// @Summary      Add medical record
// @Tags         app/patients
// @Accept       json
// @Produce      json
// @Param        id      path  int                               true  "Patient id"
// @Param        record  body  models.CreateMedicalRecordRequest  true  "Record fields"
// @Success      201  {object}  models.MedicalRecordResponse
// @Router       /patients/{id}/records [post]
func (c *PatientController) CreateRecord(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid patient id"})
	}

	var req models.CreateMedicalRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}
	req.PatientId = uint(id)
	if req.AuthorId == 0 {
		req.AuthorId = ctx.GetUint("user_id")
	}

	record, err := c.Service.CreateRecord(&req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Patient not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to create record"})
	}
	return ctx.JSON(http.StatusCreated, record.ToResponse())
}

// Create godoc
// @Summary      Create patient
// @Tags         app/patients
// @Accept       json
// @Produce      json
// @Param        patient  body  models.CreatePatientRequest  true  "Patient fields"
// @Success      201  {object}  models.PatientResponse
// @Router       /patients [post]
func (c *PatientController) Create(ctx *router.Context) error {
	var req models.CreatePatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	patient, err := c.Service.Create(&req)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to create patient"})
	}
	return ctx.JSON(http.StatusCreated, patient.ToResponse())
}

// Update godoc
// @Summary      Update patient
// @Tags         app/patients
// @Accept       json
// @Produce      json
// @Param        id       path  int                          true  "Patient id"
// @Param        patient  body  models.UpdatePatientRequest  true  "Patient fields"
// @Success      200  {object}  models.PatientResponse
// @Router       /patients/{id} [put]
func (c *PatientController) Update(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid patient id"})
	}

	var req models.UpdatePatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	patient, err := c.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Patient not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to update patient"})
	}
	return ctx.JSON(http.StatusOK, patient.ToResponse())
}

// Delete godoc
// @Summary      Delete patient
// @Tags         app/patients
// @Produce      json
// @Param        id  path  int  true  "Patient id"
// @Success      200  {object}  types.SuccessResponse
// @Router       /patients/{id} [delete]
func (c *PatientController) Delete(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid patient id"})
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Patient not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to delete patient"})
	}
	return ctx.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "Patient deleted"})
}
