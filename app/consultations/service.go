package consultations

import (
	"math"
	"time"

	"gorm.io/gorm"

	"meditrack/app/models"
	"meditrack/core/emitter"
	"meditrack/core/logger"
	"meditrack/core/types"
)

const (
	CreateConsultationEvent = "consultations.create"
	UpdateConsultationEvent = "consultations.update"
)

type ConsultationService struct {
	DB      *gorm.DB
	Emitter *emitter.Emitter
	Logger  logger.Logger
}

func NewConsultationService(db *gorm.DB, emitter *emitter.Emitter, logger logger.Logger) *ConsultationService {
	return &ConsultationService{
		DB:      db,
		Emitter: emitter,
		Logger:  logger,
	}
}

// Create stores a new consultation
func (s *ConsultationService) Create(req *models.CreateConsultationRequest) (*models.Consultation, error) {
	consultation := models.Consultation{
		PatientId:        req.PatientId,
		AttendingId:      req.AttendingId,
		ConsultationDate: req.ConsultationDate,
		CaseType:         req.CaseType,
		ChiefComplaint:   req.ChiefComplaint,
		Subjective:       req.Subjective,
		Objective:        req.Objective,
		Assessment:       req.Assessment,
		Plan:             req.Plan,
		Diagnosis:        req.Diagnosis,
		Interventions:    req.Interventions,
		Temperature:      req.Temperature,
		Pulse:            req.Pulse,
		RespiratoryRate:  req.RespiratoryRate,
		BloodPressure:    req.BloodPressure,
		OxygenSaturation: req.OxygenSaturation,
		Height:           req.Height,
		Weight:           req.Weight,
		PainScale:        req.PainScale,
		Status:           "active",
	}

	if err := s.DB.Create(&consultation).Error; err != nil {
		s.Logger.Error("failed to create consultation", logger.String("error", err.Error()))
		return nil, err
	}

	created, err := s.GetById(consultation.Id)
	if err != nil {
		return &consultation, nil
	}
	s.Emitter.Emit(CreateConsultationEvent, created)
	return created, nil
}

// GetById returns a consultation with relationships preloaded
func (s *ConsultationService) GetById(id uint) (*models.Consultation, error) {
	var consultation models.Consultation
	if err := consultation.Preload(s.DB).First(&consultation, id).Error; err != nil {
		return nil, err
	}
	return &consultation, nil
}

// GetAll returns consultations paginated, optionally filtered by patient and status
func (s *ConsultationService) GetAll(page, limit int, patientId uint, status string) (*types.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.DB.Model(&models.Consultation{})
	if patientId > 0 {
		query = query.Where("patient_id = ?", patientId)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		s.Logger.Error("failed to count consultations", logger.String("error", err.Error()))
		return nil, err
	}

	var consultations []*models.Consultation
	err := query.Preload("Patient").Preload("Attending").
		Order("consultation_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&consultations).Error
	if err != nil {
		s.Logger.Error("failed to fetch consultations", logger.String("error", err.Error()))
		return nil, err
	}

	responses := make([]*models.ConsultationResponse, 0, len(consultations))
	for _, consultation := range consultations {
		responses = append(responses, consultation.ToResponse())
	}

	return &types.PaginatedResponse{
		Data: responses,
		Pagination: types.Pagination{
			Total:      total,
			Page:       page,
			PageSize:   limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// Update applies the request to an existing consultation
func (s *ConsultationService) Update(id uint, req *models.UpdateConsultationRequest) (*models.Consultation, error) {
	consultation, err := s.GetById(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.CaseType != "" {
		updates["case_type"] = req.CaseType
	}
	if req.ChiefComplaint != "" {
		updates["chief_complaint"] = req.ChiefComplaint
	}
	if req.Subjective != "" {
		updates["subjective"] = req.Subjective
	}
	if req.Objective != "" {
		updates["objective"] = req.Objective
	}
	if req.Assessment != "" {
		updates["assessment"] = req.Assessment
	}
	if req.Plan != "" {
		updates["plan"] = req.Plan
	}
	if req.Diagnosis != "" {
		updates["diagnosis"] = req.Diagnosis
	}
	if req.Interventions != "" {
		updates["interventions"] = req.Interventions
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := s.DB.Model(consultation).Updates(updates).Error; err != nil {
			s.Logger.Error("failed to update consultation",
				logger.Uint("consultation_id", id),
				logger.String("error", err.Error()))
			return nil, err
		}
	}

	updated, err := s.GetById(id)
	if err != nil {
		return nil, err
	}
	s.Emitter.Emit(UpdateConsultationEvent, updated)
	return updated, nil
}

// Delete soft-deletes a consultation
func (s *ConsultationService) Delete(id uint) error {
	consultation, err := s.GetById(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(consultation).Error; err != nil {
		s.Logger.Error("failed to delete consultation",
			logger.Uint("consultation_id", id),
			logger.String("error", err.Error()))
		return err
	}
	return nil
}

// GetMonthlyCounts returns per-day consultation counts for charting
func (s *ConsultationService) GetMonthlyCounts(days int) ([]types.DatePoint, error) {
	if days < 1 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	var points []types.DatePoint
	err := s.DB.Model(&models.Consultation{}).
		Select("DATE(consultation_date) AS date, COUNT(*) AS count").
		Where("consultation_date >= ?", since).
		Group("DATE(consultation_date)").
		Order("date ASC").
		Scan(&points).Error
	if err != nil {
		s.Logger.Error("failed to fetch consultation counts", logger.String("error", err.Error()))
		return nil, err
	}
	return points, nil
}
