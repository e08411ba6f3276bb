package patients

import (
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"

	"meditrack/app/models"
	"meditrack/core/emitter"
	"meditrack/core/logger"
	"meditrack/core/types"
)

const (
	CreatePatientEvent = "patients.create"
	UpdatePatientEvent = "patients.update"
	DeletePatientEvent = "patients.delete"
)

type PatientService struct {
	DB      *gorm.DB
	Emitter *emitter.Emitter
	Logger  logger.Logger
}

func NewPatientService(db *gorm.DB, emitter *emitter.Emitter, logger logger.Logger) *PatientService {
	return &PatientService{
		DB:      db,
		Emitter: emitter,
		Logger:  logger,
	}
}

// Create stores a new patient, generating a patient code when absent
func (s *PatientService) Create(req *models.CreatePatientRequest) (*models.Patient, error) {
	patient := models.Patient{
		PatientId:             req.PatientId,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Gender:                req.Gender,
		DateOfBirth:           req.DateOfBirth,
		Phone:                 req.Phone,
		Email:                 req.Email,
		Address:               req.Address,
		BloodType:             req.BloodType,
		Allergies:             req.Allergies,
		MedicalHistory:        req.MedicalHistory,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		InsuranceProvider:     req.InsuranceProvider,
		InsuranceNumber:       req.InsuranceNumber,
	}

	if err := s.DB.Create(&patient).Error; err != nil {
		s.Logger.Error("failed to create patient", logger.String("error", err.Error()))
		return nil, err
	}

	if patient.PatientId == "" {
		code := fmt.Sprintf("PT-%06d", patient.Id)
		if err := s.DB.Model(&patient).Update("patient_id", code).Error; err != nil {
			s.Logger.Warn("failed to assign patient code",
				logger.Uint("patient_id", patient.Id),
				logger.String("error", err.Error()))
		} else {
			patient.PatientId = code
		}
	}

	s.Emitter.Emit(CreatePatientEvent, &patient)
	return &patient, nil
}

// GetById returns a patient by id
func (s *PatientService) GetById(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := s.DB.First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetAll returns patients paginated with optional search
func (s *PatientService) GetAll(page, limit int, search string) (*types.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.DB.Model(&models.Patient{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR patient_id LIKE ? OR phone LIKE ? OR email LIKE ?",
			term, term, term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		s.Logger.Error("failed to count patients", logger.String("error", err.Error()))
		return nil, err
	}

	var patients []*models.Patient
	err := query.Order("last_name ASC, first_name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		s.Logger.Error("failed to fetch patients", logger.String("error", err.Error()))
		return nil, err
	}

	responses := make([]*models.PatientResponse, 0, len(patients))
	for _, patient := range patients {
		responses = append(responses, patient.ToResponse())
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

// GetSelectOptions returns patients as dropdown options
func (s *PatientService) GetSelectOptions() ([]*models.PatientSelectOption, error) {
	var patients []*models.Patient
	if err := s.DB.Order("last_name ASC, first_name ASC").Find(&patients).Error; err != nil {
		return nil, err
	}

	options := make([]*models.PatientSelectOption, 0, len(patients))
	for _, patient := range patients {
		options = append(options, patient.ToSelectOption())
	}
	return options, nil
}

// Update applies the request to an existing patient
func (s *PatientService) Update(id uint, req *models.UpdatePatientRequest) (*models.Patient, error) {
	patient, err := s.GetById(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.PatientId != "" {
		updates["patient_id"] = req.PatientId
	}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = req.DateOfBirth
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.BloodType != "" {
		updates["blood_type"] = req.BloodType
	}
	if req.Allergies != nil {
		updates["allergies"] = *req.Allergies
	}
	if req.MedicalHistory != nil {
		updates["medical_history"] = *req.MedicalHistory
	}
	if req.EmergencyContactName != "" {
		updates["emergency_contact_name"] = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != "" {
		updates["emergency_contact_phone"] = req.EmergencyContactPhone
	}
	if req.InsuranceProvider != "" {
		updates["insurance_provider"] = req.InsuranceProvider
	}
	if req.InsuranceNumber != "" {
		updates["insurance_number"] = req.InsuranceNumber
	}

	if len(updates) > 0 {
		if err := s.DB.Model(patient).Updates(updates).Error; err != nil {
			s.Logger.Error("failed to update patient",
				logger.Uint("patient_id", id),
				logger.String("error", err.Error()))
			return nil, err
		}
	}

	updated, err := s.GetById(id)
	if err != nil {
		return nil, err
	}
	s.Emitter.Emit(UpdatePatientEvent, updated)
	return updated, nil
}

// Delete soft-deletes a patient
func (s *PatientService) Delete(id uint) error {
	patient, err := s.GetById(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(patient).Error; err != nil {
		s.Logger.Error("failed to delete patient",
			logger.Uint("patient_id", id),
			logger.String("error", err.Error()))
		return err
	}
	s.Emitter.Emit(DeletePatientEvent, patient)
	return nil
}

// GetRecords returns a patient's medical records, newest first
func (s *PatientService) GetRecords(patientId uint) ([]*models.MedicalRecord, error) {
	var records []*models.MedicalRecord
	var probe models.MedicalRecord
	err := probe.Preload(s.DB).
		Where("patient_id = ?", patientId).
		Order("record_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CreateRecord stores a medical record for a patient
func (s *PatientService) CreateRecord(req *models.CreateMedicalRecordRequest) (*models.MedicalRecord, error) {
	if _, err := s.GetById(req.PatientId); err != nil {
		return nil, err
	}

	record := models.MedicalRecord{
		PatientId:    req.PatientId,
		AuthorId:     req.AuthorId,
		RecordType:   req.RecordType,
		Title:        req.Title,
		RecordDate:   req.RecordDate,
		Description:  req.Description,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Medications:  req.Medications,
		LabResults:   req.LabResults,
		VitalSigns:   req.VitalSigns,
		Notes:        req.Notes,
		FollowUpDate: req.FollowUpDate,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		s.Logger.Error("failed to create medical record", logger.String("error", err.Error()))
		return nil, err
	}

	var created models.MedicalRecord
	if err := record.Preload(s.DB).First(&created, record.Id).Error; err != nil {
		return &record, nil
	}
	return &created, nil
}

// GenderSummary returns patient counts per gender
func (s *PatientService) GenderSummary() ([]types.ChartPoint, error) {
	type genderCount struct {
		Gender string
		Count  int64
	}
	var rows []genderCount
	err := s.DB.Model(&models.Patient{}).
		Select("gender, COUNT(*) AS count").
		Group("gender").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]types.ChartPoint, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Gender)
		if name == "" {
			name = "Unspecified"
		}
		points = append(points, types.ChartPoint{Name: name, Value: row.Count})
	}
	return points, nil
}
