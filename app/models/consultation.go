package models

import (
	"time"

	"gorm.io/gorm"

	"meditrack/core/app/users"
)

// Consultation represents a single patient consultation (SOAP note plus vitals)
type Consultation struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	PatientId uint     `json:"patient_id" gorm:"column:patient_id;index;not null"`
	Patient   *Patient `json:"patient,omitempty" gorm:"foreignKey:PatientId"`

	AttendingId uint        `json:"attending_id" gorm:"column:attending_id;index"`
	Attending   *users.User `json:"attending,omitempty" gorm:"foreignKey:AttendingId"`

	ConsultationDate time.Time `json:"consultation_date" gorm:"column:consultation_date;index"`
	CaseType         string    `json:"case_type" gorm:"column:case_type;size:100"`
	ChiefComplaint   string    `json:"chief_complaint" gorm:"column:chief_complaint;type:text"`

	// SOAP note
	Subjective string `json:"subjective" gorm:"column:subjective;type:text"`
	Objective  string `json:"objective" gorm:"column:objective;type:text"`
	Assessment string `json:"assessment" gorm:"column:assessment;type:text"`
	Plan       string `json:"plan" gorm:"column:plan;type:text"`

	Diagnosis     string `json:"diagnosis" gorm:"column:diagnosis;type:text"`
	Interventions string `json:"interventions" gorm:"column:interventions;type:text"`

	// Vital signs
	Temperature      float64 `json:"temperature" gorm:"column:temperature"`
	Pulse            int     `json:"pulse" gorm:"column:pulse"`
	RespiratoryRate  int     `json:"respiratory_rate" gorm:"column:respiratory_rate"`
	BloodPressure    string  `json:"blood_pressure" gorm:"column:blood_pressure;size:20"`
	OxygenSaturation int     `json:"oxygen_saturation" gorm:"column:oxygen_saturation"`
	Height           float64 `json:"height" gorm:"column:height"`
	Weight           float64 `json:"weight" gorm:"column:weight"`
	PainScale        int     `json:"pain_scale" gorm:"column:pain_scale"`

	Status string `json:"status" gorm:"column:status;index;size:50;default:active"`
}

// TableName returns the table name for the Consultation model
func (m *Consultation) TableName() string {
	return "consultations"
}

// GetId returns the Id of the model
func (m *Consultation) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Consultation) GetModelName() string {
	return "consultation"
}

// CreateConsultationRequest represents the request payload for creating a Consultation
type CreateConsultationRequest struct {
	PatientId        uint      `json:"patient_id" binding:"required"`
	AttendingId      uint      `json:"attending_id"`
	ConsultationDate time.Time `json:"consultation_date" binding:"required"`
	CaseType         string    `json:"case_type" binding:"max=100"`
	ChiefComplaint   string    `json:"chief_complaint"`
	Subjective       string    `json:"subjective"`
	Objective        string    `json:"objective"`
	Assessment       string    `json:"assessment"`
	Plan             string    `json:"plan"`
	Diagnosis        string    `json:"diagnosis"`
	Interventions    string    `json:"interventions"`
	Temperature      float64   `json:"temperature"`
	Pulse            int       `json:"pulse"`
	RespiratoryRate  int       `json:"respiratory_rate"`
	BloodPressure    string    `json:"blood_pressure" binding:"max=20"`
	OxygenSaturation int       `json:"oxygen_saturation"`
	Height           float64   `json:"height"`
	Weight           float64   `json:"weight"`
	PainScale        int       `json:"pain_scale" binding:"min=0,max=10"`
}

// UpdateConsultationRequest represents the request payload for updating a Consultation
type UpdateConsultationRequest struct {
	CaseType       string `json:"case_type,omitempty" binding:"max=100"`
	ChiefComplaint string `json:"chief_complaint,omitempty"`
	Subjective     string `json:"subjective,omitempty"`
	Objective      string `json:"objective,omitempty"`
	Assessment     string `json:"assessment,omitempty"`
	Plan           string `json:"plan,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	Interventions  string `json:"interventions,omitempty"`
	Status         string `json:"status,omitempty" binding:"max=50"`
}

// ConsultationResponse represents the API response for Consultation
type ConsultationResponse struct {
	Id               uint                      `json:"id"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
	PatientId        uint                      `json:"patient_id"`
	Patient          *PatientModelResponse     `json:"patient,omitempty"`
	AttendingId      uint                      `json:"attending_id"`
	Attending        *users.UserModelResponse  `json:"attending,omitempty"`
	ConsultationDate time.Time                 `json:"consultation_date"`
	CaseType         string                    `json:"case_type"`
	ChiefComplaint   string                    `json:"chief_complaint"`
	Subjective       string                    `json:"subjective"`
	Objective        string                    `json:"objective"`
	Assessment       string                    `json:"assessment"`
	Plan             string                    `json:"plan"`
	Diagnosis        string                    `json:"diagnosis"`
	Interventions    string                    `json:"interventions"`
	Temperature      float64                   `json:"temperature"`
	Pulse            int                       `json:"pulse"`
	RespiratoryRate  int                       `json:"respiratory_rate"`
	BloodPressure    string                    `json:"blood_pressure"`
	OxygenSaturation int                       `json:"oxygen_saturation"`
	Height           float64                   `json:"height"`
	Weight           float64                   `json:"weight"`
	PainScale        int                       `json:"pain_scale"`
	Status           string                    `json:"status"`
}

// ToResponse converts the model to an API response
func (m *Consultation) ToResponse() *ConsultationResponse {
	if m == nil {
		return nil
	}
	response := &ConsultationResponse{
		Id:               m.Id,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		PatientId:        m.PatientId,
		AttendingId:      m.AttendingId,
		ConsultationDate: m.ConsultationDate,
		CaseType:         m.CaseType,
		ChiefComplaint:   m.ChiefComplaint,
		Subjective:       m.Subjective,
		Objective:        m.Objective,
		Assessment:       m.Assessment,
		Plan:             m.Plan,
		Diagnosis:        m.Diagnosis,
		Interventions:    m.Interventions,
		Temperature:      m.Temperature,
		Pulse:            m.Pulse,
		RespiratoryRate:  m.RespiratoryRate,
		BloodPressure:    m.BloodPressure,
		OxygenSaturation: m.OxygenSaturation,
		Height:           m.Height,
		Weight:           m.Weight,
		PainScale:        m.PainScale,
		Status:           m.Status,
	}
	if m.Patient != nil {
		response.Patient = m.Patient.ToModelResponse()
	}
	if m.Attending != nil {
		response.Attending = m.Attending.ToModelResponse()
	}
	return response
}

// Preload preloads all the model's relationships
func (m *Consultation) Preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Patient").Preload("Attending")
}
