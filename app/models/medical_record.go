package models

import (
	"time"

	"gorm.io/gorm"

	"meditrack/core/app/users"
)

// MedicalRecord represents a dated clinical record attached to a patient
type MedicalRecord struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	PatientId uint     `json:"patient_id" gorm:"column:patient_id;index;not null"`
	Patient   *Patient `json:"patient,omitempty" gorm:"foreignKey:PatientId"`

	AuthorId uint        `json:"author_id" gorm:"column:author_id;index"`
	Author   *users.User `json:"author,omitempty" gorm:"foreignKey:AuthorId"`

	RecordType   string     `json:"record_type" gorm:"column:record_type;index;size:100"`
	Title        string     `json:"title" gorm:"column:title;size:255"`
	RecordDate   time.Time  `json:"record_date" gorm:"column:record_date;index"`
	Description  string     `json:"description" gorm:"column:description;type:text"`
	Diagnosis    string     `json:"diagnosis" gorm:"column:diagnosis;type:text"`
	Treatment    string     `json:"treatment" gorm:"column:treatment;type:text"`
	Medications  string     `json:"medications" gorm:"column:medications;type:text"`
	LabResults   string     `json:"lab_results" gorm:"column:lab_results;type:text"`
	VitalSigns   string     `json:"vital_signs" gorm:"column:vital_signs;type:text"`
	Notes        string     `json:"notes" gorm:"column:notes;type:text"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty" gorm:"column:follow_up_date"`
}

// TableName returns the table name for the MedicalRecord model
func (m *MedicalRecord) TableName() string {
	return "medical_records"
}

// GetId returns the Id of the model
func (m *MedicalRecord) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *MedicalRecord) GetModelName() string {
	return "medical_record"
}

// CreateMedicalRecordRequest represents the request payload for creating a MedicalRecord
type CreateMedicalRecordRequest struct {
	PatientId    uint       `json:"patient_id" binding:"required"`
	AuthorId     uint       `json:"author_id"`
	RecordType   string     `json:"record_type" binding:"required,max=100"`
	Title        string     `json:"title" binding:"required,max=255"`
	RecordDate   time.Time  `json:"record_date" binding:"required"`
	Description  string     `json:"description"`
	Diagnosis    string     `json:"diagnosis"`
	Treatment    string     `json:"treatment"`
	Medications  string     `json:"medications"`
	LabResults   string     `json:"lab_results"`
	VitalSigns   string     `json:"vital_signs"`
	Notes        string     `json:"notes"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
}

// MedicalRecordResponse represents the API response for MedicalRecord
type MedicalRecordResponse struct {
	Id           uint                     `json:"id"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	PatientId    uint                     `json:"patient_id"`
	Patient      *PatientModelResponse    `json:"patient,omitempty"`
	AuthorId     uint                     `json:"author_id"`
	Author       *users.UserModelResponse `json:"author,omitempty"`
	RecordType   string                   `json:"record_type"`
	Title        string                   `json:"title"`
	RecordDate   time.Time                `json:"record_date"`
	Description  string                   `json:"description"`
	Diagnosis    string                   `json:"diagnosis"`
	Treatment    string                   `json:"treatment"`
	Medications  string                   `json:"medications"`
	LabResults   string                   `json:"lab_results"`
	VitalSigns   string                   `json:"vital_signs"`
	Notes        string                   `json:"notes"`
	FollowUpDate *time.Time               `json:"follow_up_date,omitempty"`
}

// ToResponse converts the model to an API response
func (m *MedicalRecord) ToResponse() *MedicalRecordResponse {
	if m == nil {
		return nil
	}
	response := &MedicalRecordResponse{
		Id:           m.Id,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		PatientId:    m.PatientId,
		AuthorId:     m.AuthorId,
		RecordType:   m.RecordType,
		Title:        m.Title,
		RecordDate:   m.RecordDate,
		Description:  m.Description,
		Diagnosis:    m.Diagnosis,
		Treatment:    m.Treatment,
		Medications:  m.Medications,
		LabResults:   m.LabResults,
		VitalSigns:   m.VitalSigns,
		Notes:        m.Notes,
		FollowUpDate: m.FollowUpDate,
	}
	if m.Patient != nil {
		response.Patient = m.Patient.ToModelResponse()
	}
	if m.Author != nil {
		response.Author = m.Author.ToModelResponse()
	}
	return response
}

// Preload preloads all the model's relationships
func (m *MedicalRecord) Preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Patient").Preload("Author")
}
