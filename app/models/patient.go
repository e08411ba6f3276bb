package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Patient represents a clinic patient record
type Patient struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	PatientId string     `json:"patient_id" gorm:"column:patient_id;unique;size:50"` // human-facing patient code
	FirstName string     `json:"first_name" gorm:"column:first_name;not null;size:255"`
	LastName  string     `json:"last_name" gorm:"column:last_name;not null;size:255"`
	Gender    string     `json:"gender" gorm:"column:gender;index;size:20"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" gorm:"column:date_of_birth"`

	Phone   string `json:"phone" gorm:"column:phone;size:50"`
	Email   string `json:"email" gorm:"column:email;size:255"`
	Address string `json:"address" gorm:"column:address;type:text"`

	BloodType             string `json:"blood_type" gorm:"column:blood_type;size:10"`
	Allergies             string `json:"allergies" gorm:"column:allergies;type:text"`
	MedicalHistory        string `json:"medical_history" gorm:"column:medical_history;type:text"`
	EmergencyContactName  string `json:"emergency_contact_name" gorm:"column:emergency_contact_name;size:255"`
	EmergencyContactPhone string `json:"emergency_contact_phone" gorm:"column:emergency_contact_phone;size:50"`
	InsuranceProvider     string `json:"insurance_provider" gorm:"column:insurance_provider;size:255"`
	InsuranceNumber       string `json:"insurance_number" gorm:"column:insurance_number;size:100"`
}

// TableName returns the table name for the Patient model
func (m *Patient) TableName() string {
	return "patients"
}

// GetId returns the Id of the model
func (m *Patient) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Patient) GetModelName() string {
	return "patient"
}

// FullName returns the patient's display name
func (m *Patient) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// CreatePatientRequest represents the request payload for creating a Patient
type CreatePatientRequest struct {
	PatientId             string     `json:"patient_id" binding:"max=50"`
	FirstName             string     `json:"first_name" binding:"required,max=255"`
	LastName              string     `json:"last_name" binding:"required,max=255"`
	Gender                string     `json:"gender" binding:"max=20"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Phone                 string     `json:"phone" binding:"max=50"`
	Email                 string     `json:"email" binding:"omitempty,email,max=255"`
	Address               string     `json:"address"`
	BloodType             string     `json:"blood_type" binding:"max=10"`
	Allergies             string     `json:"allergies"`
	MedicalHistory        string     `json:"medical_history"`
	EmergencyContactName  string     `json:"emergency_contact_name" binding:"max=255"`
	EmergencyContactPhone string     `json:"emergency_contact_phone" binding:"max=50"`
	InsuranceProvider     string     `json:"insurance_provider" binding:"max=255"`
	InsuranceNumber       string     `json:"insurance_number" binding:"max=100"`
}

// UpdatePatientRequest represents the request payload for updating a Patient
type UpdatePatientRequest struct {
	PatientId             string     `json:"patient_id,omitempty" binding:"max=50"`
	FirstName             string     `json:"first_name,omitempty" binding:"max=255"`
	LastName              string     `json:"last_name,omitempty" binding:"max=255"`
	Gender                string     `json:"gender,omitempty" binding:"max=20"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Phone                 string     `json:"phone,omitempty" binding:"max=50"`
	Email                 string     `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Address               *string    `json:"address,omitempty"`
	BloodType             string     `json:"blood_type,omitempty" binding:"max=10"`
	Allergies             *string    `json:"allergies,omitempty"`
	MedicalHistory        *string    `json:"medical_history,omitempty"`
	EmergencyContactName  string     `json:"emergency_contact_name,omitempty" binding:"max=255"`
	EmergencyContactPhone string     `json:"emergency_contact_phone,omitempty" binding:"max=50"`
	InsuranceProvider     string     `json:"insurance_provider,omitempty" binding:"max=255"`
	InsuranceNumber       string     `json:"insurance_number,omitempty" binding:"max=100"`
}

// PatientResponse represents the API response for Patient
type PatientResponse struct {
	Id                    uint       `json:"id"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	PatientId             string     `json:"patient_id"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	Gender                string     `json:"gender"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Phone                 string     `json:"phone"`
	Email                 string     `json:"email"`
	Address               string     `json:"address"`
	BloodType             string     `json:"blood_type"`
	Allergies             string     `json:"allergies"`
	MedicalHistory        string     `json:"medical_history"`
	EmergencyContactName  string     `json:"emergency_contact_name"`
	EmergencyContactPhone string     `json:"emergency_contact_phone"`
	InsuranceProvider     string     `json:"insurance_provider"`
	InsuranceNumber       string     `json:"insurance_number"`
}

// PatientModelResponse represents a simplified response when Patient is part of other entities
type PatientModelResponse struct {
	Id        uint   `json:"id"`
	PatientId string `json:"patient_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PatientSelectOption represents a simplified response for select boxes and dropdowns
type PatientSelectOption struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

// ToResponse converts the model to an API response
func (m *Patient) ToResponse() *PatientResponse {
	if m == nil {
		return nil
	}
	return &PatientResponse{
		Id:                    m.Id,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
		PatientId:             m.PatientId,
		FirstName:             m.FirstName,
		LastName:              m.LastName,
		Gender:                m.Gender,
		DateOfBirth:           m.DateOfBirth,
		Phone:                 m.Phone,
		Email:                 m.Email,
		Address:               m.Address,
		BloodType:             m.BloodType,
		Allergies:             m.Allergies,
		MedicalHistory:        m.MedicalHistory,
		EmergencyContactName:  m.EmergencyContactName,
		EmergencyContactPhone: m.EmergencyContactPhone,
		InsuranceProvider:     m.InsuranceProvider,
		InsuranceNumber:       m.InsuranceNumber,
	}
}

// ToModelResponse converts the model to a simplified response for when it's part of other entities
func (m *Patient) ToModelResponse() *PatientModelResponse {
	if m == nil {
		return nil
	}
	return &PatientModelResponse{
		Id:        m.Id,
		PatientId: m.PatientId,
		FirstName: m.FirstName,
		LastName:  m.LastName,
	}
}

// ToSelectOption converts the model to a select option for dropdowns
func (m *Patient) ToSelectOption() *PatientSelectOption {
	if m == nil {
		return nil
	}
	return &PatientSelectOption{
		Id:   m.Id,
		Name: m.FullName(),
	}
}
