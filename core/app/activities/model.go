package activities

import (
	"time"

	"gorm.io/gorm"

	"meditrack/core/app/users"
)

const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Activity represents one audit log entry
type Activity struct {
	Id        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`

	Action      string    `json:"action" gorm:"column:action;index;not null;size:100"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	Category    string    `json:"category" gorm:"column:category;index;size:100"`
	Severity    string    `json:"severity" gorm:"column:severity;index;size:50;default:info"`
	Timestamp   time.Time `json:"timestamp" gorm:"column:timestamp;index"`

	EntityType string `json:"entity_type" gorm:"column:entity_type;index;size:100"`
	EntityId   uint   `json:"entity_id" gorm:"column:entity_id;index"`

	IpAddress string `json:"ip_address" gorm:"column:ip_address;size:50"`
	UserAgent string `json:"user_agent" gorm:"column:user_agent;size:512"`

	UserId uint        `json:"user_id" gorm:"column:user_id;index"`
	User   *users.User `json:"user,omitempty" gorm:"foreignKey:UserId"`
}

// TableName returns the table name for the Activity model
func (m *Activity) TableName() string {
	return "activities"
}

// GetId returns the Id of the model
func (m *Activity) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Activity) GetModelName() string {
	return "activity"
}

// ActivityResponse represents the API response for Activity
type ActivityResponse struct {
	Id          uint                     `json:"id"`
	Action      string                   `json:"action"`
	Description string                   `json:"description"`
	Category    string                   `json:"category"`
	Severity    string                   `json:"severity"`
	Timestamp   time.Time                `json:"timestamp"`
	EntityType  string                   `json:"entity_type"`
	EntityId    uint                     `json:"entity_id"`
	IpAddress   string                   `json:"ip_address"`
	UserId      uint                     `json:"user_id"`
	User        *users.UserModelResponse `json:"user,omitempty"`
}

// ToResponse converts the model to an API response
func (m *Activity) ToResponse() *ActivityResponse {
	if m == nil {
		return nil
	}
	response := &ActivityResponse{
		Id:          m.Id,
		Action:      m.Action,
		Description: m.Description,
		Category:    m.Category,
		Severity:    m.Severity,
		Timestamp:   m.Timestamp,
		EntityType:  m.EntityType,
		EntityId:    m.EntityId,
		IpAddress:   m.IpAddress,
		UserId:      m.UserId,
	}
	if m.User != nil {
		response.User = m.User.ToModelResponse()
	}
	return response
}

// Preload preloads all the model's relationships
func (m *Activity) Preload(db *gorm.DB) *gorm.DB {
	return db.Preload("User")
}
