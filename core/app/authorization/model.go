package authorization

import (
	"time"

	"gorm.io/gorm"
)

// Role represents a named set of permissions
type Role struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"column:name;unique;not null;size:100"`
	Description string         `json:"description" gorm:"column:description;size:255"`
	IsSystem    bool           `json:"is_system" gorm:"column:is_system;default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName returns the table name for the Role model
func (m *Role) TableName() string {
	return "roles"
}

// Permission represents a single resource/action grant
type Permission struct {
	Id           uint      `json:"id" gorm:"primarykey"`
	Name         string    `json:"name" gorm:"column:name;size:255"`
	Description  string    `json:"description" gorm:"column:description;size:255"`
	ResourceType string    `json:"resource_type" gorm:"column:resource_type;index;size:100"`
	Action       string    `json:"action" gorm:"column:action;index;size:100"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for the Permission model
func (m *Permission) TableName() string {
	return "permissions"
}

// RolePermission links a role to a permission
type RolePermission struct {
	Id           uint `json:"id" gorm:"primarykey"`
	RoleId       uint `json:"role_id" gorm:"column:role_id;index;not null"`
	PermissionId uint `json:"permission_id" gorm:"column:permission_id;index;not null"`
}

// TableName returns the table name for the RolePermission model
func (m *RolePermission) TableName() string {
	return "role_permissions"
}

// RoleResponse represents the API response for Role
type RoleResponse struct {
	Id          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsSystem    bool   `json:"is_system"`
}

// ToResponse converts the model to an API response
func (m *Role) ToResponse() *RoleResponse {
	if m == nil {
		return nil
	}
	return &RoleResponse{
		Id:          m.Id,
		Name:        m.Name,
		Description: m.Description,
		IsSystem:    m.IsSystem,
	}
}
