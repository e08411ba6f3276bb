package users

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"meditrack/core/app/authorization"
)

// User represents a staff account
type User struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	FirstName string `json:"first_name" gorm:"column:first_name;size:255"`
	LastName  string `json:"last_name" gorm:"column:last_name;size:255"`
	Username  string `json:"username" gorm:"column:username;unique;not null;size:100"`
	Password  string `json:"-" gorm:"column:password;not null;size:255"`
	Phone     string `json:"phone" gorm:"column:phone;size:50"`
	Email     string `json:"email" gorm:"column:email;index;size:255"`

	RoleId uint                `json:"role_id" gorm:"column:role_id;index"`
	Role   *authorization.Role `json:"role,omitempty" gorm:"foreignKey:RoleId"`

	Department     string `json:"department" gorm:"column:department;index;size:100"`
	Position       string `json:"position" gorm:"column:position;size:100"`
	EmployeeId     string `json:"employee_id" gorm:"column:employee_id;size:50"`
	LicenseNumber  string `json:"license_number" gorm:"column:license_number;size:100"`
	Specialization string `json:"specialization" gorm:"column:specialization;size:255"`

	LastLogin *time.Time `json:"last_login,omitempty" gorm:"column:last_login"`
}

// TableName returns the table name for the User model
func (m *User) TableName() string {
	return "users"
}

// GetId returns the Id of the model
func (m *User) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *User) GetModelName() string {
	return "user"
}

// FullName returns the user's display name, falling back to the username
func (m *User) FullName() string {
	name := strings.TrimSpace(m.FirstName + " " + m.LastName)
	if name == "" {
		return m.Username
	}
	return name
}

// RoleName returns the user's role name or an empty string
func (m *User) RoleName() string {
	if m.Role == nil {
		return ""
	}
	return m.Role.Name
}

// CreateUserRequest represents the request payload for creating a User
type CreateUserRequest struct {
	FirstName      string `json:"first_name" binding:"max=255"`
	LastName       string `json:"last_name" binding:"max=255"`
	Username       string `json:"username" binding:"required,min=3,max=100"`
	Password       string `json:"password" binding:"required,min=8,max=100"`
	Phone          string `json:"phone" binding:"max=50"`
	Email          string `json:"email" binding:"omitempty,email,max=255"`
	RoleId         uint   `json:"role_id" binding:"required"`
	Department     string `json:"department" binding:"max=100"`
	Position       string `json:"position" binding:"max=100"`
	EmployeeId     string `json:"employee_id" binding:"max=50"`
	LicenseNumber  string `json:"license_number" binding:"max=100"`
	Specialization string `json:"specialization" binding:"max=255"`
}

// UpdateUserRequest represents the request payload for updating a User
type UpdateUserRequest struct {
	FirstName      string `json:"first_name,omitempty" binding:"max=255"`
	LastName       string `json:"last_name,omitempty" binding:"max=255"`
	Phone          string `json:"phone,omitempty" binding:"max=50"`
	Email          string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	RoleId         uint   `json:"role_id,omitempty"`
	Department     string `json:"department,omitempty" binding:"max=100"`
	Position       string `json:"position,omitempty" binding:"max=100"`
	EmployeeId     string `json:"employee_id,omitempty" binding:"max=50"`
	LicenseNumber  string `json:"license_number,omitempty" binding:"max=100"`
	Specialization string `json:"specialization,omitempty" binding:"max=255"`
}

// ChangePasswordRequest represents the request payload for changing a password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=100"`
}

// UserResponse represents the API response for User
type UserResponse struct {
	Id             uint                        `json:"id"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
	FirstName      string                      `json:"first_name"`
	LastName       string                      `json:"last_name"`
	Username       string                      `json:"username"`
	Phone          string                      `json:"phone"`
	Email          string                      `json:"email"`
	RoleId         uint                        `json:"role_id"`
	Role           *authorization.RoleResponse `json:"role,omitempty"`
	Department     string                      `json:"department"`
	Position       string                      `json:"position"`
	EmployeeId     string                      `json:"employee_id"`
	LicenseNumber  string                      `json:"license_number"`
	Specialization string                      `json:"specialization"`
	LastLogin      *time.Time                  `json:"last_login,omitempty"`
}

// UserModelResponse represents a simplified response when User is part of other entities
type UserModelResponse struct {
	Id        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Position  string `json:"position"`
}

// UserSelectOption represents a simplified response for select boxes and dropdowns
type UserSelectOption struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

// ToResponse converts the model to an API response
func (m *User) ToResponse() *UserResponse {
	if m == nil {
		return nil
	}
	response := &UserResponse{
		Id:             m.Id,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Username:       m.Username,
		Phone:          m.Phone,
		Email:          m.Email,
		RoleId:         m.RoleId,
		Department:     m.Department,
		Position:       m.Position,
		EmployeeId:     m.EmployeeId,
		LicenseNumber:  m.LicenseNumber,
		Specialization: m.Specialization,
		LastLogin:      m.LastLogin,
	}
	if m.Role != nil {
		response.Role = m.Role.ToResponse()
	}
	return response
}

// ToModelResponse converts the model to a simplified response for when it's part of other entities
func (m *User) ToModelResponse() *UserModelResponse {
	if m == nil {
		return nil
	}
	return &UserModelResponse{
		Id:        m.Id,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Username:  m.Username,
		Position:  m.Position,
	}
}

// ToSelectOption converts the model to a select option for dropdowns
func (m *User) ToSelectOption() *UserSelectOption {
	if m == nil {
		return nil
	}
	return &UserSelectOption{
		Id:   m.Id,
		Name: m.FullName(),
	}
}

// Preload preloads all the model's relationships
func (m *User) Preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Role")
}
