package authorization

import (
	"gorm.io/gorm"
)

// AuthorizationService resolves role and permission checks against the database
type AuthorizationService struct {
	DB *gorm.DB
}

// NewAuthorizationService creates an authorization service
func NewAuthorizationService(db *gorm.DB) *AuthorizationService {
	return &AuthorizationService{DB: db}
}

// GetRoles returns all roles
func (s *AuthorizationService) GetRoles() ([]*Role, error) {
	var roles []*Role
	if err := s.DB.Order("id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// GetRoleByName returns a role by its unique name
func (s *AuthorizationService) GetRoleByName(name string) (*Role, error) {
	var role Role
	if err := s.DB.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// GetPermissionsForRole returns the permissions granted to a role
func (s *AuthorizationService) GetPermissionsForRole(roleId uint) ([]*Permission, error) {
	var permissions []*Permission
	err := s.DB.
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleId).
		Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

// HasPermission reports whether the role is granted the resource/action pair
func (s *AuthorizationService) HasPermission(roleId uint, resourceType, action string) (bool, error) {
	var count int64
	err := s.DB.Model(&Permission{}).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ? AND permissions.resource_type = ? AND permissions.action = ?",
			roleId, resourceType, action).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
