package users

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"meditrack/core/emitter"
	"meditrack/core/logger"
	"meditrack/core/types"
)

const (
	CreateUserEvent = "users.create"
	UpdateUserEvent = "users.update"
	DeleteUserEvent = "users.delete"
)

type UserService struct {
	DB      *gorm.DB
	Emitter *emitter.Emitter
	Logger  logger.Logger
}

func NewUserService(db *gorm.DB, emitter *emitter.Emitter, logger logger.Logger) *UserService {
	return &UserService{
		DB:      db,
		Emitter: emitter,
		Logger:  logger,
	}
}

// Create hashes the password and stores a new user
func (s *UserService) Create(req *CreateUserRequest) (*User, error) {
	var existing User
	err := s.DB.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		return nil, errors.New("username already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("failed to hash password", logger.String("error", err.Error()))
		return nil, errors.New("failed to process password")
	}

	user := User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Username:       req.Username,
		Password:       string(hashed),
		Phone:          req.Phone,
		Email:          req.Email,
		RoleId:         req.RoleId,
		Department:     req.Department,
		Position:       req.Position,
		EmployeeId:     req.EmployeeId,
		LicenseNumber:  req.LicenseNumber,
		Specialization: req.Specialization,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		s.Logger.Error("failed to create user", logger.String("error", err.Error()))
		return nil, err
	}

	s.Emitter.Emit(CreateUserEvent, &user)
	return s.GetById(user.Id)
}

// GetById returns a user with its role preloaded
func (s *UserService) GetById(id uint) (*User, error) {
	var user User
	if err := user.Preload(s.DB).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns a user by its unique username
func (s *UserService) GetByUsername(username string) (*User, error) {
	var user User
	if err := user.Preload(s.DB).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll returns users paginated with optional search and sorting
func (s *UserService) GetAll(page, limit int, search, sortBy, sortDesc string) (*types.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.DB.Model(&User{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where(
			"username LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR department LIKE ?",
			term, term, term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		s.Logger.Error("failed to count users", logger.String("error", err.Error()))
		return nil, err
	}

	query = s.applySorting(query, sortBy, sortDesc)

	var users []*User
	err := query.Preload("Role").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		s.Logger.Error("failed to fetch users", logger.String("error", err.Error()))
		return nil, err
	}

	responses := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
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

// GetAllUsers returns a page of users with roles preloaded
func (s *UserService) GetAllUsers(page, pageSize int) ([]*User, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	var users []*User
	err := s.DB.Preload("Role").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies the request to an existing user
func (s *UserService) Update(id uint, req *UpdateUserRequest) (*User, error) {
	user, err := s.GetById(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.RoleId != 0 {
		updates["role_id"] = req.RoleId
	}
	if req.Department != "" {
		updates["department"] = req.Department
	}
	if req.Position != "" {
		updates["position"] = req.Position
	}
	if req.EmployeeId != "" {
		updates["employee_id"] = req.EmployeeId
	}
	if req.LicenseNumber != "" {
		updates["license_number"] = req.LicenseNumber
	}
	if req.Specialization != "" {
		updates["specialization"] = req.Specialization
	}

	if len(updates) > 0 {
		if err := s.DB.Model(user).Updates(updates).Error; err != nil {
			s.Logger.Error("failed to update user",
				logger.Uint("user_id", id),
				logger.String("error", err.Error()))
			return nil, err
		}
	}

	updated, err := s.GetById(id)
	if err != nil {
		return nil, err
	}
	s.Emitter.Emit(UpdateUserEvent, updated)
	return updated, nil
}

// ChangePassword verifies the current password and stores the new hash
func (s *UserService) ChangePassword(id uint, req *ChangePasswordRequest) error {
	user, err := s.GetById(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("failed to hash password", logger.String("error", err.Error()))
		return errors.New("failed to process password")
	}

	return s.DB.Model(user).Update("password", string(hashed)).Error
}

// Delete soft-deletes a user
func (s *UserService) Delete(id uint) error {
	user, err := s.GetById(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(user).Error; err != nil {
		s.Logger.Error("failed to delete user",
			logger.Uint("user_id", id),
			logger.String("error", err.Error()))
		return err
	}
	s.Emitter.Emit(DeleteUserEvent, user)
	return nil
}

// GetStats returns per-role user counts
func (s *UserService) GetStats() ([]types.ChartPoint, error) {
	type roleCount struct {
		Name  string
		Count int64
	}
	var rows []roleCount
	err := s.DB.Model(&User{}).
		Select("roles.name AS name, COUNT(users.id) AS count").
		Joins("LEFT JOIN roles ON roles.id = users.role_id").
		Group("roles.name").
		Scan(&rows).Error
	if err != nil {
		s.Logger.Error("failed to fetch user stats", logger.String("error", err.Error()))
		return nil, err
	}

	points := make([]types.ChartPoint, 0, len(rows))
	for _, row := range rows {
		name := row.Name
		if name == "" {
			name = "Unassigned"
		}
		points = append(points, types.ChartPoint{Name: name, Value: row.Count})
	}
	return points, nil
}

func (s *UserService) applySorting(query *gorm.DB, sortBy, sortDesc string) *gorm.DB {
	validSortFields := map[string]bool{
		"id":         true,
		"username":   true,
		"first_name": true,
		"last_name":  true,
		"email":      true,
		"department": true,
		"position":   true,
		"created_at": true,
		"last_login": true,
	}

	if sortBy == "" || !validSortFields[sortBy] {
		sortBy = "id"
	}

	direction := "ASC"
	if strings.EqualFold(sortDesc, "true") || strings.EqualFold(sortDesc, "desc") {
		direction = "DESC"
	}

	return query.Order(fmt.Sprintf("%s %s", sortBy, direction))
}
