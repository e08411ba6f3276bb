package activities

import (
	"math"
	"time"

	"gorm.io/gorm"

	"meditrack/core/logger"
	"meditrack/core/types"
)

// LogEntry describes an audit event to record
type LogEntry struct {
	Action      string
	Description string
	Category    string
	Severity    string
	EntityType  string
	EntityId    uint
	UserId      uint
	IpAddress   string
	UserAgent   string
}

type ActivityService struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewActivityService(db *gorm.DB, logger logger.Logger) *ActivityService {
	return &ActivityService{
		DB:     db,
		Logger: logger,
	}
}

// Log records an audit entry, never failing the caller
func (s *ActivityService) Log(entry LogEntry) {
	if entry.Severity == "" {
		entry.Severity = SeverityInfo
	}
	activity := Activity{
		Action:      entry.Action,
		Description: entry.Description,
		Category:    entry.Category,
		Severity:    entry.Severity,
		Timestamp:   time.Now(),
		EntityType:  entry.EntityType,
		EntityId:    entry.EntityId,
		UserId:      entry.UserId,
		IpAddress:   entry.IpAddress,
		UserAgent:   entry.UserAgent,
	}
	if err := s.DB.Create(&activity).Error; err != nil {
		s.Logger.Error("failed to record activity",
			logger.String("action", entry.Action),
			logger.String("error", err.Error()))
	}
}

// GetLogs returns the most recent activities, newest first
func (s *ActivityService) GetLogs(limit int) ([]*Activity, error) {
	if limit < 1 {
		limit = 50
	}
	var activities []*Activity
	err := s.DB.Preload("User").
		Order("timestamp DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// GetAll returns activities paginated, optionally filtered by category and severity
func (s *ActivityService) GetAll(page, limit int, category, severity string) (*types.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := s.DB.Model(&Activity{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if severity != "" {
		query = query.Where("severity = ?", severity)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		s.Logger.Error("failed to count activities", logger.String("error", err.Error()))
		return nil, err
	}

	var activities []*Activity
	err := query.Preload("User").
		Order("timestamp DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		s.Logger.Error("failed to fetch activities", logger.String("error", err.Error()))
		return nil, err
	}

	responses := make([]*ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, activity.ToResponse())
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

// GetDailyCounts returns per-day activity counts for the last n days
func (s *ActivityService) GetDailyCounts(days int) ([]types.DatePoint, error) {
	if days < 1 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	var points []types.DatePoint
	err := s.DB.Model(&Activity{}).
		Select("DATE(timestamp) AS date, COUNT(*) AS count").
		Where("timestamp >= ?", since).
		Group("DATE(timestamp)").
		Order("date ASC").
		Scan(&points).Error
	if err != nil {
		s.Logger.Error("failed to fetch activity counts", logger.String("error", err.Error()))
		return nil, err
	}
	return points, nil
}

// CleanupOlderThan deletes activities older than the retention window
func (s *ActivityService) CleanupOlderThan(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := s.DB.Where("timestamp < ?", cutoff).Delete(&Activity{})
	if result.Error != nil {
		s.Logger.Error("failed to clean up activities", logger.String("error", result.Error.Error()))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
