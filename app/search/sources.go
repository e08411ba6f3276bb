package search

import (
	"meditrack/core/app/activities"
	"meditrack/core/app/search"
	"meditrack/core/app/users"
)

const recentLogWindow = 50

// userSource adapts the user service to the search engine
type userSource struct {
	service *users.UserService
}

func (s *userSource) GetAllUsers(page, pageSize int) ([]search.UserRecord, error) {
	accounts, err := s.service.GetAllUsers(page, pageSize)
	if err != nil {
		return nil, err
	}

	records := make([]search.UserRecord, 0, len(accounts))
	for _, account := range accounts {
		records = append(records, search.UserRecord{
			Id:         account.Id,
			Username:   account.Username,
			FullName:   account.FullName(),
			Email:      account.Email,
			Department: account.Department,
			Position:   account.Position,
			Role:       account.RoleName(),
		})
	}
	return records, nil
}

// logSource adapts the activity service to the search engine
type logSource struct {
	service *activities.ActivityService
}

func (s *logSource) GetLogs() ([]search.LogRecord, error) {
	entries, err := s.service.GetLogs(recentLogWindow)
	if err != nil {
		return nil, err
	}

	records := make([]search.LogRecord, 0, len(entries))
	for _, entry := range entries {
		record := search.LogRecord{
			Id:          entry.Id,
			Action:      entry.Action,
			Description: entry.Description,
			Category:    entry.Category,
			Severity:    entry.Severity,
			Timestamp:   entry.Timestamp,
		}
		if entry.User != nil {
			record.Username = entry.User.Username
		}
		records = append(records, record)
	}
	return records, nil
}
