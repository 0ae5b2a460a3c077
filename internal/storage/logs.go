package storage

import (
	"github.com/costtrack/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// Logs stores log events collected from the services.
type Logs struct {
	db *gorm.DB
}

func NewLogs(db *gorm.DB) *Logs {
	return &Logs{db: db}
}

func (l *Logs) Append(event *models.LogEvent) error {
	return l.db.Create(event).Error
}

// List returns collected events in the order they occurred. When match
// is set, only events whose origin or message matches the glob pattern
// are returned.
func (l *Logs) List(match string) ([]models.LogEvent, error) {
	var events []models.LogEvent

	err := l.db.Order("time ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}

	if match == "" {
		return events, nil
	}

	matched := make([]models.LogEvent, 0, len(events))
	for _, event := range events {
		if glob.Glob(match, event.Origin) || glob.Glob(match, event.Message) {
			matched = append(matched, event)
		}
	}

	return matched, nil
}
