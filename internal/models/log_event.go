package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogEvent is a log line collected from one of the services.
type LogEvent struct {
	ID      uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Time    time.Time `json:"time"`
	Level   string    `json:"level" example:"info"`
	Origin  string    `json:"origin" example:"cost-service"`
	Message string    `json:"message"`
}

// BeforeCreate generates the ID and fills in defaults.
func (e *LogEvent) BeforeCreate(_ *gorm.DB) error {
	e.ID = uuid.New()

	if e.Time.IsZero() {
		e.Time = time.Now().In(time.UTC)
	}

	if e.Level == "" {
		e.Level = "info"
	}

	return nil
}

// BeforeSave trims whitespace from all strings.
func (e *LogEvent) BeforeSave(_ *gorm.DB) error {
	e.Level = strings.TrimSpace(e.Level)
	e.Origin = strings.TrimSpace(e.Origin)
	e.Message = strings.TrimSpace(e.Message)

	return nil
}

// AfterFind updates the timestamp to use UTC as timezone, not +0000.
func (e *LogEvent) AfterFind(_ *gorm.DB) error {
	e.Time = e.Time.In(time.UTC)

	return nil
}
