// Package models implements the database layer of the cost tracker.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the base model for resources that are addressed by a
// numeric ID.
type Model struct {
	ID        uint           `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
//
// They are already stored in UTC, but reading them back from sqlite
// returns them as +0000.
func (m *Model) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}
