package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a person tracking their costs.
type User struct {
	Model
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// BeforeSave trims whitespace and verifies that the name is set.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	if u.Name == "" {
		return ErrUserNameMissing
	}

	return nil
}
