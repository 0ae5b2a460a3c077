package storage

import (
	"github.com/costtrack/backend/internal/models"
	"gorm.io/gorm"
)

// Users is the user registry.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (u *Users) Create(user *models.User) error {
	return u.db.Create(user).Error
}

func (u *Users) Get(id uint) (models.User, error) {
	var user models.User

	err := u.db.First(&user, id).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (u *Users) List() ([]models.User, error) {
	var users []models.User

	err := u.db.Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (u *Users) Update(user *models.User, fields models.User) error {
	return u.db.Model(user).Updates(fields).Error
}

func (u *Users) Delete(user *models.User) error {
	return u.db.Delete(user).Error
}

// Exists reports whether a user with the ID exists.
func (u *Users) Exists(id uint) (bool, error) {
	var count int64

	err := u.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
