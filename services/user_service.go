package services

import (
	"errors"
	"fmt"

	"github.com/Dayabrar/Eco-Eats/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, models.ErrNotFound)
		}
		return nil, models.NewStorageError(models.StageCatalog, "get user", err)
	}
	return &user, nil
}

// UpdateProfile changes the mutable profile fields; email, password and role
// are managed elsewhere.
func (s *UserService) UpdateProfile(id uint, fullName string, age int, gender, activityLevel string) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"full_name":      fullName,
		"age":            age,
		"gender":         gender,
		"activity_level": activityLevel,
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, models.NewStorageError(models.StageCatalog, "update profile", err)
	}
	return user, nil
}
