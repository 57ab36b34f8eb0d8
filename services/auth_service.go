package services

import (
	"errors"
	"fmt"

	"github.com/Dayabrar/Eco-Eats/logger"
	"github.com/Dayabrar/Eco-Eats/models"
	"github.com/Dayabrar/Eco-Eats/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrNotVerified       = errors.New("account not verified")
	ErrBadCode           = errors.New("invalid verification code")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates the account unverified, seeds default nutrition goals and
// emails a verification code. The email is best-effort; a delivery failure
// never rolls back the account.
func (s *AuthService) Register(email, password, fullName string, age int, gender, activityLevel string) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, models.NewStorageError(models.StageCatalog, "check email", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:            email,
		Password:         hash,
		FullName:         fullName,
		Age:              age,
		Gender:           gender,
		ActivityLevel:    activityLevel,
		VerificationCode: utils.GenerateVerificationCode(),
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return models.NewStorageError(models.StageCatalog, "create user", err)
		}
		goal := models.DefaultNutritionGoal(user.ID)
		if err := tx.Create(&goal).Error; err != nil {
			return models.NewStorageError(models.StageCatalog, "seed default goals", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := utils.SendVerificationEmail(user.Email, user.VerificationCode); err != nil {
		logger.Warn("verification email failed", zap.String("email", user.Email), zap.Error(err))
	}
	return user, nil
}

// Login checks the credentials and returns a signed token for verified
// accounts.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredential
		}
		return "", nil, models.NewStorageError(models.StageCatalog, "get user", err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredential
	}
	if !user.Verified {
		return "", nil, ErrNotVerified
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, &user, nil
}

// Verify activates the account when the emailed code matches.
func (s *AuthService) Verify(email, code string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %q: %w", email, models.ErrNotFound)
		}
		return models.NewStorageError(models.StageCatalog, "get user", err)
	}
	if user.Verified {
		return nil
	}
	if user.VerificationCode == "" || user.VerificationCode != code {
		return ErrBadCode
	}
	err := s.db.Model(&user).Updates(map[string]interface{}{
		"verified":          true,
		"verification_code": "",
	}).Error
	if err != nil {
		return models.NewStorageError(models.StageCatalog, "verify user", err)
	}
	return nil
}
