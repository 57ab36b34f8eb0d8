package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dayabrar/Eco-Eats/models"

	"gorm.io/gorm"
)

// LedgerService is the append/remove log of consumption events. It knows
// nothing about daily aggregates; keeping the two in step is the
// ConsumptionService's job.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

func (s *LedgerService) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.db
}

// Append records one consumption event and returns it. The event is
// immutable afterwards except for removal.
func (s *LedgerService) Append(tx *gorm.DB, userID, foodItemID uint, quantity int, unit, mealType string, consumedAt time.Time) (*models.FoodLog, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity %d: %w", quantity, models.ErrInvalidQuantity)
	}
	switch {
	case mealType == "":
		mealType = models.MealSnack
	case !models.ValidMealType(mealType):
		return nil, fmt.Errorf("meal type %q: %w", mealType, models.ErrInvalidMealType)
	}

	db := s.conn(tx)
	var exists int64
	if err := db.Model(&models.FoodItem{}).Where("id = ?", foodItemID).Count(&exists).Error; err != nil {
		return nil, models.NewStorageError(models.StageLedger, "check food item", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("food item %d: %w", foodItemID, models.ErrNotFound)
	}

	entry := &models.FoodLog{
		UserID:     userID,
		FoodItemID: foodItemID,
		Quantity:   quantity,
		Unit:       unit,
		MealType:   mealType,
		ConsumedAt: consumedAt,
	}
	if err := db.Create(entry).Error; err != nil {
		return nil, models.NewStorageError(models.StageLedger, "append food log", err)
	}
	return entry, nil
}

// Get loads an event by id.
func (s *LedgerService) Get(id uint) (*models.FoodLog, error) {
	var entry models.FoodLog
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food log %d: %w", id, models.ErrNotFound)
		}
		return nil, models.NewStorageError(models.StageLedger, "get food log", err)
	}
	return &entry, nil
}

// Remove deletes one event by id.
func (s *LedgerService) Remove(tx *gorm.DB, id uint) error {
	res := s.conn(tx).Delete(&models.FoodLog{}, id)
	if res.Error != nil {
		return models.NewStorageError(models.StageLedger, "delete food log", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("food log %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListForDate returns the user's events whose consumed_at falls on the given
// calendar date, newest first. Each call re-queries; results reflect the
// current ledger, not a frozen snapshot.
func (s *LedgerService) ListForDate(tx *gorm.DB, userID uint, date time.Time) ([]models.FoodLog, error) {
	start := models.DateOf(date)
	end := start.AddDate(0, 0, 1)

	var entries []models.FoodLog
	err := s.conn(tx).
		Preload("FoodItem").
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Order("consumed_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, models.NewStorageError(models.StageLedger, "list food logs", err)
	}
	return entries, nil
}

// RemoveForDate deletes every event on the date, returning the count.
func (s *LedgerService) RemoveForDate(tx *gorm.DB, userID uint, date time.Time) (int64, error) {
	start := models.DateOf(date)
	end := start.AddDate(0, 0, 1)

	res := s.conn(tx).
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Delete(&models.FoodLog{})
	if res.Error != nil {
		return 0, models.NewStorageError(models.StageLedger, "delete food logs for date", res.Error)
	}
	return res.RowsAffected, nil
}
