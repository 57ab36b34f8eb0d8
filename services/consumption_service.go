package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Dayabrar/Eco-Eats/logger"
	"github.com/Dayabrar/Eco-Eats/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConsumptionService coordinates the ledger and the daily totals so the two
// never disagree. Every mutation runs the ledger write and the aggregate
// write inside one database transaction; a failure in either rolls back
// both.
type ConsumptionService struct {
	db      *gorm.DB
	catalog *CatalogService
	ledger  *LedgerService
	daily   *DailyLogService
	hub     *RealtimeHub

	// Serializes writers touching the same (user, date). Readers are never
	// blocked; they may observe totals a write behind, but never a torn
	// write. Entries are reference-counted and dropped once the last
	// holder releases, so the map stays bounded by in-flight writes.
	mu    sync.Mutex
	locks map[string]*dateLock
}

type dateLock struct {
	mu   sync.Mutex
	refs int
}

func NewConsumptionService(db *gorm.DB, catalog *CatalogService, ledger *LedgerService, daily *DailyLogService, hub *RealtimeHub) *ConsumptionService {
	return &ConsumptionService{
		db:      db,
		catalog: catalog,
		ledger:  ledger,
		daily:   daily,
		hub:     hub,
		locks:   make(map[string]*dateLock),
	}
}

// lockFor acquires the (user, date) writer lock and returns its release
// func.
func (s *ConsumptionService) lockFor(userID uint, date time.Time) func() {
	key := fmt.Sprintf("%d/%s", userID, models.DateOf(date).Format("2006-01-02"))

	s.mu.Lock()
	l := s.locks[key]
	if l == nil {
		l = &dateLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}

// AddConsumption logs a food against the date and folds its scaled
// contribution into the date's totals. A zero date means today; the event's
// timestamp keeps the current wall-clock time on that date.
func (s *ConsumptionService) AddConsumption(userID, foodItemID uint, quantity int, unit, mealType string, date time.Time) (*models.FoodLog, error) {
	now := time.Now()
	if date.IsZero() {
		date = now
	}
	day := models.DateOf(date)
	// current wall-clock time placed on the target date; elapsed-duration
	// arithmetic would overshoot on a short DST day
	consumedAt := time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), day.Location())

	unlock := s.lockFor(userID, day)
	defer unlock()

	var entry *models.FoodLog
	var totals models.Nutrients
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var food models.FoodItem
		if err := tx.First(&food, foodItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("food item %d: %w", foodItemID, models.ErrNotFound)
			}
			return models.NewStorageError(models.StageCatalog, "get food item", err)
		}

		contribution, err := food.ScaledNutrition(quantity)
		if err != nil {
			return err
		}

		entry, err = s.ledger.Append(tx, userID, foodItemID, quantity, unit, mealType, consumedAt)
		if err != nil {
			return err
		}
		if err := s.daily.IncrementalAdd(tx, userID, day, contribution); err != nil {
			return err
		}

		var row models.DailyLog
		if err := tx.Where("user_id = ? AND log_date = ?", userID, day).First(&row).Error; err != nil {
			return models.NewStorageError(models.StageAggregate, "read updated totals", err)
		}
		totals = row.Nutrients
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("consumption added",
		zap.Uint("user_id", userID),
		zap.Uint("food_item_id", foodItemID),
		zap.Int("quantity", quantity),
		zap.String("date", day.Format("2006-01-02")))
	s.hub.BroadcastSummary(userID, day, totals)
	return entry, nil
}

// RemoveConsumption deletes one logged event and rebuilds the affected
// date's totals from the remaining events. Users can only remove their own
// entries; a mismatch reads as not found.
func (s *ConsumptionService) RemoveConsumption(userID, logID uint) error {
	entry, err := s.ledger.Get(logID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return fmt.Errorf("food log %d: %w", logID, models.ErrNotFound)
	}
	day := models.DateOf(entry.ConsumedAt)

	unlock := s.lockFor(userID, day)
	defer unlock()

	var totals models.Nutrients
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ledger.Remove(tx, logID); err != nil {
			return err
		}
		if err := s.daily.Recalculate(tx, userID, day); err != nil {
			return err
		}
		var row models.DailyLog
		if err := tx.Where("user_id = ? AND log_date = ?", userID, day).First(&row).Error; err != nil {
			return models.NewStorageError(models.StageAggregate, "read updated totals", err)
		}
		totals = row.Nutrients
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("consumption removed",
		zap.Uint("user_id", userID),
		zap.Uint("food_log_id", logID),
		zap.String("date", day.Format("2006-01-02")))
	s.hub.BroadcastSummary(userID, day, totals)
	return nil
}

// ResetDay clears the date completely: every ledger event and the aggregate
// row, including manually added water.
func (s *ConsumptionService) ResetDay(userID uint, date time.Time) error {
	day := models.DateOf(date)

	unlock := s.lockFor(userID, day)
	defer unlock()

	var removed int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		removed, err = s.ledger.RemoveForDate(tx, userID, day)
		if err != nil {
			return err
		}
		return s.daily.ResetDate(tx, userID, day)
	})
	if err != nil {
		return err
	}

	logger.Info("day reset",
		zap.Uint("user_id", userID),
		zap.String("date", day.Format("2006-01-02")),
		zap.Int64("events_removed", removed))
	s.hub.BroadcastSummary(userID, day, models.Nutrients{})
	return nil
}

// ListDay returns the date's events with their foods, newest first.
func (s *ConsumptionService) ListDay(userID uint, date time.Time) ([]models.FoodLog, error) {
	return s.ledger.ListForDate(nil, userID, date)
}
