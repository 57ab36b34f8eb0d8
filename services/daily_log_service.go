package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dayabrar/Eco-Eats/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyLogService owns the materialized per (user, date) totals. It has two
// mutation modes: field-wise incremental addition on append, and full
// recalculation from the ledger on anything else. Incremental subtraction is
// deliberately absent; truncated contributions do not subtract back cleanly.
type DailyLogService struct {
	db *gorm.DB
}

func NewDailyLogService(db *gorm.DB) *DailyLogService {
	return &DailyLogService{db: db}
}

func (s *DailyLogService) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.db
}

// nutrientColumns in upsert order.
var nutrientColumns = models.NutrientKeys

// IncrementalAdd creates the (user, date) row from the contribution, or adds
// the contribution field-wise onto the existing totals. Summation is
// monotonic, so this is only correct for appends.
func (s *DailyLogService) IncrementalAdd(tx *gorm.DB, userID uint, date time.Time, c models.Nutrients) error {
	row := models.DailyLog{
		UserID:    userID,
		LogDate:   models.DateOf(date),
		Nutrients: c,
	}

	additive := make(map[string]interface{}, len(nutrientColumns))
	for _, col := range nutrientColumns {
		additive[col] = gorm.Expr(fmt.Sprintf("daily_logs.%s + EXCLUDED.%s", col, col))
	}

	err := s.conn(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "log_date"}},
		DoUpdates: clause.Assignments(additive),
	}).Create(&row).Error
	if err != nil {
		return models.NewStorageError(models.StageAggregate, "incremental add", err)
	}
	return nil
}

// Recalculate rebuilds the date's totals from every remaining ledger event,
// replacing the ledger-derived fields wholesale. water_ml is carried over
// unchanged: manual water additions have no backing event and a re-sum would
// erase them. O(events for the date) on purpose; it can never drift or
// double-count.
func (s *DailyLogService) Recalculate(tx *gorm.DB, userID uint, date time.Time) error {
	db := s.conn(tx)
	start := models.DateOf(date)
	// next calendar midnight, not start+24h: a DST transition day is 23 or
	// 25 wall-clock hours long
	end := start.AddDate(0, 0, 1)

	var events []models.FoodLog
	if err := db.Preload("FoodItem").
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Find(&events).Error; err != nil {
		return models.NewStorageError(models.StageAggregate, "read events for recalculation", err)
	}

	var totals models.Nutrients
	for _, ev := range events {
		contribution, err := ev.FoodItem.ScaledNutrition(ev.Quantity)
		if err != nil {
			return fmt.Errorf("recalculate %s: %w", start.Format("2006-01-02"), err)
		}
		totals.Add(contribution)
	}

	var existing models.DailyLog
	err := db.Where("user_id = ? AND log_date = ?", userID, start).First(&existing).Error
	switch {
	case err == nil:
		totals.WaterML = existing.WaterML
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no row yet; water starts at zero
	default:
		return models.NewStorageError(models.StageAggregate, "read existing totals", err)
	}

	row := models.DailyLog{
		UserID:    userID,
		LogDate:   start,
		Nutrients: totals,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "log_date"}},
		DoUpdates: clause.AssignmentColumns(nutrientColumns),
	}).Create(&row).Error
	if err != nil {
		return models.NewStorageError(models.StageAggregate, "write recalculated totals", err)
	}
	return nil
}

// ResetDate drops the aggregate row only. The underlying events survive; a
// full day reset must also clear the ledger in the same transaction (see
// ConsumptionService.ResetDay).
func (s *DailyLogService) ResetDate(tx *gorm.DB, userID uint, date time.Time) error {
	err := s.conn(tx).
		Where("user_id = ? AND log_date = ?", userID, models.DateOf(date)).
		Delete(&models.DailyLog{}).Error
	if err != nil {
		return models.NewStorageError(models.StageAggregate, "reset date", err)
	}
	return nil
}

// GetForDate returns the date's row, or nil when none exists. Absent rows are
// absent, not zero; callers averaging over a window default them themselves.
func (s *DailyLogService) GetForDate(userID uint, date time.Time) (*models.DailyLog, error) {
	var row models.DailyLog
	err := s.db.Where("user_id = ? AND log_date = ?", userID, models.DateOf(date)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewStorageError(models.StageAggregate, "get daily log", err)
	}
	return &row, nil
}

// ReadRange returns the rows that exist between from and to inclusive,
// oldest first.
func (s *DailyLogService) ReadRange(ctx context.Context, userID uint, from, to time.Time) ([]models.DailyLog, error) {
	var rows []models.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date >= ? AND log_date <= ?", userID, models.DateOf(from), models.DateOf(to)).
		Order("log_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, models.NewStorageError(models.StageAggregate, "read range", err)
	}
	return rows, nil
}

// AddWater records a manual water addition for the date, 1..5000 ml per
// entry. No ledger event backs it; recalculation leaves it alone.
func (s *DailyLogService) AddWater(userID uint, date time.Time, ml int) error {
	if ml <= 0 || ml > 5000 {
		return fmt.Errorf("water amount %d ml: %w", ml, models.ErrInvalidQuantity)
	}
	return s.IncrementalAdd(nil, userID, date, models.Nutrients{WaterML: ml})
}
