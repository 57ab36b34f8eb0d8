package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyLog is the materialized per (user, date) nutrient total. WaterML mixes
// two sources: scaled food contributions and manual additions with no backing
// event; recalculation preserves it as-is and rebuilds the other fields from
// the ledger.
type DailyLog struct {
	gorm.Model
	UserID  uint      `gorm:"uniqueIndex:idx_daily_user_date;not null" json:"user_id"`
	LogDate time.Time `gorm:"uniqueIndex:idx_daily_user_date;not null" json:"log_date"`

	Nutrients
}

// DateOf normalizes a timestamp to the midnight of its calendar date,
// keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
