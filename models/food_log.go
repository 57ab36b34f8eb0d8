package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal classes accepted on a consumption event.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// ValidMealType reports whether t is one of the four meal classes.
func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// FoodLog is one consumption event. Immutable except for deletion; the
// calendar date of ConsumedAt (not insertion time) decides which DailyLog it
// contributes to.
type FoodLog struct {
	gorm.Model
	UserID     uint      `gorm:"index:idx_log_user_consumed;not null" json:"user_id"`
	FoodItemID uint      `gorm:"not null" json:"food_item_id"`
	FoodItem   FoodItem  `json:"food_item"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Unit       string    `gorm:"type:varchar(20);default:grams" json:"unit"`
	MealType   string    `gorm:"type:varchar(20);default:Snack" json:"meal_type"`
	ConsumedAt time.Time `gorm:"index:idx_log_user_consumed" json:"consumed_at"`
}
