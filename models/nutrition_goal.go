package models

import (
	"gorm.io/gorm"
)

// NutritionGoal holds a user's daily intake targets, one row per user.
type NutritionGoal struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Nutrients
}

// DefaultNutritionGoal returns the stock targets assigned at registration and
// used whenever a user has no stored goal row.
func DefaultNutritionGoal(userID uint) NutritionGoal {
	return NutritionGoal{
		UserID: userID,
		Nutrients: Nutrients{
			Calories:    2000,
			ProteinG:    150,
			CarbsG:      250,
			FatsG:       65,
			WaterML:     2000,
			CalciumMG:   1000,
			PotassiumMG: 3500,
			SodiumMG:    2300,
			MagnesiumMG: 400,
			IronMG:      18,
			ZincMG:      11,
			VitaminAIU:  5000,
			VitaminDIU:  600,
			VitaminEIU:  22,
			VitaminKMCG: 120,
		},
	}
}
