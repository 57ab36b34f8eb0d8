package models

import (
	"fmt"

	"gorm.io/gorm"
)

// FoodItem is a catalog entry: nutrient content per BaseQuantity units.
// Protein, carbs, fats, iron, zinc, vitamin E and vitamin K may be fractional
// in the catalog; contributions are truncated to whole units.
type FoodItem struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	FoodGroup    string `gorm:"column:food_group" json:"food_group"`
	BaseQuantity int    `gorm:"column:base_quantity;default:100" json:"base_quantity"`

	Calories    int     `gorm:"column:calories" json:"calories"`
	ProteinG    float64 `gorm:"column:protein_g" json:"protein_g"`
	CarbsG      float64 `gorm:"column:carbs_g" json:"carbs_g"`
	FatsG       float64 `gorm:"column:fats_g" json:"fats_g"`
	WaterML     int     `gorm:"column:water_ml" json:"water_ml"`
	CalciumMG   int     `gorm:"column:calcium_mg" json:"calcium_mg"`
	PotassiumMG int     `gorm:"column:potassium_mg" json:"potassium_mg"`
	SodiumMG    int     `gorm:"column:sodium_mg" json:"sodium_mg"`
	MagnesiumMG int     `gorm:"column:magnesium_mg" json:"magnesium_mg"`
	IronMG      float64 `gorm:"column:iron_mg" json:"iron_mg"`
	ZincMG      float64 `gorm:"column:zinc_mg" json:"zinc_mg"`
	VitaminAIU  int     `gorm:"column:vitamin_a_iu" json:"vitamin_a_iu"`
	VitaminDIU  int     `gorm:"column:vitamin_d_iu" json:"vitamin_d_iu"`
	VitaminEIU  float64 `gorm:"column:vitamin_e_iu" json:"vitamin_e_iu"`
	VitaminKMCG float64 `gorm:"column:vitamin_k_mcg" json:"vitamin_k_mcg"`
}

// ScaledNutrition computes the contribution of consuming quantity units of
// this item. Each field is floor(field * quantity / baseQuantity), truncated
// toward zero independently per field. Whole-number fields use exact integer
// arithmetic; fractional fields truncate the float product.
//
// Deleting an event must NOT subtract a previously-added contribution:
// truncation discards remainders, so subtraction does not invert addition.
// Removal paths recalculate the whole date instead.
func (f *FoodItem) ScaledNutrition(quantity int) (Nutrients, error) {
	if f.BaseQuantity <= 0 {
		return Nutrients{}, fmt.Errorf("food %q has base_quantity %d: %w", f.Name, f.BaseQuantity, ErrInvalidCatalogEntry)
	}
	if quantity <= 0 {
		return Nutrients{}, fmt.Errorf("quantity %d: %w", quantity, ErrInvalidQuantity)
	}

	whole := func(v int) int { return v * quantity / f.BaseQuantity }
	frac := func(v float64) int { return int(v * float64(quantity) / float64(f.BaseQuantity)) }

	return Nutrients{
		Calories:    whole(f.Calories),
		ProteinG:    frac(f.ProteinG),
		CarbsG:      frac(f.CarbsG),
		FatsG:       frac(f.FatsG),
		WaterML:     whole(f.WaterML),
		CalciumMG:   whole(f.CalciumMG),
		PotassiumMG: whole(f.PotassiumMG),
		SodiumMG:    whole(f.SodiumMG),
		MagnesiumMG: whole(f.MagnesiumMG),
		IronMG:      frac(f.IronMG),
		ZincMG:      frac(f.ZincMG),
		VitaminAIU:  whole(f.VitaminAIU),
		VitaminDIU:  whole(f.VitaminDIU),
		VitaminEIU:  frac(f.VitaminEIU),
		VitaminKMCG: frac(f.VitaminKMCG),
	}, nil
}
