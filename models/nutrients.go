package models

// Nutrients is the 15-field nutrient vector shared by contributions and
// daily totals. All values are whole units of the column's measure
// (kcal, g, ml, mg, IU, mcg).
type Nutrients struct {
	Calories    int `gorm:"column:calories" json:"calories"`
	ProteinG    int `gorm:"column:protein_g" json:"protein_g"`
	CarbsG      int `gorm:"column:carbs_g" json:"carbs_g"`
	FatsG       int `gorm:"column:fats_g" json:"fats_g"`
	WaterML     int `gorm:"column:water_ml" json:"water_ml"`
	CalciumMG   int `gorm:"column:calcium_mg" json:"calcium_mg"`
	PotassiumMG int `gorm:"column:potassium_mg" json:"potassium_mg"`
	SodiumMG    int `gorm:"column:sodium_mg" json:"sodium_mg"`
	MagnesiumMG int `gorm:"column:magnesium_mg" json:"magnesium_mg"`
	IronMG      int `gorm:"column:iron_mg" json:"iron_mg"`
	ZincMG      int `gorm:"column:zinc_mg" json:"zinc_mg"`
	VitaminAIU  int `gorm:"column:vitamin_a_iu" json:"vitamin_a_iu"`
	VitaminDIU  int `gorm:"column:vitamin_d_iu" json:"vitamin_d_iu"`
	VitaminEIU  int `gorm:"column:vitamin_e_iu" json:"vitamin_e_iu"`
	VitaminKMCG int `gorm:"column:vitamin_k_mcg" json:"vitamin_k_mcg"`
}

// NutrientKeys lists the column keys in report order.
var NutrientKeys = []string{
	"calories", "protein_g", "carbs_g", "fats_g", "water_ml",
	"calcium_mg", "potassium_mg", "sodium_mg", "magnesium_mg",
	"iron_mg", "zinc_mg",
	"vitamin_a_iu", "vitamin_d_iu", "vitamin_e_iu", "vitamin_k_mcg",
}

// Add accumulates other into n field-wise.
func (n *Nutrients) Add(other Nutrients) {
	n.Calories += other.Calories
	n.ProteinG += other.ProteinG
	n.CarbsG += other.CarbsG
	n.FatsG += other.FatsG
	n.WaterML += other.WaterML
	n.CalciumMG += other.CalciumMG
	n.PotassiumMG += other.PotassiumMG
	n.SodiumMG += other.SodiumMG
	n.MagnesiumMG += other.MagnesiumMG
	n.IronMG += other.IronMG
	n.ZincMG += other.ZincMG
	n.VitaminAIU += other.VitaminAIU
	n.VitaminDIU += other.VitaminDIU
	n.VitaminEIU += other.VitaminEIU
	n.VitaminKMCG += other.VitaminKMCG
}

// ByKey returns the field value for a column key from NutrientKeys.
func (n Nutrients) ByKey(key string) int {
	switch key {
	case "calories":
		return n.Calories
	case "protein_g":
		return n.ProteinG
	case "carbs_g":
		return n.CarbsG
	case "fats_g":
		return n.FatsG
	case "water_ml":
		return n.WaterML
	case "calcium_mg":
		return n.CalciumMG
	case "potassium_mg":
		return n.PotassiumMG
	case "sodium_mg":
		return n.SodiumMG
	case "magnesium_mg":
		return n.MagnesiumMG
	case "iron_mg":
		return n.IronMG
	case "zinc_mg":
		return n.ZincMG
	case "vitamin_a_iu":
		return n.VitaminAIU
	case "vitamin_d_iu":
		return n.VitaminDIU
	case "vitamin_e_iu":
		return n.VitaminEIU
	case "vitamin_k_mcg":
		return n.VitaminKMCG
	}
	return 0
}

// NutrientDisplayName maps a column key to its human label.
func NutrientDisplayName(key string) string {
	switch key {
	case "calories":
		return "Calories"
	case "protein_g":
		return "Protein"
	case "carbs_g":
		return "Carbohydrates"
	case "fats_g":
		return "Fats"
	case "water_ml":
		return "Water"
	case "calcium_mg":
		return "Calcium"
	case "potassium_mg":
		return "Potassium"
	case "sodium_mg":
		return "Sodium"
	case "magnesium_mg":
		return "Magnesium"
	case "iron_mg":
		return "Iron"
	case "zinc_mg":
		return "Zinc"
	case "vitamin_a_iu":
		return "Vitamin A"
	case "vitamin_d_iu":
		return "Vitamin D"
	case "vitamin_e_iu":
		return "Vitamin E"
	case "vitamin_k_mcg":
		return "Vitamin K"
	}
	return key
}

// NutrientUnit maps a column key to its unit suffix.
func NutrientUnit(key string) string {
	switch {
	case key == "calories":
		return "kcal"
	case len(key) > 4 && key[len(key)-4:] == "_mcg":
		return "mcg"
	case len(key) > 3 && key[len(key)-3:] == "_mg":
		return "mg"
	case len(key) > 3 && key[len(key)-3:] == "_ml":
		return "ml"
	case len(key) > 3 && key[len(key)-3:] == "_iu":
		return "IU"
	case len(key) > 2 && key[len(key)-2:] == "_g":
		return "g"
	}
	return ""
}
