package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dayabrar/Eco-Eats/models"

	"github.com/google/uuid"
)

// Status classifies a nutrient's window average against the reference
// intake tables.
type Status string

const (
	StatusDangerous         Status = "DANGEROUS"
	StatusSignificantlyHigh Status = "SIGNIFICANTLY_HIGH"
	StatusAboveTarget       Status = "ABOVE_TARGET"
	StatusExcellent         Status = "EXCELLENT"
	StatusGood              Status = "GOOD"
	StatusAdequate          Status = "ADEQUATE"
	StatusNeedsImprovement  Status = "NEEDS_IMPROVEMENT"
)

// recommendedValues is the fixed reference intake per day used for
// classification, independent of the user's personal goals.
var recommendedValues = map[string]float64{
	"calories": 2000, "protein_g": 50, "carbs_g": 300, "fats_g": 70,
	"water_ml": 2000, "calcium_mg": 1000, "potassium_mg": 3500,
	"sodium_mg": 2300, "magnesium_mg": 400, "iron_mg": 18, "zinc_mg": 11,
	"vitamin_a_iu": 5000, "vitamin_d_iu": 600, "vitamin_e_iu": 15,
	"vitamin_k_mcg": 120,
}

// maximumSafeValues is the upper safety bound per day; a window average
// beyond it is flagged dangerous regardless of goals.
var maximumSafeValues = map[string]float64{
	"calories": 3500, "protein_g": 200, "carbs_g": 500, "fats_g": 150,
	"water_ml": 5000, "calcium_mg": 2500, "potassium_mg": 6000,
	"sodium_mg": 5000, "magnesium_mg": 700, "iron_mg": 45, "zinc_mg": 40,
	"vitamin_a_iu": 10000, "vitamin_d_iu": 4000, "vitamin_e_iu": 1000,
	"vitamin_k_mcg": 1000,
}

// healthImpacts describes the specific risk of chronic over-consumption for
// nutrients with well-known toxicity profiles.
var healthImpacts = map[string]string{
	"calories":     "Risk of weight gain, obesity",
	"sodium_mg":    "High blood pressure risk",
	"fats_g":       "Cardiovascular risk",
	"protein_g":    "Kidney strain, dehydration",
	"vitamin_a_iu": "Liver damage, bone issues",
	"iron_mg":      "Organ damage risk",
	"calcium_mg":   "Kidney stones, constipation",
}

// NutrientFinding is one nutrient's verdict over the analysis window.
type NutrientFinding struct {
	Nutrient     string  `json:"nutrient"`
	DisplayName  string  `json:"display_name"`
	Unit         string  `json:"unit"`
	Average      float64 `json:"average"`
	Recommended  float64 `json:"recommended"`
	Goal         int     `json:"goal"`
	Status       Status  `json:"status"`
	IsDangerous  bool    `json:"is_dangerous"`
	HealthImpact string  `json:"health_impact,omitempty"`
}

// AnalysisReport is the full consistency report for one user over a rolling
// window ending today.
type AnalysisReport struct {
	ReportID        string            `json:"report_id"`
	From            string            `json:"from"`
	To              string            `json:"to"`
	Days            int               `json:"days"`
	Findings        []NutrientFinding `json:"findings"`
	Recommendations []string          `json:"recommendations"`
}

// AnalyzerService computes rolling-window nutrition consistency reports.
type AnalyzerService struct {
	daily *DailyLogService
	goals *GoalService
}

func NewAnalyzerService(daily *DailyLogService, goals *GoalService) *AnalyzerService {
	return &AnalyzerService{daily: daily, goals: goals}
}

// classify places a window average on the reference scale. Safety wins over
// everything: past the maximum the status is dangerous no matter what the
// recommended ratio says.
func classify(avg, recommended, max float64) Status {
	if avg > max {
		return StatusDangerous
	}
	ratio := avg / recommended
	switch {
	case ratio > 1.5:
		return StatusSignificantlyHigh
	case ratio > 1.2:
		return StatusAboveTarget
	case ratio >= 0.9:
		return StatusExcellent
	case ratio >= 0.7:
		return StatusGood
	case ratio >= 0.5:
		return StatusAdequate
	default:
		return StatusNeedsImprovement
	}
}

// impactFor describes what a sustained excess means for the user's health.
// Only averages above the recommended value get one.
func impactFor(key string, avg, recommended, max float64) string {
	if avg <= recommended {
		return ""
	}
	if avg > max {
		if impact, ok := healthImpacts[key]; ok {
			return impact
		}
		return "Potential toxicity"
	}
	over := (avg - recommended) / recommended
	switch {
	case over < 0.2:
		return "Slightly elevated, monitor"
	case over < 0.5:
		return "Moderately high, adjust intake"
	default:
		return "Significantly high, reduce intake"
	}
}

// AnalyzeWindow averages the user's daily totals over the last `days`
// calendar days ending today and classifies every nutrient. Days with no
// recorded intake count as zero; the denominator is always the window
// length, so sparse logging reads as low intake rather than being hidden.
func (s *AnalyzerService) AnalyzeWindow(ctx context.Context, userID uint, days int) (*AnalysisReport, error) {
	if days <= 0 {
		days = 7
	}
	to := models.DateOf(time.Now())
	from := to.AddDate(0, 0, -(days - 1))

	rows, err := s.daily.ReadRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]models.Nutrients, len(rows))
	for _, row := range rows {
		byDate[row.LogDate.Format("2006-01-02")] = row.Nutrients
	}

	goal, err := s.goals.GetGoals(userID)
	if err != nil {
		return nil, err
	}

	var sums models.Nutrients
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if n, ok := byDate[d.Format("2006-01-02")]; ok {
			sums.Add(n)
		}
	}

	report := &AnalysisReport{
		ReportID: uuid.NewString(),
		From:     from.Format("2006-01-02"),
		To:       to.Format("2006-01-02"),
		Days:     days,
		Findings: make([]NutrientFinding, 0, len(models.NutrientKeys)),
	}

	var dangerous, reduce, increase []NutrientFinding
	for _, key := range models.NutrientKeys {
		avg := float64(sums.ByKey(key)) / float64(days)
		recommended := recommendedValues[key]
		max := maximumSafeValues[key]
		status := classify(avg, recommended, max)

		f := NutrientFinding{
			Nutrient:     key,
			DisplayName:  models.NutrientDisplayName(key),
			Unit:         models.NutrientUnit(key),
			Average:      avg,
			Recommended:  recommended,
			Goal:         goal.Nutrients.ByKey(key),
			Status:       status,
			IsDangerous:  status == StatusDangerous,
			HealthImpact: impactFor(key, avg, recommended, max),
		}
		report.Findings = append(report.Findings, f)

		switch status {
		case StatusDangerous:
			dangerous = append(dangerous, f)
		case StatusSignificantlyHigh, StatusAboveTarget:
			reduce = append(reduce, f)
		case StatusNeedsImprovement:
			increase = append(increase, f)
		}
	}

	for _, f := range dangerous {
		overMax := (f.Average - maximumSafeValues[f.Nutrient]) / maximumSafeValues[f.Nutrient] * 100
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("URGENT: Reduce %s intake immediately (%.0f%% above safe limit)", f.DisplayName, overMax))
	}
	for _, f := range reduce {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Significantly reduce %s intake (currently at %.0f%% of recommended)", f.DisplayName, f.Average/f.Recommended*100))
	}
	for _, f := range increase {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Increase %s intake (currently at %.0f%% of recommended)", f.DisplayName, f.Average/f.Recommended*100))
	}
	if len(report.Recommendations) == 0 {
		report.Recommendations = append(report.Recommendations,
			"Excellent! Your nutrition intake is well-balanced.")
	}
	return report, nil
}
