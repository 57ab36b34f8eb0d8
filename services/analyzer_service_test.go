package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Dayabrar/Eco-Eats/models"
)

func TestClassifyBands(t *testing.T) {
	// calories: recommended 2000, maximum safe 3500
	cases := []struct {
		avg  float64
		want Status
	}{
		{3600, StatusDangerous},
		{3100, StatusSignificantlyHigh},
		{2500, StatusAboveTarget},
		{1850, StatusExcellent},
		{2000, StatusExcellent},
		{1500, StatusGood},
		{1100, StatusAdequate},
		{800, StatusNeedsImprovement},
		{0, StatusNeedsImprovement},
	}
	for _, tc := range cases {
		if got := classify(tc.avg, 2000, 3500); got != tc.want {
			t.Errorf("classify(%v) = %s, want %s", tc.avg, got, tc.want)
		}
	}
}

func TestClassifyDangerousBeatsRatio(t *testing.T) {
	// above the maximum it is dangerous even when the recommended ratio
	// alone would only say significantly high
	if got := classify(5001, 2000, 5000); got != StatusDangerous {
		t.Errorf("got %s, want DANGEROUS", got)
	}
}

func TestImpactForBands(t *testing.T) {
	cases := []struct {
		key  string
		avg  float64
		want string
	}{
		{"calories", 1800, ""},
		{"calories", 2300, "Slightly elevated, monitor"},
		{"calories", 2900, "Moderately high, adjust intake"},
		{"calories", 3400, "Significantly high, reduce intake"},
		{"calories", 3600, "Risk of weight gain, obesity"},
		{"sodium_mg", 5100, "High blood pressure risk"},
		{"magnesium_mg", 800, "Potential toxicity"},
	}
	for _, tc := range cases {
		var got string
		switch tc.key {
		case "sodium_mg":
			got = impactFor(tc.key, tc.avg, 2300, 5000)
		case "magnesium_mg":
			got = impactFor(tc.key, tc.avg, 400, 700)
		default:
			got = impactFor(tc.key, tc.avg, 2000, 3500)
		}
		if got != tc.want {
			t.Errorf("impactFor(%s, %v) = %q, want %q", tc.key, tc.avg, got, tc.want)
		}
	}
}

func newAnalyzerStack(t *testing.T) (*DailyLogService, *AnalyzerService) {
	t.Helper()
	db := newTestDB(t)
	daily := NewDailyLogService(db)
	goals := NewGoalService(db, daily)
	return daily, NewAnalyzerService(daily, goals)
}

func TestAnalyzeWindowAveragesOverFullWindow(t *testing.T) {
	daily, analyzer := newAnalyzerStack(t)

	// one logged day in a 7-day window; missing days count as zero
	today := models.DateOf(time.Now())
	if err := daily.IncrementalAdd(nil, 1, today, models.Nutrients{Calories: 14000}); err != nil {
		t.Fatal(err)
	}

	report, err := analyzer.AnalyzeWindow(context.Background(), 1, 7)
	if err != nil {
		t.Fatal(err)
	}
	if report.Days != 7 {
		t.Errorf("days = %d, want 7", report.Days)
	}

	var calories *NutrientFinding
	for i := range report.Findings {
		if report.Findings[i].Nutrient == "calories" {
			calories = &report.Findings[i]
		}
	}
	if calories == nil {
		t.Fatal("no calories finding")
	}
	if calories.Average != 2000 {
		t.Errorf("average = %v, want 2000 (14000 over 7 days)", calories.Average)
	}
	if calories.Status != StatusExcellent {
		t.Errorf("status = %s, want EXCELLENT", calories.Status)
	}
}

func TestAnalyzeWindowFlagsDangerousFirst(t *testing.T) {
	daily, analyzer := newAnalyzerStack(t)

	today := models.DateOf(time.Now())
	// avg calories 3600 > 3500 maximum, everything else far below target
	if err := daily.IncrementalAdd(nil, 1, today, models.Nutrients{Calories: 25200}); err != nil {
		t.Fatal(err)
	}

	report, err := analyzer.AnalyzeWindow(context.Background(), 1, 7)
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}
	first := report.Recommendations[0]
	if !strings.HasPrefix(first, "URGENT:") || !strings.Contains(first, "Calories") {
		t.Errorf("first recommendation = %q, want urgent calories warning", first)
	}
	for _, rec := range report.Recommendations[1:] {
		if strings.HasPrefix(rec, "URGENT:") {
			t.Errorf("urgent recommendation after non-urgent ones: %q", rec)
		}
		if !strings.HasPrefix(rec, "Increase ") {
			t.Errorf("unexpected recommendation %q", rec)
		}
	}

	for _, f := range report.Findings {
		if f.Nutrient == "calories" {
			if !f.IsDangerous || f.Status != StatusDangerous {
				t.Errorf("calories finding = %+v, want dangerous", f)
			}
			if f.HealthImpact != "Risk of weight gain, obesity" {
				t.Errorf("health impact = %q", f.HealthImpact)
			}
		}
	}
}

func TestAnalyzeWindowBalancedDiet(t *testing.T) {
	daily, analyzer := newAnalyzerStack(t)

	today := models.DateOf(time.Now())
	// every nutrient exactly at recommended for all 7 days
	perDay := models.Nutrients{
		Calories: 2000, ProteinG: 50, CarbsG: 300, FatsG: 70, WaterML: 2000,
		CalciumMG: 1000, PotassiumMG: 3500, SodiumMG: 2300, MagnesiumMG: 400,
		IronMG: 18, ZincMG: 11, VitaminAIU: 5000, VitaminDIU: 600,
		VitaminEIU: 15, VitaminKMCG: 120,
	}
	for i := 0; i < 7; i++ {
		if err := daily.IncrementalAdd(nil, 1, today.AddDate(0, 0, -i), perDay); err != nil {
			t.Fatal(err)
		}
	}

	report, err := analyzer.AnalyzeWindow(context.Background(), 1, 7)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range report.Findings {
		if f.Status != StatusExcellent {
			t.Errorf("%s status = %s, want EXCELLENT", f.Nutrient, f.Status)
		}
	}
	if len(report.Recommendations) != 1 || !strings.HasPrefix(report.Recommendations[0], "Excellent!") {
		t.Errorf("recommendations = %v, want single balanced message", report.Recommendations)
	}
}
