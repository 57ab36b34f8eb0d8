package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dayabrar/Eco-Eats/models"
)

var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestIncrementalAddAccumulates(t *testing.T) {
	db := newTestDB(t)
	daily := NewDailyLogService(db)

	if err := daily.IncrementalAdd(nil, 1, testDate, models.Nutrients{Calories: 195, ProteinG: 4}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := daily.IncrementalAdd(nil, 1, testDate, models.Nutrients{Calories: 65, ProteinG: 1, SodiumMG: 30}); err != nil {
		t.Fatalf("second add: %v", err)
	}

	row, err := daily.GetForDate(1, testDate)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil {
		t.Fatal("no daily row after adds")
	}
	if row.Calories != 260 || row.ProteinG != 5 || row.SodiumMG != 30 {
		t.Errorf("totals = %+v, want calories 260, protein 5, sodium 30", row.Nutrients)
	}
}

func TestIncrementalAddIsolatesUsersAndDates(t *testing.T) {
	db := newTestDB(t)
	daily := NewDailyLogService(db)

	if err := daily.IncrementalAdd(nil, 1, testDate, models.Nutrients{Calories: 100}); err != nil {
		t.Fatal(err)
	}
	if err := daily.IncrementalAdd(nil, 2, testDate, models.Nutrients{Calories: 200}); err != nil {
		t.Fatal(err)
	}
	if err := daily.IncrementalAdd(nil, 1, testDate.AddDate(0, 0, 1), models.Nutrients{Calories: 300}); err != nil {
		t.Fatal(err)
	}

	row, _ := daily.GetForDate(1, testDate)
	if row == nil || row.Calories != 100 {
		t.Errorf("user 1 day 1 = %+v, want 100 calories", row)
	}
	row, _ = daily.GetForDate(2, testDate)
	if row == nil || row.Calories != 200 {
		t.Errorf("user 2 day 1 = %+v, want 200 calories", row)
	}
}

func TestRecalculatePreservesWater(t *testing.T) {
	db := newTestDB(t)
	daily := NewDailyLogService(db)
	food := seedFood(t, db, models.FoodItem{Name: "Rice", BaseQuantity: 100, Calories: 130, WaterML: 10})

	ledger := NewLedgerService(db)
	if _, err := ledger.Append(nil, 1, food.ID, 200, "grams", models.MealLunch, testDate.Add(12*time.Hour)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := daily.IncrementalAdd(nil, 1, testDate, models.Nutrients{Calories: 260, WaterML: 20}); err != nil {
		t.Fatal(err)
	}
	// manual water on top of the food contribution
	if err := daily.AddWater(1, testDate, 500); err != nil {
		t.Fatalf("add water: %v", err)
	}

	if err := daily.Recalculate(nil, 1, testDate); err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	row, err := daily.GetForDate(1, testDate)
	if err != nil || row == nil {
		t.Fatalf("get after recalc: row=%v err=%v", row, err)
	}
	if row.Calories != 260 {
		t.Errorf("calories = %d, want 260 from ledger", row.Calories)
	}
	if row.WaterML != 520 {
		t.Errorf("water = %d, want 520 preserved", row.WaterML)
	}
}

func TestRecalculateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	daily := NewDailyLogService(db)
	food := seedFood(t, db, models.FoodItem{Name: "Oats", BaseQuantity: 100, Calories: 389, ProteinG: 16.9})

	ledger := NewLedgerService(db)
	if _, err := ledger.Append(nil, 1, food.ID, 50, "grams", models.MealBreakfast, testDate.Add(8*time.Hour)); err != nil {
		t.Fatal(err)
	}

	if err := daily.Recalculate(nil, 1, testDate); err != nil {
		t.Fatal(err)
	}
	first, _ := daily.GetForDate(1, testDate)

	if err := daily.Recalculate(nil, 1, testDate); err != nil {
		t.Fatal(err)
	}
	second, _ := daily.GetForDate(1, testDate)

	if first.Nutrients != second.Nutrients {
		t.Errorf("recalculate drifted: %+v then %+v", first.Nutrients, second.Nutrients)
	}
	if second.Calories != 194 || second.ProteinG != 8 { // 389*0.5 truncated, 16.9*0.5 truncated
		t.Errorf("totals = %+v, want calories 194, protein 8", second.Nutrients)
	}
}

func TestRecalculateCoversLongDSTDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	db := newTestDB(t)
	daily := NewDailyLogService(db)
	ledger := NewLedgerService(db)
	food := seedFood(t, db, models.FoodItem{Name: "Egg", BaseQuantity: 100, Calories: 100})

	day := time.Date(2025, 11, 2, 0, 0, 0, 0, loc) // DST ends, 25-hour day
	late := day.Add(24*time.Hour + 30*time.Minute) // final hour, still Nov 2
	if _, err := ledger.Append(nil, 1, food.ID, 100, "grams", models.MealDinner, late); err != nil {
		t.Fatal(err)
	}

	if err := daily.Recalculate(nil, 1, day); err != nil {
		t.Fatal(err)
	}
	row, err := daily.GetForDate(1, day)
	if err != nil || row == nil {
		t.Fatalf("get after recalc: row=%v err=%v", row, err)
	}
	if row.Calories != 100 {
		t.Errorf("calories = %d, want 100 (event dropped from its own date)", row.Calories)
	}
}

func TestResetDateRemovesRow(t *testing.T) {
	db := newTestDB(t)
	daily := NewDailyLogService(db)

	if err := daily.IncrementalAdd(nil, 1, testDate, models.Nutrients{Calories: 100}); err != nil {
		t.Fatal(err)
	}
	if err := daily.ResetDate(nil, 1, testDate); err != nil {
		t.Fatalf("reset: %v", err)
	}
	row, err := daily.GetForDate(1, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if row != nil {
		t.Errorf("row survived reset: %+v", row)
	}
}

func TestReadRangeReturnsOnlyExistingDates(t *testing.T) {
	db := newTestDB(t)
	daily := NewDailyLogService(db)

	if err := daily.IncrementalAdd(nil, 1, testDate, models.Nutrients{Calories: 100}); err != nil {
		t.Fatal(err)
	}
	if err := daily.IncrementalAdd(nil, 1, testDate.AddDate(0, 0, 3), models.Nutrients{Calories: 300}); err != nil {
		t.Fatal(err)
	}

	rows, err := daily.ReadRange(context.Background(), 1, testDate, testDate.AddDate(0, 0, 6))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Calories != 100 || rows[1].Calories != 300 {
		t.Errorf("rows out of order: %d then %d", rows[0].Calories, rows[1].Calories)
	}
}

func TestAddWaterRejectsOutOfRange(t *testing.T) {
	db := newTestDB(t)
	daily := NewDailyLogService(db)

	for _, ml := range []int{0, -1, 5001} {
		if err := daily.AddWater(1, testDate, ml); !errors.Is(err, models.ErrInvalidQuantity) {
			t.Errorf("AddWater(%d): got %v, want ErrInvalidQuantity", ml, err)
		}
	}
	if err := daily.AddWater(1, testDate, 5000); err != nil {
		t.Errorf("AddWater(5000): %v", err)
	}
}
