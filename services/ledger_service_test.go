package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Dayabrar/Eco-Eats/models"
)

func TestAppendMealTypeHandling(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	food := seedFood(t, db, models.FoodItem{Name: "Egg", BaseQuantity: 100, Calories: 155})

	entry, err := ledger.Append(nil, 1, food.ID, 60, "grams", "", testDate.Add(10*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if entry.MealType != models.MealSnack {
		t.Errorf("meal type = %q, want snack when omitted", entry.MealType)
	}

	if _, err := ledger.Append(nil, 1, food.ID, 60, "grams", "brunch", testDate); !errors.Is(err, models.ErrInvalidMealType) {
		t.Errorf("unknown meal type: got %v, want ErrInvalidMealType", err)
	}
}

func TestAppendValidation(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	food := seedFood(t, db, models.FoodItem{Name: "Egg", BaseQuantity: 100, Calories: 155})

	if _, err := ledger.Append(nil, 1, food.ID, 0, "grams", models.MealSnack, testDate); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("zero quantity: got %v, want ErrInvalidQuantity", err)
	}
	if _, err := ledger.Append(nil, 1, 999, 50, "grams", models.MealSnack, testDate); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("unknown food: got %v, want ErrNotFound", err)
	}
}

func TestListForDateBoundaries(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	food := seedFood(t, db, models.FoodItem{Name: "Egg", BaseQuantity: 100, Calories: 155})

	inDay := []time.Time{
		testDate, // midnight inclusive
		testDate.Add(23*time.Hour + 59*time.Minute),
	}
	outOfDay := []time.Time{
		testDate.Add(-time.Minute),
		testDate.Add(24 * time.Hour), // next midnight exclusive
	}
	for _, ts := range append(inDay, outOfDay...) {
		if _, err := ledger.Append(nil, 1, food.ID, 50, "grams", models.MealSnack, ts); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := ledger.ListForDate(nil, 1, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(inDay) {
		t.Errorf("got %d entries, want %d", len(entries), len(inDay))
	}
}

// A fall-back transition day lasts 25 wall-clock hours; events in its final
// hour still belong to that calendar date and must not fall outside the
// window.
func TestListForDateCoversLongDSTDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	food := seedFood(t, db, models.FoodItem{Name: "Egg", BaseQuantity: 100, Calories: 100})

	day := time.Date(2025, 11, 2, 0, 0, 0, 0, loc) // DST ends, 25-hour day
	late := day.Add(24*time.Hour + 30*time.Minute)
	if !models.DateOf(late).Equal(day) {
		t.Fatalf("%v is on %v, expected it on the transition day", late, models.DateOf(late))
	}

	if _, err := ledger.Append(nil, 1, food.ID, 100, "grams", models.MealDinner, late); err != nil {
		t.Fatal(err)
	}

	entries, err := ledger.ListForDate(nil, 1, day)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d events for the event's own calendar date, want 1", len(entries))
	}

	next, err := ledger.ListForDate(nil, 1, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(next) != 0 {
		t.Errorf("event leaked into the next date: %d entries", len(next))
	}
}

func TestRemoveForDateCounts(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedgerService(db)
	food := seedFood(t, db, models.FoodItem{Name: "Egg", BaseQuantity: 100, Calories: 155})

	for i := 0; i < 3; i++ {
		if _, err := ledger.Append(nil, 1, food.ID, 50, "grams", models.MealSnack, testDate.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := ledger.Append(nil, 2, food.ID, 50, "grams", models.MealSnack, testDate); err != nil {
		t.Fatal(err)
	}

	n, err := ledger.RemoveForDate(nil, 1, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("removed %d, want 3", n)
	}

	// user 2's entry is untouched
	remaining, err := ledger.ListForDate(nil, 2, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 {
		t.Errorf("user 2 has %d entries, want 1", len(remaining))
	}
}
