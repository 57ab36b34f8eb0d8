package services

import (
	"path/filepath"
	"testing"

	"github.com/Dayabrar/Eco-Eats/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.FoodLog{},
		&models.DailyLog{},
		&models.NutritionGoal{},
		&models.AdminLog{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedFood(t *testing.T, db *gorm.DB, food models.FoodItem) models.FoodItem {
	t.Helper()
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food %q: %v", food.Name, err)
	}
	return food
}

func newConsumptionStack(t *testing.T) (*gorm.DB, *ConsumptionService, *DailyLogService) {
	t.Helper()
	db := newTestDB(t)
	daily := NewDailyLogService(db)
	svc := NewConsumptionService(db, NewCatalogService(db), NewLedgerService(db), daily, NewRealtimeHub())
	return db, svc, daily
}
