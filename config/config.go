package config

import (
	"fmt"
	"os"

	"github.com/Dayabrar/Eco-Eats/logger"
	"github.com/Dayabrar/Eco-Eats/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetEnv reads an environment variable with a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB loads .env (if present), opens the postgres connection and runs
// migrations. The handle is returned to the caller; services receive it
// explicitly rather than reading a package global.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_NAME", "ecoeats_db"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.FoodLog{},
		&models.DailyLog{},
		&models.NutritionGoal{},
		&models.AdminLog{},
	); err != nil {
		logger.Fatal("automigrate failed", zap.Error(err))
	}

	return db
}
