package services

import (
	"errors"
	"time"

	"github.com/Dayabrar/Eco-Eats/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoalService stores each user's personal daily nutrition targets.
type GoalService struct {
	db    *gorm.DB
	daily *DailyLogService
}

func NewGoalService(db *gorm.DB, daily *DailyLogService) *GoalService {
	return &GoalService{db: db, daily: daily}
}

// GetGoals returns the user's goals, falling back to the defaults when the
// user never customized them.
func (s *GoalService) GetGoals(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		g := models.DefaultNutritionGoal(userID)
		return &g, nil
	}
	if err != nil {
		return nil, models.NewStorageError(models.StageAggregate, "get goals", err)
	}
	return &goal, nil
}

// UpsertGoals replaces the user's targets wholesale.
func (s *GoalService) UpsertGoals(userID uint, targets models.Nutrients) (*models.NutritionGoal, error) {
	goal := models.NutritionGoal{
		UserID:    userID,
		Nutrients: targets,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(models.NutrientKeys),
	}).Create(&goal).Error
	if err != nil {
		return nil, models.NewStorageError(models.StageAggregate, "upsert goals", err)
	}
	return &goal, nil
}

// GoalProgress pairs a date's totals with the user's targets.
type GoalProgress struct {
	Date    string             `json:"date"`
	Goal    models.Nutrients   `json:"goal"`
	Intake  models.Nutrients   `json:"intake"`
	Percent map[string]float64 `json:"percent"`
}

// GetGoalsAndProgress reports how far along each target the user is for the
// date. Percentages cap at 1.0.
func (s *GoalService) GetGoalsAndProgress(userID uint, date time.Time) (*GoalProgress, error) {
	goal, err := s.GetGoals(userID)
	if err != nil {
		return nil, err
	}
	row, err := s.daily.GetForDate(userID, date)
	if err != nil {
		return nil, err
	}
	var intake models.Nutrients
	if row != nil {
		intake = row.Nutrients
	}

	pct := func(cur, target int) float64 {
		if target == 0 {
			return 0
		}
		p := float64(cur) / float64(target)
		if p > 1 {
			return 1
		}
		return p
	}
	percent := make(map[string]float64, len(models.NutrientKeys))
	for _, key := range models.NutrientKeys {
		percent[key] = pct(intake.ByKey(key), goal.Nutrients.ByKey(key))
	}

	return &GoalProgress{
		Date:    models.DateOf(date).Format("2006-01-02"),
		Goal:    goal.Nutrients,
		Intake:  intake,
		Percent: percent,
	}, nil
}
