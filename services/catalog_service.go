package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dayabrar/Eco-Eats/models"

	"gorm.io/gorm"
)

// CatalogService manages the food item catalog. Mutations are audit-logged
// with the acting admin.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Get(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food item %d: %w", id, models.ErrNotFound)
		}
		return nil, models.NewStorageError(models.StageCatalog, "get food item", err)
	}
	return &food, nil
}

func (s *CatalogService) GetByName(name string) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.Where("name = ?", name).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food item %q: %w", name, models.ErrNotFound)
		}
		return nil, models.NewStorageError(models.StageCatalog, "get food item by name", err)
	}
	return &food, nil
}

// Search lists up to 50 items matching the query as a name substring; an
// empty query lists the first 50.
func (s *CatalogService) Search(query string) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	q := s.db.Order("name ASC").Limit(50)
	if query != "" {
		q = q.Where("name LIKE ?", "%"+query+"%")
	}
	if err := q.Find(&foods).Error; err != nil {
		return nil, models.NewStorageError(models.StageCatalog, "search food items", err)
	}
	return foods, nil
}

func (s *CatalogService) Create(food *models.FoodItem, adminID uint) error {
	if food.BaseQuantity <= 0 {
		return fmt.Errorf("base_quantity %d: %w", food.BaseQuantity, models.ErrInvalidCatalogEntry)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(food).Error; err != nil {
			return models.NewStorageError(models.StageCatalog, "create food item", err)
		}
		return s.recordAction(tx, adminID, "CREATE", food.ID, "Added food: "+food.Name)
	})
}

func (s *CatalogService) Update(food *models.FoodItem, adminID uint) error {
	if food.BaseQuantity <= 0 {
		return fmt.Errorf("base_quantity %d: %w", food.BaseQuantity, models.ErrInvalidCatalogEntry)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FoodItem{}).Where("id = ?", food.ID).Updates(food)
		if res.Error != nil {
			return models.NewStorageError(models.StageCatalog, "update food item", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("food item %d: %w", food.ID, models.ErrNotFound)
		}
		return s.recordAction(tx, adminID, "UPDATE", food.ID, "Updated food: "+food.Name)
	})
}

// Delete removes a catalog entry. Items referenced by logged events cannot be
// deleted; historical contributions must stay recomputable.
func (s *CatalogService) Delete(id uint, adminID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.FoodLog{}).Where("food_item_id = ?", id).Count(&refs).Error; err != nil {
			return models.NewStorageError(models.StageCatalog, "count food references", err)
		}
		if refs > 0 {
			return fmt.Errorf("food item %d has %d logged meals: %w", id, refs, models.ErrFoodInUse)
		}
		res := tx.Delete(&models.FoodItem{}, id)
		if res.Error != nil {
			return models.NewStorageError(models.StageCatalog, "delete food item", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("food item %d: %w", id, models.ErrNotFound)
		}
		return s.recordAction(tx, adminID, "DELETE", id, fmt.Sprintf("Deleted food ID: %d", id))
	})
}

func (s *CatalogService) recordAction(tx *gorm.DB, adminID uint, action string, targetID uint, details string) error {
	entry := models.AdminLog{
		AdminID:     adminID,
		ActionType:  action,
		TargetTable: "food_items",
		TargetID:    targetID,
		Details:     details,
		PerformedAt: time.Now(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return models.NewStorageError(models.StageCatalog, "record admin action", err)
	}
	return nil
}
