package repository

import (
	"yoldas/internal/models"

	"gorm.io/gorm"
)

type MealRepository interface {
	Create(meal *models.Meal) error
	GetByID(id uint) (*models.Meal, error)
	GetByRestaurantID(restaurantID uint) ([]models.Meal, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepository) GetByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.First(&meal, id).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// GetByRestaurantID orders by section then id so callers can group rows
// into menu sections in one pass.
func (r *mealRepository) GetByRestaurantID(restaurantID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Where("restaurant_id = ?", restaurantID).Order("section, id").Find(&meals).Error
	return meals, err
}

func (r *mealRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Meal{}).Where("id = ?", id).Updates(fields).Error
}

func (r *mealRepository) Delete(id uint) error {
	return r.db.Delete(&models.Meal{}, id).Error
}
