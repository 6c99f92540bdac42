package services

import (
	"errors"
	"strings"

	"yoldas/internal/models"
	"yoldas/internal/repository"

	"gorm.io/gorm"
)

// MenuSection groups a restaurant's meals under their section label for the
// browsing screen.
type MenuSection struct {
	Title string        `json:"title"`
	Items []models.Meal `json:"items"`
}

// MealPatch carries a partial meal update; nil fields are left untouched.
type MealPatch struct {
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Photo      *string  `json:"photo"`
	Section    *string  `json:"section"`
	Discount   *int     `json:"discount"`
	OutOfStock *bool    `json:"outOfStock"`
}

type MenuService interface {
	ListMeals(restaurantID uint) ([]MenuSection, error)
	GetMeal(mealID uint) (*models.Meal, error)
	AddMeal(restaurantID uint, meal *models.Meal) error
	UpdateMeal(mealID uint, patch MealPatch) (*models.Meal, error)
	DeleteMeal(mealID uint) error
}

type menuService struct {
	mealRepo       repository.MealRepository
	restaurantRepo repository.RestaurantRepository
}

func NewMenuService(mealRepo repository.MealRepository, restaurantRepo repository.RestaurantRepository) MenuService {
	return &menuService{mealRepo: mealRepo, restaurantRepo: restaurantRepo}
}

func (s *menuService) ListMeals(restaurantID uint) ([]MenuSection, error) {
	meals, err := s.mealRepo.GetByRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	// rows arrive ordered by section then id
	sections := []MenuSection{}
	for _, meal := range meals {
		n := len(sections)
		if n == 0 || sections[n-1].Title != meal.Section {
			sections = append(sections, MenuSection{Title: meal.Section})
			n++
		}
		sections[n-1].Items = append(sections[n-1].Items, meal)
	}
	return sections, nil
}

func (s *menuService) GetMeal(mealID uint) (*models.Meal, error) {
	meal, err := s.mealRepo.GetByID(mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return meal, nil
}

// AddMeal looks up the restaurant first so the meal carries its owner id.
func (s *menuService) AddMeal(restaurantID uint, meal *models.Meal) error {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	meal.RestaurantID = restaurantID
	meal.OwnerID = restaurant.OwnerID
	meal.Name = strings.TrimSpace(meal.Name)
	meal.Section = strings.TrimSpace(meal.Section)
	if meal.Section == "" {
		meal.Section = "Main"
	}
	meal.Discount = clampDiscount(meal.Discount)

	return s.mealRepo.Create(meal)
}

func (s *menuService) UpdateMeal(mealID uint, patch MealPatch) (*models.Meal, error) {
	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.Photo != nil {
		fields["photo"] = *patch.Photo
	}
	if patch.Section != nil {
		fields["section"] = strings.TrimSpace(*patch.Section)
	}
	if patch.Discount != nil {
		fields["discount"] = clampDiscount(*patch.Discount)
	}
	if patch.OutOfStock != nil {
		fields["out_of_stock"] = *patch.OutOfStock
	}
	if len(fields) == 0 {
		return s.GetMeal(mealID)
	}

	if err := s.mealRepo.UpdateFields(mealID, fields); err != nil {
		return nil, err
	}
	return s.GetMeal(mealID)
}

func (s *menuService) DeleteMeal(mealID uint) error {
	return s.mealRepo.Delete(mealID)
}

func clampDiscount(d int) int {
	if d < 0 {
		return 0
	}
	if d > 90 {
		return 90
	}
	return d
}
