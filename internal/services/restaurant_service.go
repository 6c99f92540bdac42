package services

import (
	"errors"

	"yoldas/internal/models"
	"yoldas/internal/repository"

	"gorm.io/gorm"
)

type RestaurantService interface {
	ListApproved() ([]models.Restaurant, error)
	ListByOwner(ownerID uint) ([]models.Restaurant, error)
	GetByID(id uint) (*models.Restaurant, error)
	Create(restaurant *models.Restaurant) error
	Approve(id uint, approved bool) (*models.Restaurant, error)
	UpdatePhoto(id uint, photo string) (*models.Restaurant, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

func NewRestaurantService(restaurantRepo repository.RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepo: restaurantRepo}
}

func (s *restaurantService) ListApproved() ([]models.Restaurant, error) {
	return s.restaurantRepo.GetApproved()
}

func (s *restaurantService) ListByOwner(ownerID uint) ([]models.Restaurant, error) {
	return s.restaurantRepo.GetByOwnerID(ownerID)
}

func (s *restaurantService) GetByID(id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// Create registers a new restaurant. It always starts unapproved; an admin
// flips the flag before customers can see it.
func (s *restaurantService) Create(restaurant *models.Restaurant) error {
	restaurant.Approved = false
	return s.restaurantRepo.Create(restaurant)
}

func (s *restaurantService) Approve(id uint, approved bool) (*models.Restaurant, error) {
	if err := s.restaurantRepo.SetApproved(id, approved); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *restaurantService) UpdatePhoto(id uint, photo string) (*models.Restaurant, error) {
	if err := s.restaurantRepo.UpdatePhoto(id, photo); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
