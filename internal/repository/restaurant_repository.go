package repository

import (
	"yoldas/internal/models"

	"gorm.io/gorm"
)

type RestaurantRepository interface {
	Create(restaurant *models.Restaurant) error
	GetByID(id uint) (*models.Restaurant, error)
	GetApproved() ([]models.Restaurant, error)
	GetByOwnerID(ownerID uint) ([]models.Restaurant, error)
	SetApproved(id uint, approved bool) error
	UpdatePhoto(id uint, photo string) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *restaurantRepository) GetByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetApproved lists the restaurants customers may see, by name.
func (r *restaurantRepository) GetApproved() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Where("approved = ?", true).Order("name").Find(&restaurants).Error
	return restaurants, err
}

func (r *restaurantRepository) GetByOwnerID(ownerID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Where("owner_id = ?", ownerID).Find(&restaurants).Error
	return restaurants, err
}

func (r *restaurantRepository) SetApproved(id uint, approved bool) error {
	return r.db.Model(&models.Restaurant{}).Where("id = ?", id).Update("approved", approved).Error
}

func (r *restaurantRepository) UpdatePhoto(id uint, photo string) error {
	return r.db.Model(&models.Restaurant{}).Where("id = ?", id).Update("photo", photo).Error
}
