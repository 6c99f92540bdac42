package repository

import (
	"yoldas/internal/models"

	"gorm.io/gorm"
)

type OwnerRepository interface {
	Create(owner *models.Owner) error
	GetByID(id uint) (*models.Owner, error)
	GetByEmail(email string) (*models.Owner, error)
}

type ownerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(owner *models.Owner) error {
	return r.db.Create(owner).Error
}

func (r *ownerRepository) GetByID(id uint) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.First(&owner, id).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) GetByEmail(email string) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.Where("email = ?", email).First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}
