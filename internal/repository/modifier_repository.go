package repository

import (
	"yoldas/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ModifierRepository interface {
	CreateGroup(group *models.ModifierGroup) error
	GetGroupByID(id uint) (*models.ModifierGroup, error)
	GetGroupsByRestaurantID(restaurantID uint) ([]models.ModifierGroup, error)
	GetGroupsForMeal(mealID uint) ([]models.ModifierGroup, error)
	UpdateGroupFields(id uint, fields map[string]interface{}) error
	DeleteGroup(id uint) error
	AttachGroup(mealID, groupID uint) error
	DetachGroup(mealID, groupID uint) error
	MealIDsForGroup(groupID uint) ([]uint, error)
	CreateOption(option *models.ModifierOption) error
	GetOptionByID(id uint) (*models.ModifierOption, error)
	UpdateOptionFields(id uint, fields map[string]interface{}) error
	DeleteOption(id uint) error
}

type modifierRepository struct {
	db *gorm.DB
}

func NewModifierRepository(db *gorm.DB) ModifierRepository {
	return &modifierRepository{db: db}
}

func (r *modifierRepository) CreateGroup(group *models.ModifierGroup) error {
	return r.db.Create(group).Error
}

func (r *modifierRepository) GetGroupByID(id uint) (*models.ModifierGroup, error) {
	var group models.ModifierGroup
	err := r.db.Preload("Options", optionOrder).First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *modifierRepository) GetGroupsByRestaurantID(restaurantID uint) ([]models.ModifierGroup, error) {
	var groups []models.ModifierGroup
	err := r.db.Preload("Options", optionOrder).
		Where("restaurant_id = ?", restaurantID).
		Order("id desc").
		Find(&groups).Error
	return groups, err
}

// GetGroupsForMeal returns the groups attached to a meal with their options
// inline, ordered by group id then option id. This is the catalog the
// customization sheet and the cart pricing run on.
func (r *modifierRepository) GetGroupsForMeal(mealID uint) ([]models.ModifierGroup, error) {
	var groups []models.ModifierGroup
	err := r.db.Preload("Options", optionOrder).
		Joins("JOIN meal_groups ON meal_groups.group_id = modifier_groups.id").
		Where("meal_groups.meal_id = ?", mealID).
		Order("modifier_groups.id").
		Find(&groups).Error
	return groups, err
}

func (r *modifierRepository) UpdateGroupFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.ModifierGroup{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteGroup removes the group together with its options and meal links.
func (r *modifierRepository) DeleteGroup(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.ModifierOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.MealGroup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ModifierGroup{}, id).Error
	})
}

func (r *modifierRepository) AttachGroup(mealID, groupID uint) error {
	link := models.MealGroup{MealID: mealID, GroupID: groupID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

func (r *modifierRepository) DetachGroup(mealID, groupID uint) error {
	return r.db.Where("meal_id = ? AND group_id = ?", mealID, groupID).Delete(&models.MealGroup{}).Error
}

// MealIDsForGroup lists the meals a group is attached to, used for cache
// invalidation on group and option writes.
func (r *modifierRepository) MealIDsForGroup(groupID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.MealGroup{}).Where("group_id = ?", groupID).Pluck("meal_id", &ids).Error
	return ids, err
}

func (r *modifierRepository) CreateOption(option *models.ModifierOption) error {
	return r.db.Create(option).Error
}

func (r *modifierRepository) GetOptionByID(id uint) (*models.ModifierOption, error) {
	var option models.ModifierOption
	err := r.db.First(&option, id).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *modifierRepository) UpdateOptionFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.ModifierOption{}).Where("id = ?", id).Updates(fields).Error
}

func (r *modifierRepository) DeleteOption(id uint) error {
	return r.db.Delete(&models.ModifierOption{}, id).Error
}

func optionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("modifier_options.id")
}
