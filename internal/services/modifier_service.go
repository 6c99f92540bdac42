package services

import (
	"errors"
	"strings"
	"time"

	"yoldas/internal/models"
	"yoldas/internal/repository"

	"gorm.io/gorm"
)

// CatalogCache keeps the per-meal modifier catalog hot; the Redis client
// implements it.
type CatalogCache interface {
	GetCatalog(mealID uint) ([]models.ModifierGroup, error)
	SetCatalog(mealID uint, groups []models.ModifierGroup, ttl time.Duration) error
	DeleteCatalog(mealID uint) error
}

// GroupPatch and OptionPatch carry partial updates; nil fields are left
// untouched.
type GroupPatch struct {
	Name      *string `json:"name"`
	Required  *bool   `json:"required"`
	MinSelect *int    `json:"min_select"`
	MaxSelect *int    `json:"max_select"`
	Scope     *string `json:"scope"`
}

type OptionPatch struct {
	Name       *string  `json:"name"`
	PriceDelta *float64 `json:"price_delta"`
	IsDefault  *bool    `json:"is_default"`
}

type ModifierService interface {
	GroupsForMeal(mealID uint) ([]models.ModifierGroup, error)
	ListGroups(restaurantID uint) ([]models.ModifierGroup, error)
	CreateGroup(restaurantID uint, group *models.ModifierGroup) error
	UpdateGroup(groupID uint, patch GroupPatch) error
	DeleteGroup(groupID uint) error
	AttachGroup(mealID, groupID uint) error
	DetachGroup(mealID, groupID uint) error
	CreateOption(groupID uint, option *models.ModifierOption) error
	UpdateOption(optionID uint, patch OptionPatch) error
	DeleteOption(optionID uint) error
}

type modifierService struct {
	modifierRepo repository.ModifierRepository
	cache        CatalogCache
	cacheTTL     time.Duration
}

func NewModifierService(modifierRepo repository.ModifierRepository, cache CatalogCache, cacheTTL time.Duration) ModifierService {
	return &modifierService{modifierRepo: modifierRepo, cache: cache, cacheTTL: cacheTTL}
}

// GroupsForMeal serves the catalog from Redis when possible. Any cache
// error falls through to the database.
func (s *modifierService) GroupsForMeal(mealID uint) ([]models.ModifierGroup, error) {
	if s.cache != nil {
		if groups, err := s.cache.GetCatalog(mealID); err == nil {
			return groups, nil
		}
	}

	groups, err := s.modifierRepo.GetGroupsForMeal(mealID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetCatalog(mealID, groups, s.cacheTTL)
	}
	return groups, nil
}

func (s *modifierService) ListGroups(restaurantID uint) ([]models.ModifierGroup, error) {
	return s.modifierRepo.GetGroupsByRestaurantID(restaurantID)
}

func (s *modifierService) CreateGroup(restaurantID uint, group *models.ModifierGroup) error {
	group.RestaurantID = restaurantID
	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		return errors.New("name required")
	}
	if group.Scope == "" {
		group.Scope = string(models.ScopeBoth)
	}
	if err := checkGroupBounds(group.MinSelect, group.MaxSelect); err != nil {
		return err
	}
	return s.modifierRepo.CreateGroup(group)
}

func (s *modifierService) UpdateGroup(groupID uint, patch GroupPatch) error {
	group, err := s.modifierRepo.GetGroupByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]interface{}{}
	minSelect, maxSelect := group.MinSelect, group.MaxSelect
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Required != nil {
		fields["required"] = *patch.Required
	}
	if patch.MinSelect != nil {
		minSelect = *patch.MinSelect
		fields["min_select"] = minSelect
	}
	if patch.MaxSelect != nil {
		maxSelect = *patch.MaxSelect
		fields["max_select"] = maxSelect
	}
	if patch.Scope != nil {
		fields["scope"] = *patch.Scope
	}
	if len(fields) == 0 {
		return nil
	}
	if err := checkGroupBounds(minSelect, maxSelect); err != nil {
		return err
	}

	if err := s.modifierRepo.UpdateGroupFields(groupID, fields); err != nil {
		return err
	}
	s.invalidateGroup(groupID)
	return nil
}

func (s *modifierService) DeleteGroup(groupID uint) error {
	s.invalidateGroup(groupID)
	return s.modifierRepo.DeleteGroup(groupID)
}

func (s *modifierService) AttachGroup(mealID, groupID uint) error {
	if err := s.modifierRepo.AttachGroup(mealID, groupID); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.DeleteCatalog(mealID)
	}
	return nil
}

func (s *modifierService) DetachGroup(mealID, groupID uint) error {
	if err := s.modifierRepo.DetachGroup(mealID, groupID); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.DeleteCatalog(mealID)
	}
	return nil
}

func (s *modifierService) CreateOption(groupID uint, option *models.ModifierOption) error {
	option.GroupID = groupID
	option.Name = strings.TrimSpace(option.Name)
	if option.Name == "" {
		return errors.New("name required")
	}
	if err := s.modifierRepo.CreateOption(option); err != nil {
		return err
	}
	s.invalidateGroup(groupID)
	return nil
}

func (s *modifierService) UpdateOption(optionID uint, patch OptionPatch) error {
	option, err := s.modifierRepo.GetOptionByID(optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.PriceDelta != nil {
		fields["price_delta"] = *patch.PriceDelta
	}
	if patch.IsDefault != nil {
		fields["is_default"] = *patch.IsDefault
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.modifierRepo.UpdateOptionFields(optionID, fields); err != nil {
		return err
	}
	s.invalidateGroup(option.GroupID)
	return nil
}

func (s *modifierService) DeleteOption(optionID uint) error {
	option, err := s.modifierRepo.GetOptionByID(optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.modifierRepo.DeleteOption(optionID); err != nil {
		return err
	}
	s.invalidateGroup(option.GroupID)
	return nil
}

// invalidateGroup drops the cached catalog of every meal the group is
// attached to. Failures only delay freshness until the TTL expires.
func (s *modifierService) invalidateGroup(groupID uint) {
	if s.cache == nil {
		return
	}
	mealIDs, err := s.modifierRepo.MealIDsForGroup(groupID)
	if err != nil {
		return
	}
	for _, mealID := range mealIDs {
		_ = s.cache.DeleteCatalog(mealID)
	}
}

func checkGroupBounds(minSelect, maxSelect int) error {
	if maxSelect > 0 && minSelect > maxSelect {
		return ErrBadGroupBounds
	}
	return nil
}
