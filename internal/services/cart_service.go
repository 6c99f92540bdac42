package services

import (
	"time"

	"yoldas/internal/cart"
	"yoldas/internal/modifier"
	"yoldas/internal/models"
	"yoldas/internal/pricing"
)

// CartStore persists session carts; the Redis client implements it. Each
// session id has one logical owner, so operations here are plain
// load-modify-store with no locking.
type CartStore interface {
	GetCart(sessionID string) (*cart.Cart, error)
	SetCart(sessionID string, c *cart.Cart, ttl time.Duration) error
	DeleteCart(sessionID string) error
}

// MealSource resolves the meal a line is built from; the menu service
// implements it.
type MealSource interface {
	GetMeal(mealID uint) (*models.Meal, error)
}

// CatalogSource loads the modifier groups attached to a meal; the modifier
// service implements it.
type CatalogSource interface {
	GroupsForMeal(mealID uint) ([]models.ModifierGroup, error)
}

// AddItemRequest carries one add: the meal, the chosen option ids per
// group, and a free-text note.
type AddItemRequest struct {
	MealID  uint            `json:"mealId" binding:"required"`
	Options map[uint][]uint `json:"options"`
	Note    string          `json:"note"`
}

// RemoveItemRequest identifies a line the same way Add does; the note plays
// no part in the identity.
type RemoveItemRequest struct {
	MealID         uint                 `json:"mealId" binding:"required"`
	Customizations []cart.Customization `json:"customizations"`
}

type CartService interface {
	Get(sessionID string) (*cart.Cart, error)
	AddItem(sessionID string, req AddItemRequest) (*cart.Cart, error)
	RemoveItem(sessionID string, req RemoveItemRequest) (*cart.Cart, error)
	Clear(sessionID string) error
}

type cartService struct {
	meals   MealSource
	catalog CatalogSource
	store   CartStore
	ttl     time.Duration
}

func NewCartService(meals MealSource, catalog CatalogSource, store CartStore, ttl time.Duration) CartService {
	return &cartService{meals: meals, catalog: catalog, store: store, ttl: ttl}
}

// Get returns the session's cart; a session without one gets a fresh empty
// cart rather than an error.
func (s *cartService) Get(sessionID string) (*cart.Cart, error) {
	crt, err := s.store.GetCart(sessionID)
	if err != nil {
		return cart.New(), nil
	}
	return crt, nil
}

// AddItem prices and validates the selection, then merges the line into the
// session's cart: catalog -> validator -> priced line -> aggregator.
func (s *cartService) AddItem(sessionID string, req AddItemRequest) (*cart.Cart, error) {
	meal, err := s.meals.GetMeal(req.MealID)
	if err != nil {
		return nil, err
	}
	if meal.OutOfStock {
		return nil, ErrOutOfStock
	}

	groups, err := s.catalog.GroupsForMeal(meal.ID)
	if err != nil {
		return nil, err
	}
	eligible := modifier.Eligible(groups, meal)

	sel := buildSelection(eligible, req.Options)
	if valid, groupID := modifier.Validate(eligible, sel); !valid {
		return nil, selectionErrorFor(eligible, groupID)
	}

	delta := modifier.PriceDelta(eligible, sel)
	line := cart.Line{
		MealID:         meal.ID,
		Name:           meal.Name,
		UnitPrice:      pricing.UnitPrice(meal.Price, meal.Discount, delta),
		Customizations: chosenCustomizations(eligible, sel),
		Note:           req.Note,
	}

	crt, _ := s.Get(sessionID)
	crt.Add(line)
	if err := s.store.SetCart(sessionID, crt, s.ttl); err != nil {
		return nil, err
	}
	return crt, nil
}

// RemoveItem decrements the matching line; an unknown line is a no-op.
func (s *cartService) RemoveItem(sessionID string, req RemoveItemRequest) (*cart.Cart, error) {
	crt, _ := s.Get(sessionID)
	crt.Remove(req.MealID, req.Customizations)
	if err := s.store.SetCart(sessionID, crt, s.ttl); err != nil {
		return nil, err
	}
	return crt, nil
}

func (s *cartService) Clear(sessionID string) error {
	return s.store.DeleteCart(sessionID)
}

// buildSelection replays the requested option ids through Toggle so radio
// and soft-cap semantics match the customization sheet. Duplicate and
// unknown option ids are dropped.
func buildSelection(groups []models.ModifierGroup, options map[uint][]uint) modifier.Selection {
	sel := modifier.Selection{}
	for _, g := range groups {
		seen := map[uint]bool{}
		for _, optionID := range options[g.ID] {
			if seen[optionID] || !groupHasOption(g, optionID) {
				continue
			}
			seen[optionID] = true
			modifier.Toggle(sel, g, optionID)
		}
	}
	return sel
}

// chosenCustomizations snapshots the selection in group then option id
// order, so equivalent picks always serialize identically.
func chosenCustomizations(groups []models.ModifierGroup, sel modifier.Selection) []cart.Customization {
	var out []cart.Customization
	for _, g := range groups {
		for _, optionID := range sel.Options(g.ID) {
			for _, o := range g.Options {
				if o.ID != optionID {
					continue
				}
				out = append(out, cart.Customization{
					GroupID:    g.ID,
					GroupName:  g.Name,
					OptionID:   o.ID,
					OptionName: o.Name,
					PriceDelta: o.PriceDelta,
				})
			}
		}
	}
	return out
}

func selectionErrorFor(groups []models.ModifierGroup, groupID uint) *SelectionError {
	for _, g := range groups {
		if g.ID != groupID {
			continue
		}
		need := g.MinSelect
		if need < 1 {
			need = 1
		}
		return &SelectionError{GroupID: g.ID, GroupName: g.Name, Need: need}
	}
	return &SelectionError{GroupID: groupID, Need: 1}
}

func groupHasOption(g models.ModifierGroup, optionID uint) bool {
	for _, o := range g.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}
