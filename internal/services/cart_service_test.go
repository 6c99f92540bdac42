package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yoldas/internal/cart"
	"yoldas/internal/models"
	"yoldas/internal/redis"
)

type MockMealSource struct {
	mock.Mock
}

func (m *MockMealSource) GetMeal(mealID uint) (*models.Meal, error) {
	args := m.Called(mealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) GroupsForMeal(mealID uint) ([]models.ModifierGroup, error) {
	args := m.Called(mealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ModifierGroup), args.Error(1)
}

// fakeCartStore keeps carts in a map, standing in for Redis.
type fakeCartStore struct {
	carts map[string]*cart.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[string]*cart.Cart{}}
}

func (s *fakeCartStore) GetCart(sessionID string) (*cart.Cart, error) {
	if c, ok := s.carts[sessionID]; ok {
		return c, nil
	}
	return nil, redis.ErrCacheMiss
}

func (s *fakeCartStore) SetCart(sessionID string, c *cart.Cart, _ time.Duration) error {
	s.carts[sessionID] = c
	return nil
}

func (s *fakeCartStore) DeleteCart(sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

func kebap() *models.Meal {
	return &models.Meal{ID: 1, RestaurantID: 3, Section: "Main", Name: "Lamb Kebap", Price: 20.00, Discount: 25}
}

func kebapGroups() []models.ModifierGroup {
	return []models.ModifierGroup{
		{
			ID: 1, Name: "Spiciness", Required: true, MinSelect: 1, MaxSelect: 1, Scope: "food",
			Options: []models.ModifierOption{
				{ID: 10, GroupID: 1, Name: "Not spicy", IsDefault: true},
				{ID: 11, GroupID: 1, Name: "Hot"},
			},
		},
		{
			ID: 2, Name: "Toppings", MaxSelect: 2, Scope: "both",
			Options: []models.ModifierOption{
				{ID: 20, GroupID: 2, Name: "Cheese", PriceDelta: 1.00},
				{ID: 21, GroupID: 2, Name: "Bacon", PriceDelta: 1.50},
				{ID: 22, GroupID: 2, Name: "Onion", PriceDelta: 0.25},
			},
		},
	}
}

func newTestCartService(meal *models.Meal, groups []models.ModifierGroup) (CartService, *fakeCartStore) {
	meals := new(MockMealSource)
	meals.On("GetMeal", meal.ID).Return(meal, nil)

	catalog := new(MockCatalogSource)
	catalog.On("GroupsForMeal", meal.ID).Return(groups, nil)

	store := newFakeCartStore()
	return NewCartService(meals, catalog, store, time.Hour), store
}

func TestAddItemPricesAndMergesLines(t *testing.T) {
	svc, _ := newTestCartService(kebap(), kebapGroups())

	req := AddItemRequest{
		MealID:  1,
		Options: map[uint][]uint{1: {11}, 2: {20}},
		Note:    "extra bread",
	}

	crt, err := svc.AddItem("sess-1", req)
	assert.NoError(t, err)
	assert.Len(t, crt.Lines, 1)
	// 20.00 at 25% off is 15.00, plus cheese 1.00
	assert.InDelta(t, 16.00, crt.Lines[0].UnitPrice, 1e-2)
	assert.InDelta(t, 16.00, crt.Total, 1e-2)
	assert.Equal(t, "extra bread", crt.Lines[0].Note)

	// same meal, options picked in the opposite order: merges into one line
	crt, err = svc.AddItem("sess-1", AddItemRequest{
		MealID:  1,
		Options: map[uint][]uint{2: {20}, 1: {11}},
	})
	assert.NoError(t, err)
	assert.Len(t, crt.Lines, 1)
	assert.Equal(t, 2, crt.Lines[0].Qty)
	assert.InDelta(t, 32.00, crt.Total, 1e-2)
}

func TestAddItemCustomizationSnapshotIsOrdered(t *testing.T) {
	svc, _ := newTestCartService(kebap(), kebapGroups())

	crt, err := svc.AddItem("sess-1", AddItemRequest{
		MealID:  1,
		Options: map[uint][]uint{2: {21, 20}, 1: {10}},
	})
	assert.NoError(t, err)

	cs := crt.Lines[0].Customizations
	assert.Len(t, cs, 3)
	assert.Equal(t, uint(10), cs[0].OptionID)
	assert.Equal(t, uint(20), cs[1].OptionID)
	assert.Equal(t, uint(21), cs[2].OptionID)
	assert.Equal(t, "Spiciness", cs[0].GroupName)
}

func TestAddItemMissingRequiredGroup(t *testing.T) {
	svc, store := newTestCartService(kebap(), kebapGroups())

	_, err := svc.AddItem("sess-1", AddItemRequest{MealID: 1})

	var selErr *SelectionError
	assert.ErrorAs(t, err, &selErr)
	assert.Equal(t, uint(1), selErr.GroupID)
	assert.Equal(t, 1, selErr.Need)
	assert.Empty(t, store.carts, "nothing is saved when validation fails")
}

func TestAddItemIgnoresOptionsBeyondCap(t *testing.T) {
	svc, _ := newTestCartService(kebap(), kebapGroups())

	crt, err := svc.AddItem("sess-1", AddItemRequest{
		MealID:  1,
		Options: map[uint][]uint{1: {10}, 2: {20, 21, 22}},
	})
	assert.NoError(t, err)
	// toppings are capped at 2; the third pick is dropped, not an error
	assert.Len(t, crt.Lines[0].Customizations, 3)
	assert.InDelta(t, 17.50, crt.Lines[0].UnitPrice, 1e-2) // 15.00 + 1.00 + 1.50
}

func TestAddItemIgnoresUnknownOptionIDs(t *testing.T) {
	svc, _ := newTestCartService(kebap(), kebapGroups())

	crt, err := svc.AddItem("sess-1", AddItemRequest{
		MealID:  1,
		Options: map[uint][]uint{1: {10}, 2: {999}},
	})
	assert.NoError(t, err)
	assert.Len(t, crt.Lines[0].Customizations, 1)
	assert.InDelta(t, 15.00, crt.Lines[0].UnitPrice, 1e-2)
}

func TestAddItemSkipsIneligibleGroups(t *testing.T) {
	tea := &models.Meal{ID: 2, RestaurantID: 3, Section: "Drinks", Name: "Green Tea", Price: 4.50}
	// the required spiciness group is food-scoped, so the drink ignores it
	svc, _ := newTestCartService(tea, kebapGroups())

	crt, err := svc.AddItem("sess-1", AddItemRequest{MealID: 2})
	assert.NoError(t, err)
	assert.Len(t, crt.Lines, 1)
	assert.Empty(t, crt.Lines[0].Customizations)
	assert.InDelta(t, 4.50, crt.Total, 1e-2)
}

func TestAddItemOutOfStock(t *testing.T) {
	meal := kebap()
	meal.OutOfStock = true
	svc, _ := newTestCartService(meal, kebapGroups())

	_, err := svc.AddItem("sess-1", AddItemRequest{MealID: 1, Options: map[uint][]uint{1: {10}}})
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestRemoveItemDecrementsAndDeletes(t *testing.T) {
	svc, _ := newTestCartService(kebap(), kebapGroups())
	add := AddItemRequest{MealID: 1, Options: map[uint][]uint{1: {10}}}

	crt, _ := svc.AddItem("sess-1", add)
	crt, _ = svc.AddItem("sess-1", add)
	assert.Equal(t, 2, crt.Lines[0].Qty)

	remove := RemoveItemRequest{MealID: 1, Customizations: crt.Lines[0].Customizations}
	crt, err := svc.RemoveItem("sess-1", remove)
	assert.NoError(t, err)
	assert.Equal(t, 1, crt.Lines[0].Qty)

	crt, err = svc.RemoveItem("sess-1", remove)
	assert.NoError(t, err)
	assert.Empty(t, crt.Lines)
	assert.Equal(t, 0.0, crt.Total)

	// removing what is no longer there is a no-op
	crt, err = svc.RemoveItem("sess-1", remove)
	assert.NoError(t, err)
	assert.Empty(t, crt.Lines)
}

func TestClearDropsSessionCart(t *testing.T) {
	svc, store := newTestCartService(kebap(), kebapGroups())

	_, _ = svc.AddItem("sess-1", AddItemRequest{MealID: 1, Options: map[uint][]uint{1: {10}}})
	assert.NoError(t, svc.Clear("sess-1"))
	assert.Empty(t, store.carts)

	crt, err := svc.Get("sess-1")
	assert.NoError(t, err)
	assert.Empty(t, crt.Lines)
}
