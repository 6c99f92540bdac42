package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yoldas/internal/models"
)

func spiciness() models.ModifierGroup {
	return models.ModifierGroup{
		ID: 1, Name: "Spiciness", Required: true, MinSelect: 1, MaxSelect: 1, Scope: "food",
		Options: []models.ModifierOption{
			{ID: 10, GroupID: 1, Name: "Not spicy", IsDefault: true},
			{ID: 11, GroupID: 1, Name: "Mild"},
			{ID: 12, GroupID: 1, Name: "Hot", PriceDelta: 0.50},
		},
	}
}

func toppings() models.ModifierGroup {
	return models.ModifierGroup{
		ID: 2, Name: "Toppings", MaxSelect: 2, Scope: "both",
		Options: []models.ModifierOption{
			{ID: 20, GroupID: 2, Name: "Cheese", PriceDelta: 1.00},
			{ID: 21, GroupID: 2, Name: "Bacon", PriceDelta: 1.50},
			{ID: 22, GroupID: 2, Name: "Onion", PriceDelta: 0.25},
		},
	}
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection([]models.ModifierGroup{spiciness(), toppings()})

	assert.Equal(t, 1, sel.Count(1))
	assert.True(t, sel.Has(1, 10))
	assert.Equal(t, 0, sel.Count(2))
}

func TestDefaultSelectionKeepsFirstOnSingleSelectConflict(t *testing.T) {
	g := spiciness()
	g.Options[1].IsDefault = true // two defaults on a radio group

	sel := DefaultSelection([]models.ModifierGroup{g})

	assert.Equal(t, 1, sel.Count(1))
	assert.True(t, sel.Has(1, 10), "first default by id order wins")
}

func TestToggleRadioReplaces(t *testing.T) {
	g := spiciness()
	sel := Selection{}

	Toggle(sel, g, 10)
	Toggle(sel, g, 12)

	assert.Equal(t, 1, sel.Count(1), "single-select group never holds more than one option")
	assert.True(t, sel.Has(1, 12))
	assert.False(t, sel.Has(1, 10))
}

func TestToggleAddRemove(t *testing.T) {
	g := toppings()
	sel := Selection{}

	Toggle(sel, g, 20)
	assert.True(t, sel.Has(2, 20))

	Toggle(sel, g, 20)
	assert.False(t, sel.Has(2, 20))
}

func TestToggleIgnoresAddsBeyondCap(t *testing.T) {
	g := toppings() // MaxSelect 2
	sel := Selection{}

	Toggle(sel, g, 20)
	Toggle(sel, g, 21)
	Toggle(sel, g, 22) // silently ignored

	assert.Equal(t, 2, sel.Count(2))
	assert.False(t, sel.Has(2, 22))

	// removal still works at the cap
	Toggle(sel, g, 20)
	Toggle(sel, g, 22)
	assert.True(t, sel.Has(2, 22))
}

func TestToggleUnboundedGroup(t *testing.T) {
	g := toppings()
	g.MaxSelect = 0
	sel := Selection{}

	Toggle(sel, g, 20)
	Toggle(sel, g, 21)
	Toggle(sel, g, 22)

	assert.Equal(t, 3, sel.Count(2))
}

func TestValidateRequiredGroup(t *testing.T) {
	groups := []models.ModifierGroup{spiciness()}

	valid, violating := Validate(groups, Selection{})
	assert.False(t, valid)
	assert.Equal(t, uint(1), violating)

	sel := Selection{}
	Toggle(sel, groups[0], 11)
	valid, _ = Validate(groups, sel)
	assert.True(t, valid)
}

func TestValidateReportsLowestGroupIDFirst(t *testing.T) {
	a := spiciness()
	b := toppings()
	b.Required = true
	b.MinSelect = 2

	// pass them out of id order to make sure the report is stable
	valid, violating := Validate([]models.ModifierGroup{b, a}, Selection{})
	assert.False(t, valid)
	assert.Equal(t, uint(1), violating)
}

func TestValidateMinSelect(t *testing.T) {
	g := toppings()
	g.Required = true
	g.MinSelect = 2

	sel := Selection{}
	Toggle(sel, g, 20)
	valid, violating := Validate([]models.ModifierGroup{g}, sel)
	assert.False(t, valid)
	assert.Equal(t, uint(2), violating)

	Toggle(sel, g, 21)
	valid, _ = Validate([]models.ModifierGroup{g}, sel)
	assert.True(t, valid)
}

func TestPriceDelta(t *testing.T) {
	groups := []models.ModifierGroup{spiciness(), toppings()}
	sel := Selection{}
	Toggle(sel, groups[0], 12) // +0.50
	Toggle(sel, groups[1], 20) // +1.00
	Toggle(sel, groups[1], 22) // +0.25

	assert.InDelta(t, 1.75, PriceDelta(groups, sel), 1e-9)

	// unknown ids contribute nothing
	sel[99] = map[uint]bool{1: true}
	assert.InDelta(t, 1.75, PriceDelta(groups, sel), 1e-9)
}

func TestEligibleScopeFilter(t *testing.T) {
	drinkGroup := models.ModifierGroup{ID: 3, Name: "Ice", Scope: "drink"}
	groups := []models.ModifierGroup{spiciness(), toppings(), drinkGroup}

	food := &models.Meal{Section: "Main"}
	drink := &models.Meal{Section: "Drinks"}

	foodGroups := Eligible(groups, food)
	assert.Len(t, foodGroups, 2)
	assert.Equal(t, "Spiciness", foodGroups[0].Name)

	drinkGroups := Eligible(groups, drink)
	assert.Len(t, drinkGroups, 2)
	assert.Equal(t, "Toppings", drinkGroups[0].Name)
	assert.Equal(t, "Ice", drinkGroups[1].Name)
}
