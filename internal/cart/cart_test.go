package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func burgerLine() Line {
	return Line{
		MealID:    7,
		Name:      "Burger",
		UnitPrice: 10.00,
		Customizations: []Customization{
			{GroupID: 1, OptionID: 2, PriceDelta: 1.00},
			{GroupID: 3, OptionID: 5, PriceDelta: 0.50},
		},
	}
}

func TestAddMergesIdenticalLines(t *testing.T) {
	c := New()
	for i := 0; i < 4; i++ {
		c.Add(burgerLine())
	}

	assert.Len(t, c.Lines, 1)
	assert.Equal(t, 4, c.Lines[0].Qty)
	assert.InDelta(t, 40.00, c.Total, 1e-2)
}

func TestLineKeyIgnoresCustomizationOrder(t *testing.T) {
	a := burgerLine()
	b := burgerLine()
	b.Customizations[0], b.Customizations[1] = b.Customizations[1], b.Customizations[0]

	assert.Equal(t, LineKey(a.MealID, a.Customizations), LineKey(b.MealID, b.Customizations))

	c := New()
	c.Add(a)
	c.Add(b)
	assert.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Qty)
}

func TestLineKeyDedupesPairs(t *testing.T) {
	dup := burgerLine()
	dup.Customizations = append(dup.Customizations, Customization{GroupID: 1, OptionID: 2, PriceDelta: 1.00})

	assert.Equal(t, LineKey(7, burgerLine().Customizations), LineKey(7, dup.Customizations))
}

func TestDifferentCustomizationsStayDistinct(t *testing.T) {
	c := New()
	c.Add(burgerLine())

	other := burgerLine()
	other.Customizations = other.Customizations[:1]
	other.UnitPrice = 9.50
	c.Add(other)

	assert.Len(t, c.Lines, 2)
	assert.InDelta(t, 19.50, c.Total, 1e-2)
}

func TestNoteExcludedFromIdentity(t *testing.T) {
	a := burgerLine()
	a.Note = "no onions"
	b := burgerLine()
	b.Note = "extra napkins"

	c := New()
	c.Add(a)
	c.Add(b)

	assert.Len(t, c.Lines, 1)
	assert.Equal(t, "extra napkins", c.Lines[0].Note, "merge keeps the later note")
}

func TestTotalMatchesLinesAfterAnySequence(t *testing.T) {
	c := New()
	plain := Line{MealID: 9, Name: "Tea", UnitPrice: 4.50}

	c.Add(burgerLine())
	c.Add(plain)
	c.Add(burgerLine())
	c.Remove(9, nil)
	c.Add(plain)
	c.Add(plain)
	c.Remove(7, burgerLine().Customizations)

	assert.InDelta(t, c.Subtotal(), c.Total, 1e-2)
	assert.InDelta(t, 19.00, c.Total, 1e-2)
}

func TestRemoveFloorsAtZero(t *testing.T) {
	c := New()
	c.Add(burgerLine())

	for i := 0; i < 5; i++ {
		c.Remove(7, burgerLine().Customizations)
	}

	assert.Empty(t, c.Lines, "line is gone, not present with zero quantity")
	assert.Equal(t, 0.0, c.Total)
}

func TestRemoveUnknownLineIsNoop(t *testing.T) {
	c := New()
	c.Add(burgerLine())

	c.Remove(999, nil)
	c.Remove(7, nil) // same meal, different customizations

	assert.Len(t, c.Lines, 1)
	assert.InDelta(t, 10.00, c.Total, 1e-2)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(burgerLine())
	c.Add(Line{MealID: 9, UnitPrice: 4.50})

	c.Clear()

	assert.Empty(t, c.Lines)
	assert.Equal(t, 0.0, c.Total)
	assert.Equal(t, 0, c.ItemsCount())
}
