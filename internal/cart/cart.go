package cart

import (
	"fmt"
	"sort"
	"strings"

	"yoldas/internal/pricing"
)

// Customization is one chosen modifier option on a cart line.
type Customization struct {
	GroupID    uint    `json:"groupId"`
	GroupName  string  `json:"group,omitempty"`
	OptionID   uint    `json:"optionId"`
	OptionName string  `json:"option,omitempty"`
	PriceDelta float64 `json:"delta"`
}

// Line is one distinct priced item in the cart. UnitPrice already includes
// the discount and the selected modifier deltas.
type Line struct {
	MealID         uint            `json:"id"`
	Name           string          `json:"name"`
	UnitPrice      float64         `json:"price"`
	Qty            int             `json:"qty"`
	Customizations []Customization `json:"customizations"`
	Note           string          `json:"note"`
	Key            string          `json:"lineKey"`
}

// Cart holds one session's lines and a running total. A cart has a single
// logical owner, so no locking happens here.
type Cart struct {
	Lines []Line  `json:"items"`
	Total float64 `json:"total"`
}

func New() *Cart {
	return &Cart{}
}

// LineKey derives the identity of a line: the meal id plus the sorted,
// deduplicated group:option pairs. Sorting makes the key independent of the
// order options were picked in. The note is not part of the identity, so
// two adds that differ only in note merge, keeping the later note.
func LineKey(mealID uint, customizations []Customization) string {
	pairs := make([]string, 0, len(customizations))
	seen := make(map[string]bool, len(customizations))
	for _, c := range customizations {
		p := fmt.Sprintf("%d:%d", c.GroupID, c.OptionID)
		if seen[p] {
			continue
		}
		seen[p] = true
		pairs = append(pairs, p)
	}
	sort.Strings(pairs)
	return fmt.Sprintf("%d#%s", mealID, strings.Join(pairs, "|"))
}

// Add merges the line into an existing one with the same key, otherwise
// appends it with quantity 1.
func (c *Cart) Add(line Line) {
	if line.Key == "" {
		line.Key = LineKey(line.MealID, line.Customizations)
	}
	for i := range c.Lines {
		if c.Lines[i].Key == line.Key {
			c.Lines[i].Qty++
			c.Lines[i].Note = line.Note
			c.Total = pricing.Round2(c.Total + c.Lines[i].UnitPrice)
			return
		}
	}
	line.Qty = 1
	c.Lines = append(c.Lines, line)
	c.Total = pricing.Round2(c.Total + line.UnitPrice)
}

// Remove decrements the matching line's quantity, deleting it at zero.
// A line that is not in the cart is a no-op. The total is floored at zero
// to guard against floating-point drift.
func (c *Cart) Remove(mealID uint, customizations []Customization) {
	key := LineKey(mealID, customizations)
	for i := range c.Lines {
		if c.Lines[i].Key != key {
			continue
		}
		c.Lines[i].Qty--
		c.Total = pricing.Round2(c.Total - c.Lines[i].UnitPrice)
		if c.Total < 0 {
			c.Total = 0
		}
		if c.Lines[i].Qty <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// Clear empties the cart. Called after a successful order placement and
// nowhere else.
func (c *Cart) Clear() {
	c.Lines = nil
	c.Total = 0
}

// Subtotal re-derives the total from the lines. Add and Remove keep Total
// in sync with this value.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.UnitPrice * float64(l.Qty)
	}
	return pricing.Round2(sum)
}

// ItemsCount is the number of distinct lines in the cart.
func (c *Cart) ItemsCount() int {
	return len(c.Lines)
}
