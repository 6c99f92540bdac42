package modifier

import (
	"sort"

	"yoldas/internal/models"
)

// Selection maps a modifier group id to the set of chosen option ids.
type Selection map[uint]map[uint]bool

// Count returns how many options are chosen in a group.
func (s Selection) Count(groupID uint) int {
	return len(s[groupID])
}

// Has reports whether an option is chosen in a group.
func (s Selection) Has(groupID, optionID uint) bool {
	return s[groupID][optionID]
}

// Options returns the chosen option ids of a group in ascending order.
func (s Selection) Options(groupID uint) []uint {
	ids := make([]uint, 0, len(s[groupID]))
	for id := range s[groupID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DefaultSelection pre-selects every option flagged as default. A
// single-select group with more than one default keeps only the first by
// option id order; that is a data anomaly, not an error.
func DefaultSelection(groups []models.ModifierGroup) Selection {
	sel := Selection{}
	for _, g := range groups {
		chosen := map[uint]bool{}
		for _, o := range g.Options {
			if !o.IsDefault {
				continue
			}
			if g.MaxSelect == 1 && len(chosen) > 0 {
				break
			}
			chosen[o.ID] = true
		}
		if len(chosen) > 0 {
			sel[g.ID] = chosen
		}
	}
	return sel
}

// Toggle flips an option in the selection. A single-select group behaves
// like a radio button: the new option replaces whatever was chosen. Other
// groups add the option only while under MaxSelect (0 = unbounded); adds
// beyond the cap are silently ignored so the UI never blocks.
func Toggle(sel Selection, group models.ModifierGroup, optionID uint) {
	if group.MaxSelect == 1 {
		sel[group.ID] = map[uint]bool{optionID: true}
		return
	}
	cur := sel[group.ID]
	if cur == nil {
		cur = map[uint]bool{}
		sel[group.ID] = cur
	}
	if cur[optionID] {
		delete(cur, optionID)
		return
	}
	if group.MaxSelect == 0 || len(cur) < group.MaxSelect {
		cur[optionID] = true
	}
}

// Validate checks required groups in id order. A required group needs at
// least max(1, MinSelect) chosen options; the first group that falls short
// is reported so callers can surface one error at a time.
func Validate(groups []models.ModifierGroup, sel Selection) (valid bool, violating uint) {
	ordered := make([]models.ModifierGroup, len(groups))
	copy(ordered, groups)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, g := range ordered {
		if !g.Required {
			continue
		}
		need := g.MinSelect
		if need < 1 {
			need = 1
		}
		if sel.Count(g.ID) < need {
			return false, g.ID
		}
	}
	return true, 0
}

// PriceDelta sums the deltas of every chosen option across all groups.
// Validity is not checked here; callers validate separately before
// committing a line. Option ids that do not exist in a group are ignored.
func PriceDelta(groups []models.ModifierGroup, sel Selection) float64 {
	var sum float64
	for _, g := range groups {
		for _, o := range g.Options {
			if sel.Has(g.ID, o.ID) {
				sum += o.PriceDelta
			}
		}
	}
	return sum
}

// Eligible filters groups by scope for a meal section: drink groups only
// attach to the drinks section, food groups to everything else, and
// "both" always applies.
func Eligible(groups []models.ModifierGroup, meal *models.Meal) []models.ModifierGroup {
	mealScope := models.ScopeFood
	if meal.IsDrink() {
		mealScope = models.ScopeDrink
	}
	out := make([]models.ModifierGroup, 0, len(groups))
	for _, g := range groups {
		if g.Scope == string(models.ScopeBoth) || g.Scope == string(mealScope) {
			out = append(out, g)
		}
	}
	return out
}
