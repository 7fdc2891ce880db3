package nscp

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/gocombo/internal/recipe"
)

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
// Terms written as "(Lr or R)" are split into one combination per option.
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2a", Description: "1.2D + 1.6L + 0.5Lr", Dead: 1.2, Live: 1.6, Roof: 0.5},
	{ID: "2b", Description: "1.2D + 1.6L + 0.5R", Dead: 1.2, Live: 1.6, Rain: 0.5},
	{ID: "3a", Description: "1.2D + 1.6Lr + 1.0L", Dead: 1.2, Roof: 1.6, Live: 1.0},
	{ID: "3b", Description: "1.2D + 1.6Lr + 0.5W", Dead: 1.2, Roof: 1.6, Wind: 0.5},
	{ID: "3c", Description: "1.2D + 1.6R + 1.0L", Dead: 1.2, Rain: 1.6, Live: 1.0},
	{ID: "3d", Description: "1.2D + 1.6R + 0.5W", Dead: 1.2, Rain: 1.6, Wind: 0.5},
	{ID: "4a", Description: "1.2D + 1.0W + 1.0L + 0.5Lr", Dead: 1.2, Wind: 1.0, Live: 1.0, Roof: 0.5},
	{ID: "4b", Description: "1.2D + 1.0W + 1.0L + 0.5R", Dead: 1.2, Wind: 1.0, Live: 1.0, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Earthquake: 1.0, Live: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// SimplifiedCombinations for common beam design scenarios
// These are the most frequently used combinations for gravity loads
var SimplifiedCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// GroupNames maps the NSCP load types onto group names of a group document.
// A load type whose group is absent from the hierarchy is ignored.
type GroupNames struct {
	Dead       string
	Live       string
	Roof       string
	Wind       string
	Earthquake string
	Rain       string
}

// DefaultGroupNames matches the example group document
var DefaultGroupNames = GroupNames{
	Dead:       "Dead",
	Live:       "Live",
	Roof:       "Roof",
	Wind:       "Wind",
	Earthquake: "Seismic",
	Rain:       "Rain",
}

// Sets lists the built-in recipe sets by name
var Sets = map[string][]LoadCombination{
	"nscp2015":         LoadCombinations,
	"nscp2015-gravity": SimplifiedCombinations,
}

// SetNames returns the built-in set names in sorted order
func SetNames() []string {
	names := make([]string, 0, len(Sets))
	for name := range Sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Recipe converts the combination into a factor recipe over the given group
// names. Zero factors are left out.
func (lc LoadCombination) Recipe(names GroupNames) recipe.Recipe {
	r := recipe.New("NSCP-" + lc.ID)
	terms := []struct {
		group  string
		factor float64
	}{
		{names.Dead, lc.Dead},
		{names.Live, lc.Live},
		{names.Roof, lc.Roof},
		{names.Wind, lc.Wind},
		{names.Earthquake, lc.Earthquake},
		{names.Rain, lc.Rain},
	}
	for _, term := range terms {
		if term.factor != 0 && term.group != "" {
			r = r.Set(term.group, term.factor)
		}
	}
	return r
}

// Recipes returns the recipes of a built-in set
func Recipes(set string, names GroupNames) ([]recipe.Recipe, error) {
	combos, ok := Sets[set]
	if !ok {
		return nil, fmt.Errorf("unknown load combination set %q (available: %v)", set, SetNames())
	}
	recipes := make([]recipe.Recipe, 0, len(combos))
	for _, lc := range combos {
		recipes = append(recipes, lc.Recipe(names))
	}
	return recipes, nil
}
