package dp

import (
	"fmt"
	"slices"
)

var itemPresets = map[string][]Item{
	"tech": {
		{Name: "Laptop", Value: 1000, Weight: 30},
		{Name: "Phone", Value: 800, Weight: 5},
		{Name: "Tablet", Value: 500, Weight: 10},
		{Name: "Headphones", Value: 200, Weight: 2},
		{Name: "Camera", Value: 1200, Weight: 20},
	},
	"jewelry": {
		{Name: "Diamond", Value: 5000, Weight: 1},
		{Name: "Gold Ring", Value: 3000, Weight: 2},
		{Name: "Ruby", Value: 4000, Weight: 1},
		{Name: "Emerald", Value: 3500, Weight: 1},
		{Name: "Pearl", Value: 2000, Weight: 1},
	},
	"survival": {
		{Name: "Water", Value: 100, Weight: 20},
		{Name: "Food", Value: 90, Weight: 15},
		{Name: "Knife", Value: 50, Weight: 2},
		{Name: "Rope", Value: 40, Weight: 5},
		{Name: "Tent", Value: 70, Weight: 25},
		{Name: "First Aid", Value: 60, Weight: 3},
	},
}

// ItemPresetNames lists the knapsack item presets in sorted order.
func ItemPresetNames() []string {
	names := make([]string, 0, len(itemPresets))
	for name := range itemPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ItemPreset returns a copy of the named item list.
func ItemPreset(name string) ([]Item, error) {
	items, ok := itemPresets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, ItemPresetNames())
	}
	return slices.Clone(items), nil
}
