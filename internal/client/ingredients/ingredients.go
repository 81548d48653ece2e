// Package ingredients holds the static ingredient tag taxonomy used by the
// search screen, grouped the way the backend indexes them. The lists are
// data, not configuration: the backend matches on the lowercased forms of
// exactly these tags.
package ingredients

import "strings"

// Meat, Vegetables and Others are the selectable tag groups, in display order.
var Meat = []string{
	"Chicken", "Pork", "Beef", "Duck", "Fish", "Shrimp", "Squid", "Dried Squid",
	"Mussel", "Clam", "Scallop", "Crab", "Cuttlefish", "Oyster", "Bacon",
	"Pork Belly", "Minced Pork", "Minced Chicken", "Chicken Liver", "Sausage",
	"Ham", "Egg", "Quail Egg", "Meatball", "Dried Shrimp",
}

var Vegetables = []string{
	"Cabbage", "Chinese Cabbage", "Carrot", "Morning Glory", "Kale",
	"Coriander", "Spring Onion", "Onion", "Shallot", "Garlic", "Chili",
	"Tomato", "Eggplant", "Green Eggplant", "Pumpkin", "Cucumber", "Long Bean",
	"Bean Sprout", "Baby Corn", "Straw Mushroom", "Shiitake Mushroom",
	"Enoki Mushroom", "King Oyster Mushroom", "Spinach", "Lettuce",
	"Iceberg Lettuce", "Sweet Pepper", "Broccoli", "Cauliflower", "Bamboo Shoot",
	"Asparagus", "Holy Basil", "Sweet Basil", "Kaffir Lime Leaves", "Mint Leaves",
	"Wild Betel Leaves", "Bitter Melon", "Fingerroot", "Galangal", "Ginger",
}

var Others = []string{
	"Glass Noodles", "Rice Noodles", "Vermicelli", "Big Flat Noodles",
	"Thin Noodles", "Instant Noodles", "Rice", "Sticky Rice", "Bread", "Tofu",
	"Fried Tofu", "Yellow Tofu", "Egg Tofu", "Tofu Skin", "Coconut Milk",
	"Fresh Milk", "Condensed Milk", "Butter", "Cheese", "Flour", "Rice Flour",
	"Tapioca Flour", "Coconut Flesh", "Peanut", "White Sesame", "Cashew Nut",
	"Noodles Sheet", "Bean Curd Sheet", "Bread Crumbs", "Seaweed",
}

// maxSuggestions caps the typeahead result list.
const maxSuggestions = 24

// All returns every known tag in group order.
func All() []string {
	all := make([]string, 0, len(Meat)+len(Vegetables)+len(Others))
	all = append(all, Meat...)
	all = append(all, Vegetables...)
	all = append(all, Others...)
	return all
}

// Known reports whether tag is part of the taxonomy. Matching is
// case-insensitive; the canonical spelling is returned alongside.
func Known(tag string) (string, bool) {
	for _, t := range All() {
		if strings.EqualFold(t, tag) {
			return t, true
		}
	}
	return "", false
}

// Suggest returns up to maxSuggestions tags containing query
// (case-insensitive), excluding ones already selected. An empty query yields
// no suggestions.
func Suggest(query string, selected []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	chosen := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		chosen[strings.ToLower(s)] = struct{}{}
	}

	var out []string
	for _, tag := range All() {
		if !strings.Contains(strings.ToLower(tag), q) {
			continue
		}
		if _, ok := chosen[strings.ToLower(tag)]; ok {
			continue
		}
		out = append(out, tag)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
