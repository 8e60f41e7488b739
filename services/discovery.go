package services

import (
	"regexp"
	"strings"

	"github.com/EswarAdityaReddy/Foodie/entity"
)

// CategoryResolver looks up a category's display name by id.
type CategoryResolver interface {
	CategoryName(id string) (string, bool)
}

// CategoryIndex is a CategoryResolver over a fixed category list.
type CategoryIndex map[string]string

func NewCategoryIndex(categories []entity.Category) CategoryIndex {
	idx := make(CategoryIndex, len(categories))
	for _, c := range categories {
		idx[c.ID] = c.Name
	}
	return idx
}

func (idx CategoryIndex) CategoryName(id string) (string, bool) {
	name, ok := idx[id]
	return name, ok
}

// FilterRestaurants returns the restaurants matching the selected category
// and the search query, in catalog order. Either filter is skipped when empty.
func FilterRestaurants(catalog []entity.Restaurant, categories CategoryResolver, selectedCategoryID, query string) []entity.Restaurant {
	var cuisine string
	if selectedCategoryID != "" {
		name, ok := categories.CategoryName(selectedCategoryID)
		if !ok {
			return []entity.Restaurant{}
		}
		cuisine = name
	}
	q := strings.ToLower(query)

	out := make([]entity.Restaurant, 0, len(catalog))
	for _, r := range catalog {
		if selectedCategoryID != "" && !r.HasCuisine(cuisine) {
			continue
		}
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesQuery expects q to be lower-cased already.
func matchesQuery(r entity.Restaurant, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, c := range r.Cuisines {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

// ToggleCategory returns the new selection after the user picks selected.
// Picking the current selection clears it.
func ToggleCategory(current, selected string) string {
	if current == selected {
		return ""
	}
	return selected
}

// ToggleFavorite flips restaurantID in favorites and reports whether it is
// now a favorite. The input slice is not modified.
func ToggleFavorite(favorites []string, restaurantID string) ([]string, bool) {
	next := make([]string, 0, len(favorites)+1)
	found := false
	for _, id := range favorites {
		if id == restaurantID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if found {
		return next, false
	}
	return append(next, restaurantID), true
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// SectionID derives a stable anchor id from a menu category label.
func SectionID(label string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(label), "-")
}

// BuildMenuSections groups a restaurant's items by category label. Sections
// appear in the order their label is first seen in the catalog.
func BuildMenuSections(restaurantID string, items []entity.MenuItem) []entity.MenuSection {
	sections := []entity.MenuSection{}
	index := map[string]int{}
	for _, it := range items {
		if it.RestaurantID != restaurantID {
			continue
		}
		i, ok := index[it.Category]
		if !ok {
			i = len(sections)
			index[it.Category] = i
			sections = append(sections, entity.MenuSection{
				ID:   SectionID(it.Category),
				Name: it.Category,
			})
		}
		sections[i].Items = append(sections[i].Items, it)
	}
	return sections
}
