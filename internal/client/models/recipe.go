package models

import "strings"

// Recipe is a recipe as stored by the backend. The client never mutates
// recipes, it only submits creation requests and renders what comes back.
// Ingredient order is preserved and duplicates are kept as-is.
type Recipe struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Steps       string   `json:"steps"`
	CookingTime int      `json:"cookingTime,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// StepLines splits the free-text steps field into trimmed, non-empty lines
// for numbered rendering.
func (r *Recipe) StepLines() []string {
	var lines []string
	for _, line := range strings.Split(r.Steps, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// RecipeDraft is the payload for recipe creation. Validation tags cover what
// the backend would reject anyway, so obvious mistakes fail before a network
// round trip.
type RecipeDraft struct {
	Name        string   `json:"name" validate:"required"`
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Steps       string   `json:"steps"`
	CookingTime int      `json:"cookingTime,omitempty" validate:"omitempty,gte=1"`
	ImageURL    string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// SearchResult is the response of a tag search. MatchedCount is reported by
// the backend and may exceed len(Recipes) if the backend caps the page.
type SearchResult struct {
	MatchedCount int      `json:"matchedCount"`
	Recipes      []Recipe `json:"recipes"`
}
