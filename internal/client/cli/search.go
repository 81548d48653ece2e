package cli

import (
	"context"
	"strings"

	"github.com/skaewsombat/cookcli/internal/client/ingredients"
	"github.com/skaewsombat/cookcli/internal/client/models"
)

// Tags with no argument prints the full taxonomy by group; with a query it
// prints typeahead-style suggestions excluding already-picked tags.
func (a *App) Tags(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Meat:      " + strings.Join(ingredients.Meat, ", "))
		printlnFn("Vegetables:", strings.Join(ingredients.Vegetables, ", "))
		printlnFn("Others:    " + strings.Join(ingredients.Others, ", "))
		return nil
	}

	a.mu.Lock()
	selected := append([]string(nil), a.selected...)
	a.mu.Unlock()

	matches := ingredients.Suggest(strings.Join(args, " "), selected)
	if len(matches) == 0 {
		printlnFn("No matching tags.")
		return nil
	}
	printlnFn("Matching tags:", strings.Join(matches, ", "))
	return nil
}

// Pick adds comma-separated tags to the selection. Unknown tags are
// reported and skipped; known ones are stored in canonical spelling.
func (a *App) Pick(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: pick <tag>[, <tag>...]")
		return nil
	}

	for _, raw := range splitTagArgs(args) {
		canonical, ok := ingredients.Known(raw)
		if !ok {
			printlnFn("Unknown tag:", raw, "(try 'tags' to list them)")
			continue
		}
		a.mu.Lock()
		if !containsFold(a.selected, canonical) {
			a.selected = append(a.selected, canonical)
		}
		selected := strings.Join(a.selected, ", ")
		a.mu.Unlock()
		printlnFn("Selected:", selected)
	}
	return nil
}

// Drop removes tags from the selection.
func (a *App) Drop(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: drop <tag>[, <tag>...]")
		return nil
	}

	for _, raw := range splitTagArgs(args) {
		a.mu.Lock()
		kept := a.selected[:0]
		for _, t := range a.selected {
			if !strings.EqualFold(t, raw) {
				kept = append(kept, t)
			}
		}
		a.selected = kept
		selected := strings.Join(a.selected, ", ")
		a.mu.Unlock()
		printlnFn("Selected:", selected)
	}
	return nil
}

// ClearTags resets the selection and the last results, like the web page's
// Clear Selection button.
func (a *App) ClearTags(ctx context.Context) error {
	a.mu.Lock()
	a.selected = nil
	a.results = nil
	a.mu.Unlock()
	printlnFn("Selection cleared.")
	return nil
}

// Search runs the tag search and renders numbered result cards. The numbers
// address results in show/save/rate/comment.
func (a *App) Search(ctx context.Context) error {
	a.mu.Lock()
	selected := append([]string(nil), a.selected...)
	a.mu.Unlock()

	if len(selected) == 0 {
		printlnFn("Please select at least one ingredient tag (see 'pick').")
		return nil
	}

	res, err := a.recipes.Search(ctx, selected)
	if err != nil {
		printlnFn("Search failed:", err.Error())
		return err
	}

	a.mu.Lock()
	a.results = res.Recipes
	a.mu.Unlock()

	printfFn("Found %d recipe(s)\n", res.MatchedCount)
	for i, r := range res.Recipes {
		printfFn("%2d. %s - %s\n", i+1, r.Name, strings.Join(r.Ingredients, ", "))
	}
	if len(res.Recipes) > 0 {
		printlnFn("Use 'show <n>' to view one, 'save <n>' to save it for later.")
	}
	return nil
}

// resolveRecipeArg turns a command argument into a recipe ID: a small
// integer addresses the last search results, anything else is taken as a
// raw ID.
func (a *App) resolveRecipeArg(arg string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for _, c := range arg {
		if c < '0' || c > '9' {
			n = -1
			break
		}
		n = n*10 + int(c-'0')
	}
	if n > 0 {
		if n > len(a.results) {
			return "", false
		}
		return a.results[n-1].ID, true
	}
	return arg, true
}

// recipeByID looks up a recipe in the cached results, for rendering without
// a second fetch.
func (a *App) recipeByID(id string) *models.Recipe {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.results {
		if a.results[i].ID == id {
			return &a.results[i]
		}
	}
	return nil
}

func splitTagArgs(args []string) []string {
	var out []string
	for _, part := range strings.Split(strings.Join(args, " "), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
