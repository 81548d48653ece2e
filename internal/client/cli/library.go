package cli

import (
	"context"
	"strings"

	"github.com/skaewsombat/cookcli/internal/client/models"
)

// Saved lists the recipes the user saved for later.
func (a *App) Saved(ctx context.Context) error {
	recipes, err := a.recipes.Saved(ctx)
	if err != nil {
		a.reportActionErr(err, "")
		return err
	}

	if len(recipes) == 0 {
		printlnFn("You don't have any saved recipes yet. Search for dishes and save the ones you like!")
		return nil
	}
	printfFn("My Recipes - %d saved\n", len(recipes))
	a.listRecipes(recipes)
	return nil
}

// Account shows the profile plus the recipes the user has shared.
func (a *App) Account(ctx context.Context) error {
	snap := a.store.Snapshot()
	if snap.Checking {
		printlnFn("Checking session... please try again.")
		return nil
	}
	if snap.Identity == nil {
		printlnFn("Please log in to view your account.")
		return nil
	}

	printfFn("%s <%s>\n", snap.Identity.DisplayName(), snap.Identity.Email)

	mine, err := a.recipes.Mine(ctx)
	if err != nil {
		a.reportActionErr(err, "")
		return err
	}
	printfFn("Recipes shared: %d\n", len(mine))
	if len(mine) == 0 {
		printlnFn("You haven't shared any recipes yet. Use 'add' to share your first one.")
		return nil
	}
	a.listRecipes(mine)
	return nil
}

// listRecipes renders a numbered card list and makes the entries
// addressable by number for show/save/rate/comment, same as search results.
func (a *App) listRecipes(recipes []models.Recipe) {
	a.mu.Lock()
	a.results = recipes
	a.mu.Unlock()

	for i, r := range recipes {
		printfFn("%2d. %s - %s\n", i+1, r.Name, strings.Join(r.Ingredients, ", "))
	}
	printlnFn("Use 'show <n>' to view one.")
}
