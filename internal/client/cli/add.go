package cli

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/skaewsombat/cookcli/internal/client/models"
)

// Add walks through creating a recipe: name, comma-separated ingredients,
// multi-line steps, optional cooking time and image URL. Guests are turned
// away before any prompting.
func (a *App) Add(ctx context.Context) error {
	if a.store.IsChecking() {
		printlnFn("Still checking your session... please try again.")
		return nil
	}
	if !a.store.CanMutate() {
		printlnFn("Sign in to create and share a new recipe ('login' or 'register').")
		return nil
	}

	name, err := getSimpleText(a.reader, "Recipe name (e.g. Garlic Fried Rice)", os.Stdout)
	if err != nil {
		return err
	}
	ingredientsLine, err := getSimpleText(a.reader, "Ingredients, separated by commas (e.g. egg, cheese, butter)", os.Stdout)
	if err != nil {
		return err
	}
	steps, err := getMultiline(a.reader, "Steps / method, one per line", os.Stdout)
	if err != nil {
		return err
	}
	cookingLine, err := getSimpleText(a.reader, "Cooking time in minutes (optional)", os.Stdout)
	if err != nil {
		return err
	}
	imageURL, err := getSimpleText(a.reader, "Image URL (optional)", os.Stdout)
	if err != nil {
		return err
	}

	draft := models.RecipeDraft{
		Name:     name,
		Steps:    steps,
		ImageURL: strings.TrimSpace(imageURL),
	}
	for _, ing := range strings.Split(ingredientsLine, ",") {
		if ing = strings.TrimSpace(ing); ing != "" {
			draft.Ingredients = append(draft.Ingredients, ing)
		}
	}
	if cookingLine = strings.TrimSpace(cookingLine); cookingLine != "" {
		minutes, convErr := strconv.Atoi(cookingLine)
		if convErr != nil || minutes < 1 {
			printlnFn("Cooking time must be a positive number of minutes.")
			return nil
		}
		draft.CookingTime = minutes
	}

	created, err := a.recipes.Create(ctx, draft)
	if err != nil {
		a.reportActionErr(err, "")
		return err
	}
	printlnFn("Recipe created successfully!")
	printfFn("  %s (ID %s)\n", created.Name, created.ID)
	return nil
}
