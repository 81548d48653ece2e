package cli

import (
	"context"
	"strings"

	"github.com/skaewsombat/cookcli/internal/client/models"
)

// Show renders the recipe detail screen: the recipe itself, then its
// feedback aggregate. A feedback failure does not sink the page: the
// recipe still renders, just without ratings and comments.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <n|recipe-id>")
		return nil
	}
	id, ok := a.resolveRecipeArg(args[0])
	if !ok {
		printlnFn("No such result number; run 'search' first.")
		return nil
	}

	recipe, err := a.recipes.Recipe(ctx, id)
	if err != nil {
		printlnFn("Failed to load recipe:", err.Error())
		return err
	}

	printlnFn("")
	printlnFn(recipe.Name)
	printlnFn("Recipe ID:", recipe.ID)
	if recipe.CookingTime > 0 {
		printfFn("Cooking time: %d min\n", recipe.CookingTime)
	}
	if recipe.ImageURL != "" {
		printlnFn("Image:", recipe.ImageURL)
	}
	if len(recipe.Ingredients) > 0 {
		printlnFn("Ingredients:", strings.Join(recipe.Ingredients, ", "))
	}
	if lines := recipe.StepLines(); len(lines) > 0 {
		printlnFn("Steps:")
		for i, line := range lines {
			printfFn("  %d. %s\n", i+1, line)
		}
	}

	fb, err := a.recipes.Feedback(ctx, id)
	if err != nil {
		printlnFn("(ratings and comments unavailable:", err.Error()+")")
		return nil
	}
	a.renderFeedback(fb)

	if a.store.CanMutate() {
		printlnFn("Use 'rate", args[0], "<1-5>' or 'comment", args[0], "' to share feedback.")
	} else {
		printlnFn("Log in to rate and comment.")
	}
	return nil
}

func (a *App) renderFeedback(fb *models.Feedback) {
	display := int(fb.AvgRating + 0.5)
	if fb.MyRating != nil {
		display = *fb.MyRating
	}
	printfFn("\n%s %.1f / 5 (%d rating%s)", starRow(display), fb.AvgRating, fb.RatingCount, plural(fb.RatingCount))
	if fb.MyRating != nil {
		printfFn("  Your rating: %d", *fb.MyRating)
	}
	printlnFn("")

	if len(fb.Comments) == 0 {
		printlnFn("No comments yet. Be the first to share your thoughts!")
		return
	}
	printlnFn("Comments:")
	for _, c := range fb.Comments {
		name := c.UserName
		if name == "" {
			name = "User"
		}
		printfFn("  %s (%s)\n", name, c.CreatedAt.Local().Format("2 Jan 2006 15:04"))
		for _, line := range strings.Split(c.Text, "\n") {
			printlnFn("    " + line)
		}
	}
}

func starRow(filled int) string {
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
