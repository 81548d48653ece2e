package cli

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/skaewsombat/cookcli/internal/client/services"
)

// reportActionErr prints the outcome of an authenticated action uniformly
// and, for auth problems, records the recipe so a successful login can land
// the user back on it.
func (a *App) reportActionErr(err error, recipeID string) {
	switch {
	case errors.Is(err, services.ErrSessionChecking):
		printlnFn("Still checking your session... please try again.")
	case errors.Is(err, services.ErrLoginRequired):
		printlnFn("Please log in first ('login').")
		a.setReturnTo(recipeID)
	case errors.Is(err, services.ErrSessionExpired):
		printlnFn("Session expired. Please log in again ('login').")
		a.setReturnTo(recipeID)
	default:
		printlnFn("Error:", err.Error())
	}
}

// Save links a recipe to the caller's saved list.
func (a *App) Save(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: save <n|recipe-id>")
		return nil
	}
	id, ok := a.resolveRecipeArg(args[0])
	if !ok {
		printlnFn("No such result number; run 'search' first.")
		return nil
	}

	if err := a.recipes.Save(ctx, id); err != nil {
		a.reportActionErr(err, id)
		return err
	}
	printlnFn("Saved successfully!")
	return nil
}

// Rate submits a star rating and re-renders the tally from the backend's
// authoritative numbers; no local averaging, no detail re-fetch.
func (a *App) Rate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: rate <n|recipe-id> <1-5>")
		return nil
	}
	id, ok := a.resolveRecipeArg(args[0])
	if !ok {
		printlnFn("No such result number; run 'search' first.")
		return nil
	}
	stars, err := strconv.Atoi(args[1])
	if err != nil {
		printlnFn("Usage: rate <n|recipe-id> <1-5>")
		return nil
	}

	sum, err := a.recipes.Rate(ctx, id, stars)
	if err != nil {
		a.reportActionErr(err, id)
		return err
	}
	printfFn("Rating saved. %s %.1f / 5 (%d rating%s)  Your rating: %d\n",
		starRow(sum.MyRating), sum.AvgRating, sum.RatingCount, plural(sum.RatingCount), sum.MyRating)
	return nil
}

// Comment prompts for a comment body and posts it. The new comment is shown
// immediately, prepended the way the backend will order it.
func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: comment <n|recipe-id>")
		return nil
	}
	id, ok := a.resolveRecipeArg(args[0])
	if !ok {
		printlnFn("No such result number; run 'search' first.")
		return nil
	}

	text, err := getMultiline(a.reader, "Share your experience, tips, or review of this recipe", os.Stdout)
	if err != nil {
		return err
	}

	c, err := a.recipes.Comment(ctx, id, text)
	if err != nil {
		a.reportActionErr(err, id)
		return err
	}
	printlnFn("Comment posted.")
	printfFn("  %s: %s\n", c.UserName, c.Text)
	return nil
}
