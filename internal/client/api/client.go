package api

import (
	"context"

	"github.com/skaewsombat/cookcli/internal/client/models"
)

// Client is the remote recipe service as the rest of the application sees
// it. The concrete implementation owns the session cookie; callers never
// attach credentials themselves.
//
// Error contract: authentication failures map to ErrUnauthorized, transport
// failures to ErrUnavailable, and backend-explained rejections to *APIError.
// All methods honor context cancellation.
type Client interface {
	Me(ctx context.Context) (*models.Identity, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, name, email, password string) error

	Search(ctx context.Context, ingredients []string) (*models.SearchResult, error)
	Recipe(ctx context.Context, id string) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, draft models.RecipeDraft) (*models.Recipe, error)
	MyRecipes(ctx context.Context) ([]models.Recipe, error)

	SaveRecipe(ctx context.Context, recipeID string) error
	SavedRecipes(ctx context.Context) ([]models.Recipe, error)

	Feedback(ctx context.Context, recipeID string) (*models.Feedback, error)
	Rate(ctx context.Context, recipeID string, rating int) (*models.RatingSummary, error)
	Comment(ctx context.Context, recipeID, text string) (*models.Comment, error)

	Ping(ctx context.Context) error
}
