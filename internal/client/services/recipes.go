package services

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator"

	"github.com/skaewsombat/cookcli/internal/client/api"
	"github.com/skaewsombat/cookcli/internal/client/ingredients"
	"github.com/skaewsombat/cookcli/internal/client/models"
	"github.com/skaewsombat/cookcli/internal/client/session"
	"github.com/skaewsombat/cookcli/internal/logging"
)

// RecipeService is everything the screens do with recipes: public search and
// detail reads, plus the authenticated save/rate/comment/create/list calls.
type RecipeService interface {
	Search(ctx context.Context, tags []string) (*models.SearchResult, error)
	Recipe(ctx context.Context, id string) (*models.Recipe, error)
	Feedback(ctx context.Context, id string) (*models.Feedback, error)

	Create(ctx context.Context, draft models.RecipeDraft) (*models.Recipe, error)
	Mine(ctx context.Context) ([]models.Recipe, error)
	Save(ctx context.Context, recipeID string) error
	Saved(ctx context.Context) ([]models.Recipe, error)
	Rate(ctx context.Context, recipeID string, rating int) (*models.RatingSummary, error)
	Comment(ctx context.Context, recipeID, text string) (*models.Comment, error)
}

type recipeService struct {
	client   api.Client
	store    *session.Store
	log      logging.Logger
	validate *validator.Validate
}

// NewRecipeService binds a RecipeService to the gateway and the session
// store it consults before authenticated calls.
func NewRecipeService(client api.Client, store *session.Store, log logging.Logger) RecipeService {
	return &recipeService{
		client:   client,
		store:    store,
		log:      log,
		validate: validator.New(),
	}
}

// guard is the shared precondition for authenticated actions. While the
// session state is still being checked the action is rejected outright:
// optimistically assuming either answer produces wrong behavior half the
// time. A settled guest gets ErrLoginRequired without a network call.
func (s *recipeService) guard() error {
	if s.store.IsChecking() {
		return ErrSessionChecking
	}
	if s.store.Identity() == nil {
		return ErrLoginRequired
	}
	return nil
}

// wrap post-processes a gateway error. An authorization rejection clears the
// cached identity on the spot (waiting for a synchronizer round trip would
// leave stale "logged in" UI on screen) and surfaces as ErrSessionExpired.
// Everything else passes through for the screen to render.
func (s *recipeService) wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrUnauthorized) {
		s.store.Clear()
		return ErrSessionExpired
	}
	return err
}

// Search is available to guests. Tags must come from the known taxonomy;
// unknown ones are rejected before the request, naming the offender.
func (s *recipeService) Search(ctx context.Context, tags []string) (*models.SearchResult, error) {
	if len(tags) == 0 {
		return nil, errors.New("select at least one ingredient tag")
	}
	canonical := make([]string, len(tags))
	for i, tag := range tags {
		c, ok := ingredients.Known(tag)
		if !ok {
			return nil, errors.New("unknown ingredient tag: " + tag)
		}
		canonical[i] = c
	}

	res, err := s.client.Search(ctx, canonical)
	if err != nil {
		return nil, s.wrap(err)
	}
	s.log.Debug(ctx, "search finished", "tags", len(canonical), "matched", res.MatchedCount)
	return res, nil
}

func (s *recipeService) Recipe(ctx context.Context, id string) (*models.Recipe, error) {
	r, err := s.client.Recipe(ctx, id)
	return r, s.wrap(err)
}

func (s *recipeService) Feedback(ctx context.Context, id string) (*models.Feedback, error) {
	f, err := s.client.Feedback(ctx, id)
	return f, s.wrap(err)
}

func (s *recipeService) Create(ctx context.Context, draft models.RecipeDraft) (*models.Recipe, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Steps = strings.TrimSpace(draft.Steps)
	if err := s.validate.Struct(draft); err != nil {
		return nil, errors.New("a recipe needs a name and at least one ingredient")
	}
	r, err := s.client.CreateRecipe(ctx, draft)
	return r, s.wrap(err)
}

func (s *recipeService) Mine(ctx context.Context) ([]models.Recipe, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	rs, err := s.client.MyRecipes(ctx)
	return rs, s.wrap(err)
}

func (s *recipeService) Save(ctx context.Context, recipeID string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.wrap(s.client.SaveRecipe(ctx, recipeID))
}

func (s *recipeService) Saved(ctx context.Context) ([]models.Recipe, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	rs, err := s.client.SavedRecipes(ctx)
	return rs, s.wrap(err)
}

// Rate submits a star rating. The returned tally is the backend's aggregate;
// callers display it as-is and never average locally. Resubmitting a rating
// overwrites the previous one, so retrying here would be harmless, but
// uniform no-retry is simpler to reason about and is the policy for every
// mutating call.
func (s *recipeService) Rate(ctx context.Context, recipeID string, rating int) (*models.RatingSummary, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if err := s.validate.Var(rating, "gte=1,lte=5"); err != nil {
		return nil, errors.New("rating must be between 1 and 5")
	}
	sum, err := s.client.Rate(ctx, recipeID, rating)
	return sum, s.wrap(err)
}

// Comment posts a comment. Comment creation is not idempotent, so an
// ambiguous failure is surfaced rather than retried; the user decides
// whether to send again.
func (s *recipeService) Comment(ctx context.Context, recipeID, text string) (*models.Comment, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("comment text must not be empty")
	}
	c, err := s.client.Comment(ctx, recipeID, text)
	return c, s.wrap(err)
}
