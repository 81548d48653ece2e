package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skaewsombat/cookcli/internal/client/api"
	"github.com/skaewsombat/cookcli/internal/client/models"
	"github.com/skaewsombat/cookcli/internal/client/session"
	"github.com/skaewsombat/cookcli/internal/logging"
)

// fakeClient implements api.Client with per-method hooks. Unhooked methods
// succeed with zero values. Calls records method names in order.
type fakeClient struct {
	Calls []string

	MeFn      func(ctx context.Context) (*models.Identity, error)
	LoginFn   func(ctx context.Context, email, password string) error
	LogoutFn  func(ctx context.Context) error
	SearchFn  func(ctx context.Context, ingredients []string) (*models.SearchResult, error)
	SaveFn    func(ctx context.Context, recipeID string) error
	RateFn    func(ctx context.Context, recipeID string, rating int) (*models.RatingSummary, error)
	CommentFn func(ctx context.Context, recipeID, text string) (*models.Comment, error)
}

func (f *fakeClient) Me(ctx context.Context) (*models.Identity, error) {
	f.Calls = append(f.Calls, "Me")
	if f.MeFn != nil {
		return f.MeFn(ctx)
	}
	return &models.Identity{ID: "u1", Name: "Alice", Email: "a@b.c"}, nil
}

func (f *fakeClient) Login(ctx context.Context, email, password string) error {
	f.Calls = append(f.Calls, "Login")
	if f.LoginFn != nil {
		return f.LoginFn(ctx, email, password)
	}
	return nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.Calls = append(f.Calls, "Logout")
	if f.LogoutFn != nil {
		return f.LogoutFn(ctx)
	}
	return nil
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) error {
	f.Calls = append(f.Calls, "Register")
	return nil
}

func (f *fakeClient) Search(ctx context.Context, ingredients []string) (*models.SearchResult, error) {
	f.Calls = append(f.Calls, "Search")
	if f.SearchFn != nil {
		return f.SearchFn(ctx, ingredients)
	}
	return &models.SearchResult{}, nil
}

func (f *fakeClient) Recipe(ctx context.Context, id string) (*models.Recipe, error) {
	f.Calls = append(f.Calls, "Recipe")
	return &models.Recipe{ID: id}, nil
}

func (f *fakeClient) CreateRecipe(ctx context.Context, draft models.RecipeDraft) (*models.Recipe, error) {
	f.Calls = append(f.Calls, "CreateRecipe")
	return &models.Recipe{ID: "new", Name: draft.Name}, nil
}

func (f *fakeClient) MyRecipes(ctx context.Context) ([]models.Recipe, error) {
	f.Calls = append(f.Calls, "MyRecipes")
	return nil, nil
}

func (f *fakeClient) SaveRecipe(ctx context.Context, recipeID string) error {
	f.Calls = append(f.Calls, "SaveRecipe")
	if f.SaveFn != nil {
		return f.SaveFn(ctx, recipeID)
	}
	return nil
}

func (f *fakeClient) SavedRecipes(ctx context.Context) ([]models.Recipe, error) {
	f.Calls = append(f.Calls, "SavedRecipes")
	return nil, nil
}

func (f *fakeClient) Feedback(ctx context.Context, recipeID string) (*models.Feedback, error) {
	f.Calls = append(f.Calls, "Feedback")
	return &models.Feedback{}, nil
}

func (f *fakeClient) Rate(ctx context.Context, recipeID string, rating int) (*models.RatingSummary, error) {
	f.Calls = append(f.Calls, "Rate")
	if f.RateFn != nil {
		return f.RateFn(ctx, recipeID, rating)
	}
	return &models.RatingSummary{MyRating: rating}, nil
}

func (f *fakeClient) Comment(ctx context.Context, recipeID, text string) (*models.Comment, error) {
	f.Calls = append(f.Calls, "Comment")
	if f.CommentFn != nil {
		return f.CommentFn(ctx, recipeID, text)
	}
	return &models.Comment{Text: text}, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return nil }

var _ api.Client = (*fakeClient)(nil)

// loggedIn settles the store with an identity through the real Synchronizer.
func loggedIn(t *testing.T, client *fakeClient) *session.Store {
	t.Helper()
	store := session.NewStore()
	sync := session.NewSynchronizer(store, client, logging.Nop{}, time.Second, time.Minute)
	sync.Refresh(context.Background())
	require.NotNil(t, store.Identity())
	return store
}

func TestGuard_GuestIsRejectedWithoutNetworkCall(t *testing.T) {
	client := &fakeClient{}
	svc := NewRecipeService(client, session.NewStore(), logging.Nop{})

	err := svc.Save(context.Background(), "r1")

	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Empty(t, client.Calls)
}

func TestGuard_CheckingIsRejectedWithoutNetworkCall(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client := &fakeClient{
		MeFn: func(ctx context.Context) (*models.Identity, error) {
			close(started)
			<-release
			return nil, ctx.Err()
		},
	}
	store := session.NewStore()
	sync := session.NewSynchronizer(store, client, logging.Nop{}, time.Second, time.Minute)

	go sync.Refresh(context.Background())
	<-started
	require.True(t, store.IsChecking())

	svc := NewRecipeService(client, store, logging.Nop{})
	err := svc.Save(context.Background(), "r1")
	close(release)

	assert.ErrorIs(t, err, ErrSessionChecking)
	assert.NotContains(t, client.Calls, "SaveRecipe")
}

func TestWrap_UnauthorizedClearsIdentity(t *testing.T) {
	client := &fakeClient{
		SaveFn: func(ctx context.Context, recipeID string) error {
			return api.ErrUnauthorized
		},
	}
	store := loggedIn(t, client)
	svc := NewRecipeService(client, store, logging.Nop{})

	err := svc.Save(context.Background(), "r1")

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, store.Identity(), "identity must be dropped on the spot")
}

func TestSearch_RejectsUnknownTag(t *testing.T) {
	client := &fakeClient{}
	svc := NewRecipeService(client, session.NewStore(), logging.Nop{})

	_, err := svc.Search(context.Background(), []string{"Egg", "Plutonium"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Plutonium")
	assert.Empty(t, client.Calls)
}

func TestSearch_CanonicalizesTags(t *testing.T) {
	var sent []string
	client := &fakeClient{
		SearchFn: func(ctx context.Context, ingredients []string) (*models.SearchResult, error) {
			sent = ingredients
			return &models.SearchResult{MatchedCount: 1}, nil
		},
	}
	svc := NewRecipeService(client, session.NewStore(), logging.Nop{})

	_, err := svc.Search(context.Background(), []string{"egg", "GARLIC"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Egg", "Garlic"}, sent)
}

func TestSearch_RequiresAtLeastOneTag(t *testing.T) {
	svc := NewRecipeService(&fakeClient{}, session.NewStore(), logging.Nop{})
	_, err := svc.Search(context.Background(), nil)
	assert.Error(t, err)
}

func TestRate_ValidatesBounds(t *testing.T) {
	client := &fakeClient{}
	svc := NewRecipeService(client, loggedIn(t, client), logging.Nop{})
	client.Calls = nil

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Rate(context.Background(), "r1", rating)
		assert.Error(t, err, "rating %d", rating)
	}
	assert.Empty(t, client.Calls)

	sum, err := svc.Rate(context.Background(), "r1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.MyRating)
}

func TestComment_RejectsBlankText(t *testing.T) {
	client := &fakeClient{}
	svc := NewRecipeService(client, loggedIn(t, client), logging.Nop{})
	client.Calls = nil

	_, err := svc.Comment(context.Background(), "r1", "   \n\t")

	require.Error(t, err)
	assert.Empty(t, client.Calls)
}

func TestComment_TrimsBeforeSending(t *testing.T) {
	client := &fakeClient{}
	svc := NewRecipeService(client, loggedIn(t, client), logging.Nop{})

	c, err := svc.Comment(context.Background(), "r1", "  great recipe  ")

	require.NoError(t, err)
	assert.Equal(t, "great recipe", c.Text)
}

func TestCreate_ValidatesDraft(t *testing.T) {
	client := &fakeClient{}
	svc := NewRecipeService(client, loggedIn(t, client), logging.Nop{})
	client.Calls = nil

	_, err := svc.Create(context.Background(), models.RecipeDraft{Name: "  "})
	assert.Error(t, err)
	_, err = svc.Create(context.Background(), models.RecipeDraft{Name: "Fried Rice"})
	assert.Error(t, err, "no ingredients")
	assert.Empty(t, client.Calls)

	r, err := svc.Create(context.Background(), models.RecipeDraft{
		Name:        "Fried Rice",
		Ingredients: []string{"Rice", "Egg"},
		Steps:       "Fry it.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fried Rice", r.Name)
}

func TestLogin_ValidatesBeforeCalling(t *testing.T) {
	client := &fakeClient{}
	store := session.NewStore()
	sync := session.NewSynchronizer(store, client, logging.Nop{}, time.Second, time.Minute)
	auth := NewAuthService(client, store, sync, logging.Nop{})

	err := auth.Login(context.Background(), "not-an-email", "pw")

	assert.Error(t, err)
	assert.Empty(t, client.Calls)
}

func TestLogin_RefreshesIdentityOnSuccess(t *testing.T) {
	client := &fakeClient{}
	store := session.NewStore()
	sync := session.NewSynchronizer(store, client, logging.Nop{}, time.Second, time.Minute)
	auth := NewAuthService(client, store, sync, logging.Nop{})

	err := auth.Login(context.Background(), "a@b.c", "pw")

	require.NoError(t, err)
	assert.Equal(t, []string{"Login", "Me"}, client.Calls)
	require.NotNil(t, store.Identity())
	assert.Equal(t, "Alice", store.Identity().Name)
}

func TestRegister_EnforcesPasswordFloor(t *testing.T) {
	client := &fakeClient{}
	store := session.NewStore()
	sync := session.NewSynchronizer(store, client, logging.Nop{}, time.Second, time.Minute)
	auth := NewAuthService(client, store, sync, logging.Nop{})

	err := auth.Register(context.Background(), "Alice", "a@b.c", "short")
	assert.Error(t, err)
	assert.Empty(t, client.Calls)

	require.NoError(t, auth.Register(context.Background(), "Alice", "a@b.c", "longenough"))
	assert.Equal(t, []string{"Register"}, client.Calls)
	assert.Nil(t, store.Identity(), "register must not log in")
}

func TestLogout_ClearsLocallyBeforeBackendAnswers(t *testing.T) {
	client := &fakeClient{}
	store := loggedIn(t, client)

	var identityAtLogoutCall *models.Identity
	client.LogoutFn = func(ctx context.Context) error {
		identityAtLogoutCall = store.Identity()
		return api.ErrUnavailable
	}

	sync := session.NewSynchronizer(store, client, logging.Nop{}, time.Second, time.Minute)
	auth := NewAuthService(client, store, sync, logging.Nop{})
	auth.Logout(context.Background())

	assert.Nil(t, identityAtLogoutCall, "local clear must precede the backend call")
	assert.Nil(t, store.Identity())
}
