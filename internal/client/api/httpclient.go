package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skaewsombat/cookcli/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the recipe backend. The session cookie
// set by a successful login lives in the client's cookie jar and rides along
// on every subsequent request; application code never sees it.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given API base URL (including the
// /api prefix). The timeout bounds every request end to end.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// do issues one request and triages the response. A nil out discards the
// success body. Identity-dependent responses must never be served from a
// cache, so every request asks for no-store.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return ErrUnauthorized
	case resp.StatusCode >= 400:
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{Status: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, ErrUnavailable)
	}
	return nil
}

// Me asks the backend who the session cookie belongs to. The deployed
// backend has answered both as {user: {...}} and with the profile at the top
// level, so both shapes are accepted.
func (c *HTTPClient) Me(ctx context.Context) (*models.Identity, error) {
	var payload struct {
		User  *models.Identity `json:"user"`
		ID    string           `json:"_id"`
		Name  string           `json:"name"`
		Email string           `json:"email"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &payload); err != nil {
		return nil, err
	}
	if payload.User != nil {
		return payload.User, nil
	}
	if payload.ID == "" && payload.Name == "" && payload.Email == "" {
		return nil, fmt.Errorf("GET /auth/me: no identity in response: %w", ErrUnavailable)
	}
	return &models.Identity{ID: payload.ID, Name: payload.Name, Email: payload.Email}, nil
}

// Login exchanges credentials for a session cookie. The cookie lands in the
// jar as a side effect of the response; nothing from the body is needed.
func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/login", body, nil)
}

// Logout asks the backend to invalidate the session cookie.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Register creates an account. It does not log the new user in.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Search finds recipes matching any of the given ingredient tags. Tags are
// lowercased on the wire; the backend indexes the lowercased forms.
func (c *HTTPClient) Search(ctx context.Context, ingredients []string) (*models.SearchResult, error) {
	lower := make([]string, len(ingredients))
	for i, tag := range ingredients {
		lower[i] = strings.ToLower(tag)
	}
	body := struct {
		Ingredients []string `json:"ingredients"`
		MatchMode   string   `json:"matchMode"`
	}{Ingredients: lower, MatchMode: "any"}

	var res models.SearchResult
	if err := c.do(ctx, http.MethodPost, "/recipes/search", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Recipe(ctx context.Context, id string) (*models.Recipe, error) {
	var r models.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes/"+url.PathEscape(id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, draft models.RecipeDraft) (*models.Recipe, error) {
	var r models.Recipe
	if err := c.do(ctx, http.MethodPost, "/recipes", draft, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// MyRecipes lists recipes the caller has shared.
func (c *HTTPClient) MyRecipes(ctx context.Context) ([]models.Recipe, error) {
	var rs []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes/my", nil, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// SaveRecipe links a recipe to the caller's saved list. Saving the same
// recipe twice is the backend's problem; the client sends one request per
// user action.
func (c *HTTPClient) SaveRecipe(ctx context.Context, recipeID string) error {
	body := map[string]string{"recipeId": recipeID}
	return c.do(ctx, http.MethodPost, "/saved-recipes", body, nil)
}

// SavedRecipes lists the caller's saved recipes. The endpoint has shipped
// three response shapes over time: a bare array, {recipes: [...]}, and
// {savedRecipes: [...]}. All three are accepted.
func (c *HTTPClient) SavedRecipes(ctx context.Context) ([]models.Recipe, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/saved-recipes", nil, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rs []models.Recipe
		if err := json.Unmarshal(trimmed, &rs); err != nil {
			return nil, fmt.Errorf("decode saved recipes: %w", ErrUnavailable)
		}
		return rs, nil
	}

	var wrapped struct {
		Recipes      []models.Recipe `json:"recipes"`
		SavedRecipes []models.Recipe `json:"savedRecipes"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("decode saved recipes: %w", ErrUnavailable)
	}
	if wrapped.Recipes != nil {
		return wrapped.Recipes, nil
	}
	return wrapped.SavedRecipes, nil
}

func (c *HTTPClient) Feedback(ctx context.Context, recipeID string) (*models.Feedback, error) {
	var f models.Feedback
	if err := c.do(ctx, http.MethodGet, "/recipes/"+url.PathEscape(recipeID)+"/feedback", nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Rate submits a star rating. The backend overwrites any previous rating by
// the same user for the same recipe and returns the authoritative tally.
func (c *HTTPClient) Rate(ctx context.Context, recipeID string, rating int) (*models.RatingSummary, error) {
	body := map[string]int{"rating": rating}
	var s models.RatingSummary
	if err := c.do(ctx, http.MethodPost, "/recipes/"+url.PathEscape(recipeID)+"/rate", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Comment posts a comment. Each call creates a new comment, so this is never
// retried on an ambiguous failure.
func (c *HTTPClient) Comment(ctx context.Context, recipeID, text string) (*models.Comment, error) {
	body := map[string]string{"text": text}
	var payload struct {
		Comment models.Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPost, "/recipes/"+url.PathEscape(recipeID)+"/comments", body, &payload); err != nil {
		return nil, err
	}
	return &payload.Comment, nil
}

// Ping checks plain reachability of the backend host. Any HTTP response at
// all counts as reachable; only transport failures do not. It deliberately
// hits the base URL rather than an authenticated endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}
