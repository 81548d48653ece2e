// Package services contains the application services sitting between the
// screens and the HTTP gateway. They enforce the per-operation discipline
// every backend call shares: don't act while the session state is unknown,
// validate input before spending a round trip, and treat an
// authorization-rejected response as an immediate local logout.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator"

	"github.com/skaewsombat/cookcli/internal/client/api"
	"github.com/skaewsombat/cookcli/internal/client/session"
	"github.com/skaewsombat/cookcli/internal/logging"
)

// AuthService drives login, registration and logout.
//
// Contract:
//   - Login authenticates and, on success, refreshes the session store so
//     every screen observes the new identity.
//   - Register creates an account; it does not log in.
//   - Logout clears local identity synchronously and notifies the backend
//     only best-effort; it cannot fail from the caller's point of view.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context)
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registerInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type authService struct {
	client   api.Client
	store    *session.Store
	sync     *session.Synchronizer
	log      logging.Logger
	validate *validator.Validate
}

// NewAuthService binds an AuthService to the gateway and session machinery.
func NewAuthService(client api.Client, store *session.Store, sync *session.Synchronizer, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		store:    store,
		sync:     sync,
		log:      log,
		validate: validator.New(),
	}
}

// Login exchanges credentials for a session cookie and then asks the
// Synchronizer to re-derive the identity from it. The store, not the login
// response, is the source of truth for who is logged in.
func (a *authService) Login(ctx context.Context, email, password string) error {
	if err := a.validate.Struct(loginInput{Email: email, Password: password}); err != nil {
		return errors.New("please enter a valid email and a password")
	}
	if err := a.client.Login(ctx, email, password); err != nil {
		return err
	}
	a.sync.Refresh(ctx)
	return nil
}

// Register creates an account on the backend. The password floor mirrors
// what the backend enforces so the common mistake fails without a round trip.
func (a *authService) Register(ctx context.Context, name, email, password string) error {
	in := registerInput{Name: name, Email: email, Password: password}
	if err := a.validate.Struct(in); err != nil {
		return errors.New("please fill in all fields (password at least 6 characters)")
	}
	return a.client.Register(ctx, name, email, password)
}

// Logout clears the cached identity first, so the UI flips to the guest
// state with no delay, then tells the backend to invalidate the cookie. A
// failure to notify is logged and otherwise ignored: the user asked to be
// logged out locally and they are.
func (a *authService) Logout(ctx context.Context) {
	a.store.Clear()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := a.client.Logout(ctx); err != nil {
		a.log.Debug(ctx, "backend logout failed, local state already cleared", "error", err)
	}
}
