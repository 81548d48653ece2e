package cli

import (
	"context"
	"os"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for credentials and authenticates. On success the session
// store has already been refreshed, so the prompt flips to the new identity
// immediately; if a forced re-login interrupted an action on a recipe, that
// recipe is reopened.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	if id := a.store.Identity(); id != nil {
		printlnFn("Logged in as " + id.DisplayName())
	} else {
		// Cookie accepted but the follow-up identity check failed; the
		// next command's staleness refresh will retry.
		printlnFn("Logged in, but the session could not be confirmed yet.")
	}

	if rt := a.takeReturnTo(); rt != "" {
		printlnFn("Taking you back to the recipe you were on...")
		return a.Show(ctx, []string{rt})
	}
	return nil
}

// Register prompts for a profile and creates the account. Mirroring the web
// flow, the user logs in as a separate step afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, name, email, password); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}
	printlnFn("Account created! You can now log in.")
	return nil
}

// Logout flips to the guest state immediately; whether the backend heard
// about it is not the user's problem.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI reports the session state as the store sees it, without touching
// the network.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.store.Snapshot()
	switch {
	case snap.Checking:
		printlnFn("Checking session...")
	case snap.Identity == nil:
		printlnFn("Browsing as guest. Log in to save, rate, and comment.")
	default:
		printfFn("Logged in as %s <%s>\n", snap.Identity.DisplayName(), snap.Identity.Email)
	}
	return nil
}
