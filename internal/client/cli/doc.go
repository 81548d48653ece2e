// Package cli provides the interactive "What Will You Cook?" terminal
// client.
//
// It wires configuration, the HTTP gateway, the session store and
// synchronizer, and an interactive shell whose commands map to the web
// front end's screens: tag search, recipe detail with ratings and comments,
// saved recipes, account, and recipe creation.
//
// Session handling is the interesting part: the prompt renders from the
// shared session store, a stale session is re-checked whenever the user
// comes back to the prompt, and an authorization-rejected action flips the
// client to the guest state on the spot and remembers which recipe to
// reopen after the next login.
//
// The shell is started via App.Run(ctx), which blocks until the user exits.
package cli
