package cli

import (
	"bufio"
	"context"
	"os"
	"sync"
	"time"

	"github.com/skaewsombat/cookcli/internal/client/api"
	"github.com/skaewsombat/cookcli/internal/client/config"
	"github.com/skaewsombat/cookcli/internal/client/models"
	"github.com/skaewsombat/cookcli/internal/client/services"
	"github.com/skaewsombat/cookcli/internal/client/session"
	"github.com/skaewsombat/cookcli/internal/logging"
)

// Mode is backend connectivity as seen by the background watcher. It affects
// only the prompt; commands always try the network and report their own
// errors.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires the screens to the session machinery and the recipe service.
// The mutable screen state (selected tags, last search results, the pending
// return target) is plain in-memory state scoped to the running process,
// mirroring per-page component state.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	client  api.Client
	store   *session.Store
	sync    *session.Synchronizer
	auth    services.AuthService
	recipes services.RecipeService
	reader  *bufio.Reader

	mu       sync.Mutex
	mode     Mode
	selected []string        // ingredient tags chosen for the next search
	results  []models.Recipe // last search results, addressable by number
	returnTo string          // recipe to reopen after a forced re-login
}

// NewApp builds the full client: HTTP gateway, session store and
// synchronizer, services, and the interactive shell around them.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	store := session.NewStore()
	synchronizer := session.NewSynchronizer(store, apiClient, log, cfg.SessionCheckTimeout, cfg.SessionStaleAfter)

	return &App{
		cfg:     cfg,
		log:     log,
		client:  apiClient,
		store:   store,
		sync:    synchronizer,
		auth:    services.NewAuthService(apiClient, store, synchronizer, log),
		recipes: services.NewRecipeService(apiClient, store, log),
		reader:  bufio.NewReader(os.Stdin),
		mode:    ModeOnline,
	}, nil
}

// Run blocks in the interactive shell until the user exits or ctx is done.
// The initial session check runs first so the first prompt already knows
// whether a previous session cookie is still good.
func (a *App) Run(ctx context.Context) {
	if err := api.WaitReachable(ctx, a.client, 4, 500*time.Millisecond); err != nil {
		a.setMode(ModeOffline)
		printlnFn("Backend is not reachable right now; commands will keep trying.")
	}

	a.sync.Refresh(ctx)

	go a.watchConnectivity(ctx)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// watchConnectivity flips the prompt between online and offline based on a
// periodic reachability probe. It never touches the session store; session
// liveness is only re-derived on load, login, and pre-command staleness.
func (a *App) watchConnectivity(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.OnlineCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.client.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// isLoggedIn reflects the store's settled state; during a check it reports
// the previous answer, which is only used to pick which help text to show.
func (a *App) isLoggedIn() bool {
	return a.store.Identity() != nil
}

// EnsureFresh re-validates the session if the last check has gone stale.
// Called by the shell when the user comes back to the prompt; best-effort
// freshness, not required for correctness.
func (a *App) EnsureFresh(ctx context.Context) {
	a.sync.RefreshIfStale(ctx)
}

// status renders the prompt decoration: connectivity plus who is logged in.
func (a *App) status() string {
	a.mu.Lock()
	mode := a.mode
	a.mu.Unlock()

	snap := a.store.Snapshot()
	switch {
	case snap.Checking:
		return "checking session, " + string(mode)
	case snap.Identity != nil:
		return snap.Identity.DisplayName() + ", " + string(mode)
	default:
		return "guest, " + string(mode)
	}
}

// setReturnTo records the recipe to land back on after the user is sent
// through login.
func (a *App) setReturnTo(recipeID string) {
	a.mu.Lock()
	a.returnTo = recipeID
	a.mu.Unlock()
}

// takeReturnTo pops the pending return target, if any.
func (a *App) takeReturnTo() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	rt := a.returnTo
	a.returnTo = ""
	return rt
}
