package session

import (
	"context"
	"sync"
	"time"

	"github.com/skaewsombat/cookcli/internal/client/models"
	"github.com/skaewsombat/cookcli/internal/logging"
)

// WhoAmI is the one backend call the Synchronizer needs.
type WhoAmI interface {
	Me(ctx context.Context) (*models.Identity, error)
}

// Synchronizer reconciles the Store with the backend's notion of the
// caller's identity, derived from the session cookie rather than anything
// held by application code.
//
// At most one check is in flight at a time. An overlapping Refresh is a
// no-op that returns immediately; the caller observes the in-flight check's
// result through the Store. This matches the behavior the UI was built
// around: mount and focus events routinely fire back to back.
type Synchronizer struct {
	store      *Store
	client     WhoAmI
	log        logging.Logger
	timeout    time.Duration
	staleAfter time.Duration

	mu       sync.Mutex
	inFlight bool
	lastDone time.Time
}

// NewSynchronizer wires a Synchronizer to its store and backend. timeout
// bounds each who-am-I call so the checking state cannot hang on a stalled
// connection; staleAfter controls RefreshIfStale.
func NewSynchronizer(store *Store, client WhoAmI, log logging.Logger, timeout, staleAfter time.Duration) *Synchronizer {
	return &Synchronizer{
		store:      store,
		client:     client,
		log:        log,
		timeout:    timeout,
		staleAfter: staleAfter,
	}
}

// Refresh performs the who-am-I check and settles the store. It never
// returns an error: any failure (rejected session, network trouble, a body
// that does not parse) degrades to the guest state. The store always leaves
// the checking state before Refresh returns.
func (s *Synchronizer) Refresh(ctx context.Context) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.lastDone = time.Now()
		s.mu.Unlock()
	}()

	s.store.beginCheck()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id, err := s.client.Me(ctx)
	if err != nil {
		// Expired cookies and cold backends both land here; either way the
		// safe answer is "guest".
		s.log.Warn(ctx, "session check failed, treating as logged out", "error", err)
		s.store.resolve(nil)
		return
	}
	s.store.resolve(id)
}

// RefreshIfStale runs Refresh only when the last completed check is older
// than staleAfter. This is the focus-regain analog: called before
// interactive commands as a best-effort freshness measure, it is not needed
// for correctness.
func (s *Synchronizer) RefreshIfStale(ctx context.Context) {
	s.mu.Lock()
	stale := s.lastDone.IsZero() || time.Since(s.lastDone) >= s.staleAfter
	s.mu.Unlock()

	if stale {
		s.Refresh(ctx)
	}
}
