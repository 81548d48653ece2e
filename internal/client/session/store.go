package session

import (
	"sync"

	"github.com/skaewsombat/cookcli/internal/client/models"
)

// Snapshot is a consistent read of the session state. Views render from
// snapshots and never hold references into the store.
type Snapshot struct {
	// Identity is the cached authenticated profile, nil for guests.
	Identity *models.Identity
	// Checking is true only while a liveness check is outstanding.
	Checking bool
}

// Store is the single source of truth for "who is logged in" shared by every
// screen. It has exactly three writers: the Synchronizer, the logout path,
// and the authorization-rejection path in the services layer; the latter two
// go through Clear. Everything else reads.
type Store struct {
	mu       sync.RWMutex
	identity *models.Identity
	checking bool
	subs     []func(Snapshot)
}

// NewStore returns a store in the guest, not-checking state.
func NewStore() *Store {
	return &Store{}
}

// Identity returns a copy of the cached identity, or nil. No network call.
func (s *Store) Identity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// IsChecking reports whether a liveness check is outstanding.
func (s *Store) IsChecking() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checking
}

// CanMutate is the one capability check all screens share: a state-changing
// action is allowed only with a resolved, present identity. Screens must not
// re-derive this per view.
func (s *Store) CanMutate() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && !s.checking
}

// Snapshot returns both fields read under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	var id *models.Identity
	if s.identity != nil {
		cp := *s.identity
		id = &cp
	}
	return Snapshot{Identity: id, Checking: s.checking}
}

// Subscribe registers fn to be called after every state change. Callbacks
// run outside the store lock, on the goroutine that caused the change, and
// must not block.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Clear drops the identity immediately and unconditionally, independent of
// any network outcome. It is the sanctioned write for logout and for an
// authorization-rejected response; it does not touch the checking flag, so a
// refresh already in flight still resolves normally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.identity = nil
	snap := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// beginCheck marks a liveness check outstanding. Synchronizer only.
func (s *Store) beginCheck() {
	s.mu.Lock()
	s.checking = true
	snap := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// resolve ends the outstanding check with the backend's answer (nil means
// logged out). Synchronizer only. The checking flag always comes down here,
// whatever the outcome of the check was.
func (s *Store) resolve(id *models.Identity) {
	s.mu.Lock()
	s.identity = id
	s.checking = false
	snap := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
