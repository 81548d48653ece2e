// Package session owns the client's authentication state.
//
// The Store holds the cached identity plus a "checking" flag and notifies
// subscribers on change; the Synchronizer is the only component that moves
// the store between the guest and authenticated states based on what the
// backend says. The liveness flag only ever transitions
//
//	unknown → present, unknown → absent, present → absent, absent → absent
//
// and re-enters "checking" solely when a new check begins. A failed check of
// any kind resolves to the guest state rather than propagating an error:
// rendering a guest screen to a logged-in user is recoverable, the reverse
// is not.
package session
