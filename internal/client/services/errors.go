package services

import "errors"

var (
	// ErrSessionChecking rejects an action attempted while the session
	// liveness check is still outstanding. The caller should try again in a
	// moment; assuming either "guest" or "logged in" here would be a guess.
	ErrSessionChecking = errors.New("still checking your session, try again shortly")

	// ErrLoginRequired rejects an authenticated-only action attempted as a
	// guest, before any request is issued.
	ErrLoginRequired = errors.New("please log in first")

	// ErrSessionExpired means the backend rejected the session cookie
	// mid-flight. The local identity has already been cleared by the time a
	// caller sees this.
	ErrSessionExpired = errors.New("session expired, please log in again")
)
