// Package api implements the HTTP gateway to the recipe backend.
//
// The backend is authoritative for everything: search ranking, persistence,
// rating aggregation, and who the caller is. This package's job is the
// uniform request/response discipline every call shares:
//
//   - the ambient credential (a session cookie) is attached automatically by
//     the client's cookie jar, never assembled at call sites;
//   - every request disables response caching and carries an X-Request-Id;
//   - failures are triaged into ErrUnauthorized (session invalid),
//     ErrUnavailable (could not complete / unparseable), or *APIError (the
//     backend said why, in words meant for the user).
//
// Nothing here touches session state; clearing identity on ErrUnauthorized
// is the services layer's job.
package api
