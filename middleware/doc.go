// Package middleware exposes an HTTP middleware adapter that enforces access-token
// authentication on top of orgAuth.Engine verification.
//
// # Guard
//
//   - [RequireAuth] — stateless access-token verification, no cache or store call.
//
// The guard reads the Authorization header, calls Engine.VerifyAccess, and injects the
// verified identity payload into the request context.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It does NOT implement
// authentication logic itself — all decisions are delegated to Engine.VerifyAccess.
//
// # What this package must NOT do
//
//   - Parse or create JWTs directly (delegates to Engine).
//   - Access Redis or the user directory (Engine handles I/O).
//   - Make authorization decisions beyond pass/reject from Engine.VerifyAccess.
package middleware
