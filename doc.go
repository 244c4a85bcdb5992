// Package orgAuth provides an account, session, and organization engine with JWT access
// tokens, rotating JWT refresh tokens, a Redis-backed session cache, and pluggable
// document-style stores for users and organizations.
//
// The package is designed for concurrent server workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// orgAuth is the public surface. It exposes [Engine], [Builder], [Config], and value types
// (Payload, TokenPair, Organization, etc.). Token signing lives in jwt/, hashing in
// password/, the session cache in session/, and callers supply [UserStore] and
// [OrganizationStore] implementations backed by their own database.
//
// # What this package must NOT do
//
//   - Expose Redis clients, store internals, or encoding details in its public API.
//   - Treat the session cache as authoritative — the user directory always wins.
//   - Import any sub-package that re-imports orgAuth (no import cycles).
//
// # Performance contract
//
// VerifyAccess is the hot path. It must not allocate beyond the returned Payload and must
// complete without any store or cache round-trip. Signin, Refresh, and Revoke are allowed
// one cache round-trip plus the directory calls they document.
package orgAuth
