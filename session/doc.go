// Package session provides the refresh-token lookaside cache used by the authentication
// engine: a TTL-bounded map from refresh token to identity [Payload].
//
// # Cache contract
//
// Entries are a performance optimization. A miss is a normal outcome ([ErrCacheMiss]) and
// callers fall back to the durable user directory; a lost or flushed cache must never make
// a valid refresh token unusable.
//
// # Architecture boundaries
//
// This package owns the [Cache] contract, the Redis-backed [Store], and the in-memory
// [Memory] double. It does NOT interpret JWT tokens or enforce authentication policy —
// those responsibilities belong to the Engine.
//
// # What this package must NOT do
//
//   - Import orgAuth, jwt, or password (no upward imports).
//   - Treat its contents as the source of truth for active sessions.
//   - Store password hashes or other credentials in [Payload] fields.
package session
