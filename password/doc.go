// Package password implements password hashing and verification with bcrypt.
//
// # Output format
//
// Hashes are standard bcrypt strings ($2a$/$2b$ prefix) with the configured cost
// embedded, so stored credentials remain verifiable after a cost change.
//
// # Architecture boundaries
//
// This package owns hashing and verification only. Credential lookup and the
// decision to collapse a mismatch into an authentication error belong to the Engine.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords — callers supply plaintext and receive hashes.
//   - Import any other orgAuth package.
//   - Log plaintext passwords at runtime.
package password
