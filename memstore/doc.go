// Package memstore is an in-memory reference implementation of the orgAuth store
// interfaces: [orgAuth.UserStore], [orgAuth.OrganizationStore], and [orgAuth.TxRunner].
//
// It backs the example program and the engine tests. Production deployments supply
// their own document-store adapters; this package documents the expected contract:
// unique email index, refresh-token lookup that never matches an empty value, and
// snapshot-rollback transactions.
//
// # What this package must NOT do
//
//   - Persist anything — all state is lost on process exit.
//   - Enforce authentication policy; it only stores and looks up records.
package memstore
