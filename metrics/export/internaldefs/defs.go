package internaldefs

import (
	orgAuth "github.com/MrEthical07/orgAuth"
)

// CounterDef defines a public type used by orgAuth APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   orgAuth.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by orgAuth APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   orgAuth.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the authentication engine.
var CounterDefs = []CounterDef{
	{ID: orgAuth.MetricSigninSuccess, Name: "orgauth_signin_success_total", Help: "Successful signin attempts."},
	{ID: orgAuth.MetricSigninFailure, Name: "orgauth_signin_failure_total", Help: "Failed signin attempts."},
	{ID: orgAuth.MetricRefreshSuccess, Name: "orgauth_refresh_success_total", Help: "Successful refresh rotations."},
	{ID: orgAuth.MetricRefreshFailure, Name: "orgauth_refresh_failure_total", Help: "Failed refresh attempts."},
	{ID: orgAuth.MetricRevokeSuccess, Name: "orgauth_revoke_success_total", Help: "Successful revocations."},
	{ID: orgAuth.MetricRevokeFailure, Name: "orgauth_revoke_failure_total", Help: "Failed revocations."},
	{ID: orgAuth.MetricSignupSuccess, Name: "orgauth_signup_success_total", Help: "Successful account creations."},
	{ID: orgAuth.MetricSignupDuplicate, Name: "orgauth_signup_duplicate_total", Help: "Signup attempts rejected as duplicate."},
	{ID: orgAuth.MetricCacheHit, Name: "orgauth_session_cache_hit_total", Help: "Refresh lookups served from the session cache."},
	{ID: orgAuth.MetricCacheMiss, Name: "orgauth_session_cache_miss_total", Help: "Refresh lookups that fell back to the directory."},
	{ID: orgAuth.MetricOrganizationCreated, Name: "orgauth_organization_created_total", Help: "Created organizations."},
	{ID: orgAuth.MetricOrganizationUpdated, Name: "orgauth_organization_updated_total", Help: "Updated organizations."},
	{ID: orgAuth.MetricOrganizationRemoved, Name: "orgauth_organization_removed_total", Help: "Removed organizations."},
	{ID: orgAuth.MetricMemberAdded, Name: "orgauth_member_added_total", Help: "Members appended to organizations."},
	{ID: orgAuth.MetricForbidden, Name: "orgauth_forbidden_total", Help: "Organization mutations rejected for missing admin access."},
}

// HistogramDefs is an exported constant or variable used by the authentication engine.
var HistogramDefs = []HistogramDef{
	{ID: orgAuth.MetricSigninLatency, Name: "orgauth_signin_latency_seconds", Help: "Signin latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the authentication engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the authentication engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
