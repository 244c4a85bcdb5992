// Package prometheus provides Prometheus collectors for orgAuth metrics.
//
// [NewPrometheusExporter] accepts an [orgAuth.Engine] and exposes an [http.Handler]
// that renders all orgAuth counters and histograms in Prometheus text exposition format.
// Counter names are prefixed orgauth_*_total; the single histogram is
// orgauth_signin_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
