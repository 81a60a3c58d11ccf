// Package controller contains the HTTP middlewares and response helpers shared
// by the API server.
//
// Middlewares:
//   - WithLogger: request id, request-scoped logger and access log.
//   - WithRecover: turns panics into 500 responses and reports them to Sentry.
//   - WithCORS: CORS headers for the configured origins.
//   - WithSecurityHeaders: hardening headers on every response.
//   - WithRateLimit: per client IP fixed-window limits.
//   - WithMetrics: request latency per route pattern.
//   - WithAudit: asynchronous api_request audit entries.
//
// Helpers:
//   - WriteJSON and WriteError render response bodies.
//   - PprofRouter exposes net/http/pprof handlers.
package controller
