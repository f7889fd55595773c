// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Answers cross-origin requests from configured origins and handles preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRecovery: Converts panics into 500 responses and reports them.
//   - WithBotGuard: Rejects crawlers and scripted clients.
//   - WithMetrics: Observes request latency per route.
//   - RateLimiter: Per-IP token bucket limiting.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
