// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Middlewares:
//   - WithCORS: allows cross-origin reads and answers preflights.
//   - WithLogger: attaches a request ID and request-scoped logger, then writes an access log.
//
// Helpers:
//   - PprofMux: net/http/pprof handlers mounted under PprofPrefix.
package controller
