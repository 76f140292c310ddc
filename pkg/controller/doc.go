// Package controller contains HTTP middlewares used by the API server.
//
// Provided middlewares:
//   - WithCORS: Answers CORS preflights and decorates responses for the configured browser origins.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
package controller
