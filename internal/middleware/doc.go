// Package middleware provides HTTP middleware for the StaffDesk API.
//
// The middleware package contains reusable middleware components for
// authentication, logging, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: unique request identifier propagation
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery with a failure envelope response
//   - CORS: cross-origin handling for the dashboard and form frontends
//   - Compress: gzip response compression
//   - AdminAuth: session token validation for review endpoints
//   - Idempotency: replay protection for double-submitted forms
//
// # Authentication
//
// AdminAuth validates the Bearer session token and requires the admin role:
//
//	protected := middleware.Chain(handler, middleware.AdminAuth(jwtService))
//
// After authentication, handlers can access the session claims:
//
//	claims := middleware.GetClaims(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns unique request identifier
//   - GetClaims(ctx): Returns validated session claims
package middleware
