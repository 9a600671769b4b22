// Package handler provides HTTP request handlers for the StaffDesk API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the dependencies needed to serve
// requests for a specific feature area (applications, settings, auth).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to failure envelopes via MapServiceError
//
// # Response Format
//
// Every endpoint answers with the same envelope:
//
//	{"success": true,  "data": ...}
//	{"success": false, "error": "message"}
//
// # Authentication
//
// Review and settings mutation handlers require an admin session token. The
// auth middleware validates it before these handlers run.
//
// # Example Usage
//
//	handler := NewApplicationHandler(applicationService)
//	mux.HandleFunc("POST /api/applications", handler.Submit)
//	mux.HandleFunc("GET /api/applications", handler.List)
package handler
