// Package model defines domain entities and data structures for the Staffdesk API.
//
// The model package contains all struct definitions for domain objects, request/response
// types, and error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Application: A staff-candidate submission with applicant answers and review state
//   - Settings: The singleton record controlling whether the public form is open
//   - Stats: Aggregate application counts by status
//
// # JSON Serialization
//
// Applicant-facing payloads are flat JSON objects using the camelCase field names the
// public form submits:
//
//	{"discordUsername": "...", "discordUserId": "...", "country": "...", ...}
//
// Application carries a fixed core field set plus a revisioned answers map; both are
// flattened into a single top-level object on the wire (see application.go).
//
// # Validation
//
// Request types expose Validate() []FieldError. Field constraints:
//
//	discordUserId must match ^\d{17,19}$
//	discordBotExperience must match ^[1-5]$
//
// # Error Types
//
// APIError in errors.go pairs an HTTP status with the message rendered into the
// {success: false, error: ...} envelope every endpoint uses.
package model
