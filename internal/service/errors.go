package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Application Errors =====
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrEmptyUpdate         = errors.New("no fields to update")
)

// ===== Settings Errors =====
var (
	ErrSettingsUnavailable = errors.New("settings unavailable")
)

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrAdminNotConfigured = errors.New("admin credentials not configured")
)

// ===== Seeder Errors =====
var (
	ErrInvalidSeedCount = errors.New("seed count must be between 1 and 500")
)
