// Package config manages application configuration for the StaffDesk API.
//
// The config package loads and validates configuration from environment
// variables, optionally seeded from a .env file via godotenv. All
// configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT signing and validation settings
//   - AdminConfig: admin login credential settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	DB_HOST, DB_PORT     - SurrealDB host and port
//	DB_NAMESPACE         - Database namespace
//	DB_DATABASE          - Database name
//	DB_USER, DB_PASSWORD - Database credentials
//	JWT_PRIVATE_KEY_PATH - RSA private key for token signing
//	JWT_PUBLIC_KEY_PATH  - RSA public key for token validation
//	JWT_EXPIRATION_MINS  - Admin session lifetime in minutes
//	ADMIN_PASSWORD_HASH  - bcrypt hash of the admin password
//
// # Default Values
//
// Sensible defaults are provided for development; production requires the
// JWT key paths and admin password hash to be set explicitly.
package config
