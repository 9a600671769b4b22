// Package jwt provides JSON Web Token utilities for the StaffDesk API.
//
// The jwt package handles session token generation, validation, and claims
// extraction for the admin dashboard.
//
// # Token Generation
//
// Generate a session token after the admin password check:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/private.pem",
//	    Issuer:         "staffdesk-api",
//	    ExpirationMins: 480,
//	})
//
//	token, err := service.Sign(jwt.Claims{Subject: "admin", Role: "admin"})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	if !claims.IsAdmin() {
//	    // Not an admin session
//	}
//
// # Keys
//
// Tokens are RS256 signed. GenerateKeyPair writes a fresh PEM key pair for
// local development.
package jwt
