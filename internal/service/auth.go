package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bytehaven/staffdesk/api/pkg/jwt"
)

// TokenSigner mints session tokens after a successful login
type TokenSigner interface {
	Sign(claims jwt.Claims) (string, error)
	GetExpiration() time.Duration
}

// AuthService handles admin authentication
type AuthService struct {
	signer       TokenSigner
	passwordHash string
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	Signer TokenSigner
	// PasswordHash is the bcrypt hash of the admin dashboard password
	PasswordHash string
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		signer:       cfg.Signer,
		passwordHash: cfg.PasswordHash,
	}
}

// Session is the result of a successful login
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login verifies the admin password against the configured hash and mints a
// session token. The password is never compared in plaintext.
func (s *AuthService) Login(ctx context.Context, password string) (*Session, error) {
	if s.passwordHash == "" {
		return nil, ErrAdminNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signer.Sign(jwt.Claims{
		Subject: "admin",
		Role:    "admin",
	})
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		ExpiresAt: time.Now().Add(s.signer.GetExpiration()).UTC(),
	}, nil
}
