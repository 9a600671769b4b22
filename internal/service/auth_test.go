package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bytehaven/staffdesk/api/pkg/jwt"
)

func newAuthService(t *testing.T, password string) *AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}

	return NewAuthService(AuthServiceConfig{
		Signer:       jwt.NewTestService(privateKey, "test-issuer", 15*time.Minute),
		PasswordHash: string(hash),
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, "correct horse battery staple")

	session, err := svc.Login(context.Background(), "correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Token == "" {
		t.Error("expected a session token")
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Errorf("expected future expiry, got %v", session.ExpiresAt)
	}
}

func TestAuthService_Session_WireFormat(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, "correct horse battery staple")

	session, err := svc.Login(context.Background(), "correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("failed to marshal session: %v", err)
	}

	var wire map[string]interface{}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("failed to unmarshal session: %v", err)
	}
	if _, ok := wire["token"]; !ok {
		t.Error("expected token key on the wire")
	}
	if _, ok := wire["expiresAt"]; !ok {
		t.Error("expected expiresAt key on the wire")
	}
	if len(wire) != 2 {
		t.Errorf("expected exactly token and expiresAt, got %v", wire)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, "correct horse battery staple")

	if _, err := svc.Login(context.Background(), "guess"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_NotConfigured(t *testing.T) {
	t.Parallel()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	svc := NewAuthService(AuthServiceConfig{
		Signer: jwt.NewTestService(privateKey, "test-issuer", 15*time.Minute),
	})

	if _, err := svc.Login(context.Background(), "anything"); !errors.Is(err, ErrAdminNotConfigured) {
		t.Errorf("expected ErrAdminNotConfigured, got %v", err)
	}
}
