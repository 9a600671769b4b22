// Package helpers provides common test utilities for API tests.
//
// This package includes admin token minting, pointer constructors for
// patch-style payloads, and JSON envelope helpers.
package helpers

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytehaven/staffdesk/api/internal/model"
	"github.com/bytehaven/staffdesk/api/pkg/jwt"
)

// AdminTokenHelper mints admin session tokens with an in-memory key.
type AdminTokenHelper struct {
	Service *jwt.Service
	issuer  string
}

// NewAdminTokenHelper creates a token helper backed by a fresh RSA key.
func NewAdminTokenHelper(t *testing.T) *AdminTokenHelper {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("helpers: failed to generate RSA key: %v", err)
	}

	issuer := "staffdesk-test"
	return &AdminTokenHelper{
		Service: jwt.NewTestService(privateKey, issuer, time.Hour),
		issuer:  issuer,
	}
}

// Token returns a valid admin session token.
func (h *AdminTokenHelper) Token(t *testing.T) string {
	t.Helper()

	now := time.Now()
	token, err := h.Service.Sign(jwt.Claims{
		Issuer:    h.issuer,
		Subject:   "admin",
		Role:      "admin",
		IssuedAt:  now.Unix(),
		NotBefore: now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("helpers: failed to sign token: %v", err)
	}
	return token
}

// ExpiredToken returns an admin token whose expiry is in the past.
func (h *AdminTokenHelper) ExpiredToken(t *testing.T) string {
	t.Helper()

	past := time.Now().Add(-2 * time.Hour)
	token, err := h.Service.Sign(jwt.Claims{
		Issuer:    h.issuer,
		Subject:   "admin",
		Role:      "admin",
		IssuedAt:  past.Unix(),
		NotBefore: past.Unix(),
		ExpiresAt: past.Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("helpers: failed to sign token: %v", err)
	}
	return token
}

// Pointer constructors for patch-style request payloads.

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }

// StatusPtr returns a pointer to st.
func StatusPtr(st model.Status) *model.Status { return &st }

// JSONRequest builds an httptest request with a JSON body and content type.
func JSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("helpers: failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// DecodeEnvelope unmarshals a response body into the uniform envelope shape.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, json.RawMessage, string) {
	t.Helper()

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("helpers: failed to decode envelope: %v\nBody: %s", err, rec.Body.String())
	}
	return env.Success, env.Data, env.Error
}
