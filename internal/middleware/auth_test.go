package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytehaven/staffdesk/api/internal/testing/helpers"
	"github.com/bytehaven/staffdesk/api/pkg/jwt"
)

func protectedHandler(t *testing.T, svc *jwt.Service) (http.Handler, *bool) {
	t.Helper()
	called := false
	handler := AdminAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if GetClaims(r.Context()) == nil {
			t.Error("expected claims in context")
		}
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &called
}

func TestAdminAuth_ValidToken(t *testing.T) {
	t.Parallel()

	h := helpers.NewAdminTokenHelper(t)
	handler, called := protectedHandler(t, h.Service)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+h.Token(t))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !*called {
		t.Error("expected handler to run")
	}
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	h := helpers.NewAdminTokenHelper(t)
	handler, called := protectedHandler(t, h.Service)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if *called {
		t.Error("expected handler to be blocked")
	}
}

func TestAdminAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	h := helpers.NewAdminTokenHelper(t)
	handler, _ := protectedHandler(t, h.Service)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Token abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAdminAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	h := helpers.NewAdminTokenHelper(t)
	handler, called := protectedHandler(t, h.Service)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+h.ExpiredToken(t))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "token expired") {
		t.Errorf("expected expiry message, got %s", rr.Body.String())
	}
	if *called {
		t.Error("expected handler to be blocked")
	}
}

func TestAdminAuth_NonAdminRole(t *testing.T) {
	t.Parallel()

	h := helpers.NewAdminTokenHelper(t)
	token, err := h.Service.Sign(jwt.Claims{Subject: "someone", Role: "user"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	handler, called := protectedHandler(t, h.Service)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if *called {
		t.Error("expected handler to be blocked")
	}
}

func TestAdminAuth_TokenFromDifferentKey(t *testing.T) {
	t.Parallel()

	other := helpers.NewAdminTokenHelper(t)
	handler, _ := protectedHandler(t, helpers.NewAdminTokenHelper(t).Service)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+other.Token(t))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
