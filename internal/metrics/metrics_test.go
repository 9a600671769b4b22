package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCanonicalPath(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/":                                      "/",
		"/health":                                "/health",
		"/api/applications":                      "/api/applications",
		"/api/applications/stats":                "/api/applications/stats",
		"/api/applications/staff_application:ab": "/api/applications/:id",
		"/api/settings":                          "/api/settings",
		"/api/admin/login":                       "/api/admin/login",
	}

	for in, want := range cases {
		if got := canonicalPath(in); got != want {
			t.Errorf("canonicalPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInstrumentHandler_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status passed through, got %d", rr.Code)
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.Len() == 0 {
		t.Error("expected metrics exposition output")
	}
}
