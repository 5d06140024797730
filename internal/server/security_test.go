package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agbru/scorering/internal/metrics"
)

func TestDefaultSecurityConfig(t *testing.T) {
	config := DefaultSecurityConfig()
	if !config.EnableCORS {
		t.Error("EnableCORS should be true by default")
	}
	if len(config.AllowedOrigins) != 1 || config.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", config.AllowedOrigins)
	}
	if len(config.AllowedMethods) != 2 || config.AllowedMethods[0] != http.MethodGet || config.AllowedMethods[1] != http.MethodOptions {
		t.Errorf("AllowedMethods = %v, want [GET OPTIONS]", config.AllowedMethods)
	}
}

func TestSecurityMiddleware(t *testing.T) {
	restricted := SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{http.MethodGet},
	}

	tests := []struct {
		name       string
		config     SecurityConfig
		method     string
		origin     string
		wantStatus int
		wantNext   bool
		wantOrigin string
	}{
		{"wildcard GET", DefaultSecurityConfig(), http.MethodGet, "http://example.com", http.StatusOK, true, "*"},
		{"wildcard without Origin", DefaultSecurityConfig(), http.MethodGet, "", http.StatusOK, true, "*"},
		{"preflight", DefaultSecurityConfig(), http.MethodOptions, "http://example.com", http.StatusNoContent, false, "*"},
		{"listed origin", restricted, http.MethodGet, "http://localhost:3000", http.StatusOK, true, "http://localhost:3000"},
		{"unlisted origin", restricted, http.MethodGet, "http://evil.example", http.StatusOK, true, ""},
		{"CORS disabled", SecurityConfig{}, http.MethodGet, "http://example.com", http.StatusOK, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/state", http.NoBody)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			SecurityMiddleware(tt.config)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if nextCalled != tt.wantNext {
				t.Errorf("next called = %v, want %v", nextCalled, tt.wantNext)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
				t.Errorf("X-Content-Type-Options = %q", got)
			}
			if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
				t.Errorf("X-Frame-Options = %q", got)
			}
		})
	}
}

func TestSecurityMiddleware_ThroughRouter(t *testing.T) {
	s := New("127.0.0.1:0", metrics.NewRecorder(), WithSecurityConfig(SecurityConfig{}))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	if got := rec.Header().Get("Content-Security-Policy"); got != "default-src 'none'; frame-ancestors 'none'" {
		t.Errorf("Content-Security-Policy = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("CORS disabled but Allow-Origin = %q", got)
	}
}
