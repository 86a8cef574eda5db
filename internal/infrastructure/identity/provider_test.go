package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/merqado/commerce-api/internal/core/domain"
)

func TestProvider_SignIn_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("apikey") != "test-key" {
			t.Fatalf("api key not forwarded")
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if req["email"] != "alice@example.com" {
			t.Fatalf("unexpected email: %s", req["email"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user_id":      "provider-user-1",
			"access_token": "provider-token",
			"expires_in":   3600,
		})
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "test-key")
	session, err := p.SignIn(context.Background(), "alice@example.com", "pass")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if session.Subject != "provider-user-1" || session.AccessToken != "provider-token" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.ExpiresAt.IsZero() {
		t.Fatalf("expiry not set")
	}
}

func TestProvider_SignIn_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "test-key")
	if _, err := p.SignIn(context.Background(), "alice@example.com", "bad"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestProvider_SignUp_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "test-key")
	if _, err := p.SignUp(context.Background(), "alice@example.com", "pass"); err == nil {
		t.Fatalf("expected error for upstream failure")
	}
}
