package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/pkg/ctxutil"
)

//go:generate moq -out verifier_mock_test.go -pkg middleware . tokenVerifier

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestAuth_ValidToken(t *testing.T) {
	admin := &domain.Principal{EUAID: "ABCD", IsGRTAdmin: true}
	verifier := &tokenVerifierMock{
		VerifyFunc: func(ctx context.Context, token string) (*domain.Principal, error) {
			if token == "valid-token" {
				return admin, nil
			}
			return nil, errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := ctxutil.PrincipalFromCtx(r.Context())
		if !ok {
			t.Error("expected principal in context")
			return
		}
		if got.EUAID != "ABCD" {
			t.Errorf("expected EUA ID ABCD, got %s", got.EUAID)
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			t.Error("expected admin context")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	Auth(verifier, discardLogger())(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if len(verifier.VerifyCalls()) != 1 {
		t.Errorf("expected 1 verify call, got %d", len(verifier.VerifyCalls()))
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &tokenVerifierMock{
		VerifyFunc: func(ctx context.Context, token string) (*domain.Principal, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for invalid token")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	Auth(verifier, discardLogger())(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuth_AnonymousPassThrough(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &tokenVerifierMock{}
			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				if _, ok := ctxutil.PrincipalFromCtx(r.Context()); ok {
					t.Error("expected anonymous context")
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			Auth(verifier, discardLogger())(handler).ServeHTTP(httptest.NewRecorder(), req)

			if !called {
				t.Error("expected handler to be called")
			}
			if len(verifier.VerifyCalls()) != 0 {
				t.Errorf("expected verifier not to be called, got %d calls", len(verifier.VerifyCalls()))
			}
		})
	}
}

func TestExtractBearerToken_Cases(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer  abc ", "abc"},
		{"Token abc", ""},
		{"Bearer", ""},
		{"", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		if got := extractBearerToken(req); got != tt.want {
			t.Errorf("extractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	anon := context.Background()
	requester := ctxutil.WithPrincipal(context.Background(), &domain.Principal{EUAID: "USR1"})
	grt := ctxutil.WithPrincipal(context.Background(), &domain.Principal{EUAID: "ADM1", IsGRTAdmin: true})
	trb := ctxutil.WithPrincipal(context.Background(), &domain.Principal{EUAID: "ADM2", IsTRBAdmin: true})

	if err := RequireAdmin(anon); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: got %v, want ErrUnauthorized", err)
	}
	if err := RequireAdmin(requester); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("requester: got %v, want ErrForbidden", err)
	}
	if err := RequireAdmin(grt); err != nil {
		t.Errorf("grt admin: got %v, want nil", err)
	}
	if err := RequireTRBAdmin(grt); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("grt admin on trb: got %v, want ErrForbidden", err)
	}
	if err := RequireTRBAdmin(trb); err != nil {
		t.Errorf("trb admin: got %v, want nil", err)
	}
}
