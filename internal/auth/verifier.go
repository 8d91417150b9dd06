// Package auth verifies identity provider access tokens against the
// provider's published JWKS and maps their claims to a domain.Principal.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/easi-app/easi-server/internal/config"
	"github.com/easi-app/easi-server/internal/domain"
)

const jwksClientTimeout = 10 * time.Second

// accessClaims are the claims carried by the identity provider's access tokens.
type accessClaims struct {
	jwt.RegisteredClaims
	Name   string   `json:"name,omitempty"`
	Groups []string `json:"groups,omitempty"`
}

// Verifier validates RS256 access tokens.
type Verifier struct {
	jwks            keyfunc.Keyfunc
	issuer          string
	audience        string
	leeway          time.Duration
	adminJobCode    string
	trbAdminJobCode string
}

// NewVerifier creates a Verifier whose keys are fetched from cfg.JWKSURL and
// refreshed in the background. Startup does not fail while the provider is unreachable.
func NewVerifier(cfg config.AuthConfig, logger *slog.Logger) (*Verifier, error) {
	storage, err := jwkset.NewStorageFromHTTP(cfg.JWKSURL, jwkset.HTTPClientStorageOptions{
		Client:                    &http.Client{Timeout: jwksClientTimeout},
		NoErrorReturnFirstHTTPReq: true,
		RefreshInterval:           cfg.JWKSRefresh,
		RefreshErrorHandler: func(ctx context.Context, err error) {
			logger.ErrorContext(ctx, "jwks refresh failed",
				slog.String("url", cfg.JWKSURL),
				slog.String("error", err.Error()),
			)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create jwks storage: %w", err)
	}

	k, err := keyfunc.New(keyfunc.Options{Storage: storage})
	if err != nil {
		return nil, fmt.Errorf("create keyfunc: %w", err)
	}

	return NewVerifierWithKeyfunc(k, cfg), nil
}

// NewVerifierWithKeyfunc creates a Verifier over an existing key source.
func NewVerifierWithKeyfunc(k keyfunc.Keyfunc, cfg config.AuthConfig) *Verifier {
	return &Verifier{
		jwks:            k,
		issuer:          cfg.Issuer,
		audience:        cfg.Audience,
		leeway:          cfg.Leeway,
		adminJobCode:    cfg.AdminJobCode,
		trbAdminJobCode: cfg.TRBAdminJobCode,
	}
}

// Verify parses and validates a token and returns the caller it identifies.
func (v *Verifier) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
		jwt.WithIssuer(v.issuer),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.jwks.KeyfuncCtx(ctx), opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w: %w", domain.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", domain.ErrUnauthorized)
	}

	return &domain.Principal{
		EUAID:      claims.Subject,
		Name:       claims.Name,
		JobCodes:   claims.Groups,
		IsGRTAdmin: slices.Contains(claims.Groups, v.adminJobCode),
		IsTRBAdmin: v.trbAdminJobCode != "" && slices.Contains(claims.Groups, v.trbAdminJobCode),
	}, nil
}
