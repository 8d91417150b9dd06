package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/easi-app/easi-server/internal/config"
	"github.com/easi-app/easi-server/internal/domain"
)

const (
	testKeyID  = "test-key"
	testIssuer = "https://idp.test/oauth2/default"
)

func generateTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	return key
}

func buildJWKSetJSON(pub *rsa.PublicKey, kid string) json.RawMessage {
	jwks := map[string]any{
		"keys": []map[string]any{{
			"kty": "RSA",
			"kid": kid,
			"use": "sig",
			"alg": "RS256",
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}},
	}
	data, _ := json.Marshal(jwks)
	return data
}

func newTestVerifier(t *testing.T, key *rsa.PrivateKey) *Verifier {
	t.Helper()
	kf, err := keyfunc.NewJWKSetJSON(buildJWKSetJSON(&key.PublicKey, testKeyID))
	if err != nil {
		t.Fatalf("create keyfunc: %v", err)
	}
	return NewVerifierWithKeyfunc(kf, config.AuthConfig{
		Issuer:          testIssuer,
		Leeway:          time.Second,
		AdminJobCode:    "EASI_D_GOVTEAM",
		TRBAdminJobCode: "EASI_TRB_ADMIN_D",
	})
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKeyID
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func baseClaims(groups ...string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":    "ABCD",
		"name":   "Alex Admin",
		"iss":    testIssuer,
		"exp":    jwt.NewNumericDate(time.Now().Add(time.Hour)),
		"iat":    jwt.NewNumericDate(time.Now()),
		"groups": groups,
	}
}

func TestVerifier_Verify_Admin(t *testing.T) {
	t.Parallel()
	key := generateTestKey(t)
	v := newTestVerifier(t, key)

	p, err := v.Verify(context.Background(), signToken(t, key, baseClaims("EASI_P_USER", "EASI_D_GOVTEAM")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.EUAID != "ABCD" || p.Name != "Alex Admin" {
		t.Errorf("principal = %+v", p)
	}
	if !p.IsGRTAdmin {
		t.Error("expected IsGRTAdmin")
	}
	if p.IsTRBAdmin {
		t.Error("expected not IsTRBAdmin")
	}
}

func TestVerifier_Verify_Requester(t *testing.T) {
	t.Parallel()
	key := generateTestKey(t)
	v := newTestVerifier(t, key)

	p, err := v.Verify(context.Background(), signToken(t, key, baseClaims("EASI_P_USER")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.IsGRTAdmin || p.IsTRBAdmin {
		t.Errorf("principal = %+v, want no admin flags", p)
	}
}

func TestVerifier_Verify_Rejects(t *testing.T) {
	t.Parallel()
	key := generateTestKey(t)
	other := generateTestKey(t)
	v := newTestVerifier(t, key)

	expired := baseClaims()
	expired["exp"] = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	wrongIssuer := baseClaims()
	wrongIssuer["iss"] = "https://evil.test"

	noSubject := baseClaims()
	delete(noSubject, "sub")

	noExpiry := baseClaims()
	delete(noExpiry, "exp")

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: signToken(t, key, expired)},
		{name: "wrong issuer", token: signToken(t, key, wrongIssuer)},
		{name: "no subject", token: signToken(t, key, noSubject)},
		{name: "no expiry", token: signToken(t, key, noExpiry)},
		{name: "wrong key", token: signToken(t, other, baseClaims())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := v.Verify(context.Background(), tt.token)
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("error = %v, want ErrUnauthorized", err)
			}
		})
	}
}
