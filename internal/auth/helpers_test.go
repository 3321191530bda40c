package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://idp.example.com/"
	testAudience = "tenant-gateway"
	testKid      = "key-1"
)

// staticKeys serves keys from memory by kid.
type staticKeys map[string]any

func (s staticKeys) Key(_ context.Context, token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if key, ok := s[kid]; ok {
		return key, nil
	}
	return nil, ErrUnknownKey
}

// failingKeys always fails with err.
type failingKeys struct{ err error }

func (f failingKeys) Key(context.Context, *jwt.Token) (any, error) {
	return nil, f.err
}

func newRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func newECKey(t *testing.T, curve elliptic.Curve) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return key
}

// validClaims returns a claim set the test verifier accepts.
func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":       testIssuer,
		"aud":       testAudience,
		"sub":       "user-1",
		"tenant_id": "tenant-a",
		"roles":     []string{"Admin", "viewer"},
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
	}
}

func signToken(t *testing.T, method jwt.SigningMethod, kid string, key any, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func rsaJWK(t *testing.T, kid string, pub *rsa.PublicKey) jwkset.JWKMarshal {
	t.Helper()
	return newJWK(t, pub, jwkset.JWKMetadataOptions{KID: kid, USE: jwkset.UseSig, ALG: jwkset.AlgRS256})
}

func ecJWK(t *testing.T, kid string, pub *ecdsa.PublicKey) jwkset.JWKMarshal {
	t.Helper()
	return newJWK(t, pub, jwkset.JWKMetadataOptions{KID: kid})
}

func newJWK(t *testing.T, pub any, meta jwkset.JWKMetadataOptions) jwkset.JWKMarshal {
	t.Helper()
	jwk, err := jwkset.NewJWKFromKey(pub, jwkset.JWKOptions{Metadata: meta})
	require.NoError(t, err)
	return jwk.Marshal()
}

// headerOnly is a parsed-but-unverified token carrying just the key
// selection headers.
func headerOnly(alg, kid string) *jwt.Token {
	header := map[string]any{"alg": alg}
	if kid != "" {
		header["kid"] = kid
	}
	return &jwt.Token{Header: header}
}
