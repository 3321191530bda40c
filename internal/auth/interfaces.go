package auth

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_mock.go -package=mock

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-tenant-gateway/models"
)

// TokenVerifier validates a bearer token and extracts the acting user.
type TokenVerifier interface {
	// Verify returns the token's claims with roles already normalized.
	//
	// Errors:
	//   - ErrTokenInvalid for signature, issuer, audience, expiry or shape failures;
	//   - ErrRolesInvalid when no role survives normalization;
	//   - ErrKeySetUnavailable when the signing keys cannot be fetched.
	Verify(ctx context.Context, token string) (models.AuthClaims, error)
}

// KeySetProvider returns the public key that verifies token, selected by
// the token's "kid" header.
type KeySetProvider interface {
	Key(ctx context.Context, token *jwt.Token) (any, error)
}
