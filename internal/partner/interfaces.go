package partner

//go:generate mockgen -source=interfaces.go -destination=../mock/partner_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tenant-gateway/models"
)

// TokenStore looks partner tokens up by digest. It is satisfied by
// store.PartnerTokenRepository.
type TokenStore interface {
	FindActiveByDigest(ctx context.Context, digest string) (models.PartnerContext, bool, error)
}

// TokenResolver maps a raw partner credential to its partner context.
type TokenResolver interface {
	// Resolve returns found == false, with a nil error, for an unknown
	// credential, an inactive token and a token of an inactive agency alike.
	// A non-nil error means storage failed.
	Resolve(ctx context.Context, rawToken string) (partner models.PartnerContext, found bool, err error)
}
