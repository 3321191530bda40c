package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-tenant-gateway/models"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories are bound to a Querier, normally the request transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PartnerTokenRepository reads partner credentials.
type PartnerTokenRepository interface {
	// FindActiveByDigest looks up a token by its hex digest. Only an active
	// token owned by an active agency of the same tenant matches; anything
	// else reports found == false with a nil error.
	FindActiveByDigest(ctx context.Context, digest string) (partner models.PartnerContext, found bool, err error)
}

// TenantRepository reads the platform tenant registry.
type TenantRepository interface {
	// ResolveByHost returns the active tenant serving host.
	ResolveByHost(ctx context.Context, host string) (tenant models.Tenant, found bool, err error)

	// IsAppEnabled reports whether appKey is switched on for tenantID. An app
	// with no row is disabled.
	IsAppEnabled(ctx context.Context, tenantID, appKey string) (bool, error)
}

// AuditRepository appends audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event models.AuditEvent) error
}
