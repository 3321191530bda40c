package pipeline

import (
	"github.com/MKhiriev/go-tenant-gateway/internal/audit"
	"github.com/MKhiriev/go-tenant-gateway/internal/partner"
	"github.com/MKhiriev/go-tenant-gateway/internal/store"
)

// StoreBinder binds the PostgreSQL repositories to q, the request
// transaction.
func StoreBinder(q store.Querier) Scope {
	repos := store.NewRepositories(q)

	return Scope{
		Partners: partner.NewResolver(repos.PartnerTokens),
		Tenants:  repos.Tenants,
		Audit:    audit.NewWriter(repos.Audit),
	}
}
