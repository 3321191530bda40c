package tenant

//go:generate mockgen -source=interfaces.go -destination=../mock/tenant_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tenant-gateway/models"
)

// Registry is the platform tenant registry. Only active tenants are ever
// returned. It is satisfied by store.TenantRepository.
type Registry interface {
	ResolveByHost(ctx context.Context, host string) (models.Tenant, bool, error)
	IsAppEnabled(ctx context.Context, tenantID, appKey string) (bool, error)
}
