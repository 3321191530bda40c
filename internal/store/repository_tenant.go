package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// tenantRepository is the PostgreSQL-backed [TenantRepository] over
// platform.tenants and platform.tenant_apps.
type tenantRepository struct {
	q          Querier
	classifier ErrorClassificator
}

// ResolveByHost implements [TenantRepository]. host is expected lower-cased
// and without a port.
func (r *tenantRepository) ResolveByHost(ctx context.Context, host string) (models.Tenant, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildResolveTenantByHostQuery(host)
	if err != nil {
		return models.Tenant{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tenant models.Tenant
	err = r.q.QueryRowContext(ctx, query, args...).
		Scan(&tenant.ID, &tenant.Host, &tenant.Slug, &tenant.Status)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Tenant{}, false, nil
	case err != nil:
		log.Err(err).
			Str("host", host).
			Bool("transient", r.classifier.Classify(err) == Transient).
			Msg("failed to resolve tenant by host")
		return models.Tenant{}, false, wrapError(r.classifier, ErrExecutingQuery, err)
	}

	return tenant, true, nil
}

// IsAppEnabled implements [TenantRepository].
func (r *tenantRepository) IsAppEnabled(ctx context.Context, tenantID, appKey string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIsAppEnabledQuery(tenantID, appKey)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var enabled bool
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&enabled)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).
			Str("tenant_id", tenantID).
			Str("app_key", appKey).
			Bool("transient", r.classifier.Classify(err) == Transient).
			Msg("failed to read tenant app state")
		return false, wrapError(r.classifier, ErrExecutingQuery, err)
	}

	return enabled, nil
}
