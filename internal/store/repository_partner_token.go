package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// partnerTokenRepository is the PostgreSQL-backed [PartnerTokenRepository].
type partnerTokenRepository struct {
	q          Querier
	classifier ErrorClassificator
}

// FindActiveByDigest implements [PartnerTokenRepository]. Inactive tokens,
// inactive agencies and unknown digests are all reported as not found.
func (r *partnerTokenRepository) FindActiveByDigest(ctx context.Context, digest string) (models.PartnerContext, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindActivePartnerTokenQuery(digest)
	if err != nil {
		return models.PartnerContext{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var partner models.PartnerContext
	err = r.q.QueryRowContext(ctx, query, args...).
		Scan(&partner.TokenID, &partner.TenantID, &partner.PartnerAgencyID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.PartnerContext{}, false, nil
	case err != nil:
		log.Err(err).
			Bool("transient", r.classifier.Classify(err) == Transient).
			Msg("failed to look up partner token")
		return models.PartnerContext{}, false, wrapError(r.classifier, ErrExecutingQuery, err)
	}

	return partner, true, nil
}
