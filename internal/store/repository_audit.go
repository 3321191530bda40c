// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// auditRepository is the PostgreSQL-backed [AuditRepository].
type auditRepository struct {
	q          Querier
	classifier ErrorClassificator
}

// Insert implements [AuditRepository]. Empty optional fields are stored as
// NULL; metadata is stored as JSONB.
func (r *auditRepository) Insert(ctx context.Context, event models.AuditEvent) error {
	log := logger.FromContext(ctx)

	var metadata any
	if len(event.Metadata) > 0 {
		raw, err := json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingMetadata, err)
		}
		metadata = string(raw)
	}

	query, args, err := buildInsertAuditEventQuery(
		event.ID,
		nullIfEmpty(event.TenantID),
		event.ActorID,
		event.EventType,
		nullIfEmpty(event.EntityID),
		nullIfEmpty(event.Reason),
		metadata,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("event_type", event.EventType).
			Str("pg_code", postgresError(err)).
			Bool("transient", r.classifier.Classify(err) == Transient).
			Msg("failed to insert audit event")
		return wrapError(r.classifier, ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNothingInserted
	}

	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
