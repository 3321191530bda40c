package audit

//go:generate mockgen -source=interfaces.go -destination=../mock/audit_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tenant-gateway/models"
)

// Store persists audit events. It is satisfied by store.AuditRepository.
type Store interface {
	Insert(ctx context.Context, event models.AuditEvent) error
}

// Sink records what actors did. Events are append-only.
type Sink interface {
	Write(ctx context.Context, event models.AuditEvent) error
}
