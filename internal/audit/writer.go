// Package audit records tenant-scoped actor actions.
package audit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/utils"
	"github.com/MKhiriev/go-tenant-gateway/models"
)

// Well-known event types.
const (
	EventMeRead = "auth.me.read"
)

var (
	ErrInvalidEvent = errors.New("invalid audit event")
	ErrWriteFailed  = errors.New("audit write failed")
)

// Writer is the Sink used by route handlers. It stamps id and time and
// delegates to a Store bound to the request transaction.
type Writer struct {
	store Store
	ids   *utils.UUIDGenerator
	now   func() time.Time
}

func NewWriter(store Store) *Writer {
	return &Writer{
		store: store,
		ids:   utils.NewUUIDGenerator(),
		now:   time.Now,
	}
}

// Write validates event and appends it. ActorID and EventType are required;
// ID and CreatedAt are always assigned here.
func (w *Writer) Write(ctx context.Context, event models.AuditEvent) error {
	if strings.TrimSpace(event.ActorID) == "" {
		return fmt.Errorf("%w: empty actor id", ErrInvalidEvent)
	}
	if strings.TrimSpace(event.EventType) == "" {
		return fmt.Errorf("%w: empty event type", ErrInvalidEvent)
	}

	event.ID = w.ids.Generate()
	event.CreatedAt = w.now().UTC()

	if err := w.store.Insert(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("event_type", event.EventType).
			Str("tenant_id", event.TenantID).
			Msg("audit write failed")
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}

// PartnerActor is the actor id recorded for partner-token requests.
func PartnerActor(tokenID string) string {
	return "partner:" + tokenID
}
