package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-tenant-gateway/internal/mock"
	"github.com/MKhiriev/go-tenant-gateway/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWriter_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	fixed := time.Date(2026, 4, 2, 8, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	w := NewWriter(store)
	w.now = func() time.Time { return fixed }

	var stored models.AuditEvent
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.AuditEvent) error {
			stored = e
			return nil
		},
	)

	err := w.Write(context.Background(), models.AuditEvent{
		ID:        "caller-supplied",
		TenantID:  "tenant-a",
		ActorID:   "user-1",
		EventType: EventMeRead,
		EntityID:  "user-1",
	})
	require.NoError(t, err)

	id, err := uuid.Parse(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, fixed.UTC(), stored.CreatedAt)
	assert.Equal(t, "tenant-a", stored.TenantID)
	assert.Equal(t, EventMeRead, stored.EventType)
}

func TestWriter_Write_Validation(t *testing.T) {
	tests := []struct {
		name  string
		event models.AuditEvent
	}{
		{name: "missing actor", event: models.AuditEvent{EventType: EventMeRead}},
		{name: "blank actor", event: models.AuditEvent{ActorID: "  ", EventType: EventMeRead}},
		{name: "missing event type", event: models.AuditEvent{ActorID: "user-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock.NewMockStore(ctrl)

			err := NewWriter(store).Write(context.Background(), tt.event)
			assert.ErrorIs(t, err, ErrInvalidEvent)
		})
	}
}

func TestWriter_Write_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := NewWriter(store).Write(context.Background(), models.AuditEvent{ActorID: "u", EventType: "x"})
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestPartnerActor(t *testing.T) {
	assert.Equal(t, "partner:tok-1", PartnerActor("tok-1"))
}
