package pipeline

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/mock"
	"github.com/MKhiriev/go-tenant-gateway/internal/ratelimit"
	"github.com/MKhiriev/go-tenant-gateway/internal/store"
	"github.com/MKhiriev/go-tenant-gateway/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testHost      = "acme.example.com"
	testRequestID = "req-1"
)

var (
	tenantA = models.Tenant{ID: "tenant-a", Host: testHost, Slug: "acme", Status: models.TenantStatusActive}
	tenantB = models.Tenant{ID: "tenant-b", Host: testHost, Slug: "beta", Status: models.TenantStatusActive}

	partnerA = models.PartnerContext{TokenID: "tok-1", TenantID: tenantA.ID, PartnerAgencyID: "agency-1"}
)

type fixture struct {
	sql      sqlmock.Sqlmock
	verifier *mock.MockTokenVerifier
	partners *mock.MockTokenResolver
	tenants  *mock.MockRegistry
	audit    *mock.MockSink
	pipeline *Pipeline
	now      time.Time
}

func newFixture(t *testing.T, limit int) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	limiter, err := ratelimit.NewFixedWindow(limit, time.Minute)
	require.NoError(t, err)

	f := &fixture{
		sql:      sqlMock,
		verifier: mock.NewMockTokenVerifier(ctrl),
		partners: mock.NewMockTokenResolver(ctrl),
		tenants:  mock.NewMockRegistry(ctrl),
		audit:    mock.NewMockSink(ctrl),
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	f.pipeline, err = New(Deps{
		DB:       store.NewDB(db, logger.Nop()),
		Verifier: f.verifier,
		Limiter:  limiter,
		Bind: func(store.Querier) Scope {
			return Scope{Partners: f.partners, Tenants: f.tenants, Audit: f.audit}
		},
		Now: func() time.Time { return f.now },
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, sqlMock.ExpectationsWereMet())
	})
	return f
}

func newTestRequestContext(header map[string]string, log *logger.Logger) *RequestContext {
	r := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.Host = testHost + ":8080"
	for k, v := range header {
		r.Header.Set(k, v)
	}
	if log == nil {
		log = logger.Nop()
	}
	return NewRequestContext(r, testRequestID, log)
}

func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func okHandler(data any) Handler {
	return func(context.Context, *RequestContext) (*Response, error) {
		return OK(data), nil
	}
}

func claimsFor(tenantID string, roles ...models.Role) models.AuthClaims {
	return models.AuthClaims{Subject: "user-1", TenantID: tenantID, Roles: models.NewRoleSet(roles...)}
}
