package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tenant-gateway/internal/config"
	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/mock"
	"github.com/MKhiriev/go-tenant-gateway/internal/pipeline"
	"github.com/MKhiriev/go-tenant-gateway/internal/ratelimit"
	"github.com/MKhiriev/go-tenant-gateway/internal/store"
	"github.com/MKhiriev/go-tenant-gateway/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler returns a Handler without a pipeline for middleware tests.
func newTestHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		ids:    utils.NewUUIDGenerator(),
		logger: &logger.Logger{Logger: zerolog.New(buf)},
	}
}

type gateway struct {
	sql      sqlmock.Sqlmock
	verifier *mock.MockTokenVerifier
	partners *mock.MockTokenResolver
	tenants  *mock.MockRegistry
	audit    *mock.MockSink
	handler  *Handler
	logs     *bytes.Buffer
}

func newGateway(t *testing.T) *gateway {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	limiter, err := ratelimit.NewFixedWindow(60, time.Minute)
	require.NoError(t, err)

	g := &gateway{
		sql:      sqlMock,
		verifier: mock.NewMockTokenVerifier(ctrl),
		partners: mock.NewMockTokenResolver(ctrl),
		tenants:  mock.NewMockRegistry(ctrl),
		audit:    mock.NewMockSink(ctrl),
		logs:     new(bytes.Buffer),
	}

	p, err := pipeline.New(pipeline.Deps{
		DB:       store.NewDB(db, logger.Nop()),
		Verifier: g.verifier,
		Limiter:  limiter,
		Bind: func(store.Querier) pipeline.Scope {
			return pipeline.Scope{Partners: g.partners, Tenants: g.tenants, Audit: g.audit}
		},
	})
	require.NoError(t, err)

	log := &logger.Logger{Logger: zerolog.New(g.logs)}
	g.handler = NewHandler(p, config.Server{RequestTimeout: 5 * time.Second}, log)

	t.Cleanup(func() {
		require.NoError(t, sqlMock.ExpectationsWereMet())
	})
	return g
}

// logEntries decodes every JSON line written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

// findEntry returns the first entry with message msg, or nil.
func findEntry(entries []map[string]any, msg string) map[string]any {
	for _, e := range entries {
		if e["message"] == msg {
			return e
		}
	}
	return nil
}
