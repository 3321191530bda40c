// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose's first statement fails: no expectation is registered
	_ = mock

	err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_PropagatesDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations_HaveUpAndDown(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		raw, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)

		body := string(raw)
		assert.True(t, strings.Contains(body, "-- +goose Up"), "%s lacks an Up section", name)
		assert.True(t, strings.Contains(body, "-- +goose Down"), "%s lacks a Down section", name)
	}
}

func TestEmbeddedMigrations_CreateCoreTables(t *testing.T) {
	var all strings.Builder
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	for _, name := range files {
		raw, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		all.Write(raw)
	}

	for _, table := range []string{
		"platform.tenants",
		"platform.tenant_apps",
		"partner_agencies",
		"partner_tokens",
		"audit_events",
	} {
		assert.Contains(t, all.String(), "CREATE TABLE "+table, "missing table %s", table)
	}
}
