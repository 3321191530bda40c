package store

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tenant-gateway/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tenantColumns = []string{"id", "host", "slug", "status"}

func TestTenantRepository_ResolveByHost(t *testing.T) {
	t.Run("active tenant", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(`FROM platform\.tenants WHERE LOWER\(host\) = \$1 AND status = \$2`).
			WithArgs("acme.example.com", "active").
			WillReturnRows(sqlmock.NewRows(tenantColumns).
				AddRow("tenant-a", "acme.example.com", "acme", "active"))

		tenant, found, err := NewRepositories(db).Tenants.ResolveByHost(testContext(), "acme.example.com")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, models.Tenant{ID: "tenant-a", Host: "acme.example.com", Slug: "acme", Status: "active"}, tenant)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown or inactive host", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("FROM platform.tenants").
			WithArgs("ghost.example.com", "active").
			WillReturnRows(sqlmock.NewRows(tenantColumns))

		_, found, err := NewRepositories(db).Tenants.ResolveByHost(testContext(), "ghost.example.com")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("storage failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("FROM platform.tenants").WillReturnError(errors.New("conn reset"))

		_, _, err := NewRepositories(db).Tenants.ResolveByHost(testContext(), "acme.example.com")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrUnavailable)
	})

	t.Run("transient storage failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("FROM platform.tenants").WillReturnError(pgError(pgerrcode.AdminShutdown))

		_, _, err := NewRepositories(db).Tenants.ResolveByHost(testContext(), "acme.example.com")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestTenantRepository_IsAppEnabled(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		want    bool
		wantErr error
	}{
		{name: "enabled", rows: sqlmock.NewRows([]string{"enabled"}).AddRow(true), want: true},
		{name: "disabled", rows: sqlmock.NewRows([]string{"enabled"}).AddRow(false), want: false},
		{name: "no row means disabled", rows: sqlmock.NewRows([]string{"enabled"}), want: false},
		{name: "storage failure", err: errors.New("timeout"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			exp := mock.ExpectQuery("SELECT enabled FROM platform.tenant_apps").
				WithArgs("tenant-a", "vouchers")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			got, err := NewRepositories(db).Tenants.IsAppEnabled(testContext(), "tenant-a", "vouchers")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
