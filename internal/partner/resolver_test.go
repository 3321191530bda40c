package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-tenant-gateway/internal/mock"
	"github.com/MKhiriev/go-tenant-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDigest(t *testing.T) {
	// sha256("test")
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", Digest("test"))
	assert.Equal(t, Digest("partner-secret"), Digest("partner-secret"))
	assert.NotEqual(t, Digest("partner-secret"), Digest("partner-secret "))
	assert.Len(t, Digest(""), 64)
}

func TestResolver_Resolve(t *testing.T) {
	active := models.PartnerContext{TokenID: "tok-1", TenantID: "tenant-a", PartnerAgencyID: "agency-1"}

	tests := []struct {
		name      string
		setup     func(store *mock.MockTokenStore)
		want      models.PartnerContext
		wantFound bool
		wantErr   error
	}{
		{
			name: "active token of active agency",
			setup: func(store *mock.MockTokenStore) {
				store.EXPECT().FindActiveByDigest(gomock.Any(), Digest("raw-token")).Return(active, true, nil)
			},
			want:      active,
			wantFound: true,
		},
		{
			name: "unknown, inactive token or inactive agency",
			setup: func(store *mock.MockTokenStore) {
				store.EXPECT().FindActiveByDigest(gomock.Any(), Digest("raw-token")).Return(models.PartnerContext{}, false, nil)
			},
		},
		{
			name: "storage failure",
			setup: func(store *mock.MockTokenStore) {
				store.EXPECT().FindActiveByDigest(gomock.Any(), gomock.Any()).Return(models.PartnerContext{}, false, errors.New("conn reset"))
			},
			wantErr: ErrLookupFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock.NewMockTokenStore(ctrl)
			tt.setup(store)

			got, found, err := NewResolver(store).Resolve(context.Background(), "raw-token")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, found)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_Resolve_NotFoundIsIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTokenStore(ctrl)
	store.EXPECT().FindActiveByDigest(gomock.Any(), gomock.Any()).Return(models.PartnerContext{}, false, nil).Times(3)

	r := NewResolver(store)
	var results [][]any
	for _, raw := range []string{"unknown", "inactive-token", "inactive-agency"} {
		p, found, err := r.Resolve(context.Background(), raw)
		results = append(results, []any{p, found, err})
	}

	assert.Equal(t, results[0], results[1])
	assert.Equal(t, results[1], results[2])
}

func TestResolver_Resolve_BlankTokenSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTokenStore(ctrl)

	_, found, err := NewResolver(store).Resolve(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, found)
}
