package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"

	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/store"
)

// TxOpener starts a request transaction. It is satisfied by *store.DB.
type TxOpener interface {
	OpenTx(ctx context.Context) (*sql.Tx, error)
}

// TxScope owns the transaction of one request and ends it exactly once.
// It is never shared between requests.
type TxScope struct {
	tx        *sql.Tx
	finalized atomic.Bool
}

func newTxScope(tx *sql.Tx) *TxScope {
	return &TxScope{tx: tx}
}

// Querier returns the transaction for repository binding.
func (s *TxScope) Querier() store.Querier {
	return s.tx
}

// Finalized reports whether Commit or Rollback already ran.
func (s *TxScope) Finalized() bool {
	return s.finalized.Load()
}

// Commit commits unless the scope is already finalized and reports whether
// it acted. A failed commit is logged, not returned: the response is
// already decided.
func (s *TxScope) Commit(ctx context.Context) bool {
	if !s.finalized.CompareAndSwap(false, true) {
		return false
	}

	if err := s.tx.Commit(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("transaction commit failed")
	}
	return true
}

// Rollback rolls back unless the scope is already finalized and reports
// whether it acted. A failed rollback is logged.
func (s *TxScope) Rollback(ctx context.Context) bool {
	if !s.finalized.CompareAndSwap(false, true) {
		return false
	}

	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Err(err).Msg("transaction rollback failed")
	}
	return true
}
