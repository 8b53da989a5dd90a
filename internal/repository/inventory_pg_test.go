package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewInventoryStore(t *testing.T) {
	pool := &pgxpool.Pool{}
	store := NewInventoryStore(pool)
	assert.NotNil(t, store)
}

type stubRow struct {
	err error
}

func (r stubRow) Scan(dest ...any) error { return r.err }

// stubTx embeds pgx.Tx for interface satisfaction and overrides only the
// methods the inventory transaction uses.
type stubTx struct {
	pgx.Tx
	execTag    pgconn.CommandTag
	execErr    error
	rowErr     error
	commitErr  error
	rolledBack bool
}

func (t *stubTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.execTag, t.execErr
}

func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return stubRow{err: t.rowErr}
}

func (t *stubTx) Commit(ctx context.Context) error { return t.commitErr }

func (t *stubTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

func TestInventoryTx_LockFlight_NotFound(t *testing.T) {
	tx := &pgInventoryTx{tx: &stubTx{rowErr: pgx.ErrNoRows}}

	flight, err := tx.LockFlight(context.Background(), 999)

	assert.Nil(t, flight)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestInventoryTx_LockFlight_ScanFailure(t *testing.T) {
	cause := errors.New("connection reset")
	tx := &pgInventoryTx{tx: &stubTx{rowErr: cause}}

	flight, err := tx.LockFlight(context.Background(), 1)

	assert.Nil(t, flight)
	assert.ErrorIs(t, err, cause)
}

func TestInventoryTx_LockBooking_NotFound(t *testing.T) {
	tx := &pgInventoryTx{tx: &stubTx{rowErr: pgx.ErrNoRows}}

	booking, err := tx.LockBooking(context.Background(), 404)

	assert.Nil(t, booking)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Contains(t, err.Error(), "already cancelled")
}

func TestInventoryTx_AddSeats_FlightMissing(t *testing.T) {
	tx := &pgInventoryTx{tx: &stubTx{execTag: pgconn.NewCommandTag("UPDATE 0")}}

	err := tx.AddSeats(context.Background(), 999, -2)

	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestInventoryTx_AddSeats_RowUpdated(t *testing.T) {
	tx := &pgInventoryTx{tx: &stubTx{execTag: pgconn.NewCommandTag("UPDATE 1")}}

	assert.NoError(t, tx.AddSeats(context.Background(), 1, 2))
}

func TestInventoryTx_AddSeats_ExecFailure(t *testing.T) {
	cause := errors.New("deadlock detected")
	tx := &pgInventoryTx{tx: &stubTx{execErr: cause}}

	err := tx.AddSeats(context.Background(), 1, 2)

	assert.ErrorIs(t, err, cause)
}

func TestInventoryTx_CommitAndRollbackDelegate(t *testing.T) {
	commitErr := errors.New("commit failed")
	stub := &stubTx{commitErr: commitErr}
	tx := &pgInventoryTx{tx: stub}

	assert.ErrorIs(t, tx.Commit(context.Background()), commitErr)
	assert.NoError(t, tx.Rollback(context.Background()))
	assert.True(t, stub.rolledBack)
}
