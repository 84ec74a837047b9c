package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameLounge-BookingService/pkg/metrics"
)

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil, "test")

	mock.ExpectBegin()
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Same(t, tx, GetExecutor(ctx, db))
	assert.False(t, IsInTransaction(context.Background()))
	assert.Same(t, db, GetExecutor(context.Background(), db))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_RecordsQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	db := Wrap(sqlDB, m, "test")

	mock.ExpectExec("DELETE FROM bookings").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err = db.ExecContext(context.Background(), "DELETE FROM bookings")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("exec", "ok")))
	require.NoError(t, mock.ExpectationsWereMet())
}
