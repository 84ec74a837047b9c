package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/GameLounge-BookingService/pkg/metrics"
)

const defaultStatsInterval = 15 * time.Second

// DB wraps *sql.DB and records query metrics. A nil collector disables recording.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// Wrap wraps db without starting the pool stats collector.
func Wrap(db *sql.DB, m *metrics.Metrics, name string) *DB {
	return &DB{db: db, metrics: m, name: name}
}

// WrapWithDefault wraps db and starts collecting pool stats until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, name)
	go wrapped.collectStats(defaultStatsInterval, stopCh)
	return wrapped
}

// Unwrap returns the underlying *sql.DB.
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, row.Err())
	return row
}

// BeginTx starts a transaction whose statements are recorded as well.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, db: d}, nil
}

func (d *DB) observe(operation string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}

	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}

	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	d.metrics.DBQueriesTotal.WithLabelValues(operation, status).Inc()
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	if d.metrics == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordStats()
		select {
		case <-ticker.C:
		case <-stopCh:
			return
		}
	}
}

func (d *DB) recordStats() {
	stats := d.db.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConnections.WithLabelValues(d.name).Set(float64(stats.InUse))
	d.metrics.DBIdleConnections.WithLabelValues(d.name).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(d.name).Set(float64(stats.WaitCount))
}

// Tx transaction wrapper
type Tx struct {
	tx *sql.Tx
	db *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe("tx_exec", start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe("tx_query", start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe("tx_query_row", start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.db.observe("commit", start, err)
	return err
}

// Rollback after a successful Commit returns sql.ErrTxDone and is not recorded.
func (t *Tx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	if err != sql.ErrTxDone {
		t.db.observe("rollback", start, err)
	}
	return err
}
