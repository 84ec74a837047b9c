package booking

import (
	"github.com/m04kA/GameLounge-BookingService/pkg/dbmetrics"
)

// Reuse dbmetrics interfaces so the repository works with *sql.DB, *dbmetrics.DB and transactions
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
