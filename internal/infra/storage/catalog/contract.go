package catalog

import (
	"github.com/m04kA/GameLounge-BookingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
