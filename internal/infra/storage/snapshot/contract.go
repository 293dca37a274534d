package snapshot

import "github.com/airjam-co/booking-resolver/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces so the repository works against
// both *sql.DB and the metrics-wrapped DB
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
