// Package sqlite implements the career repository on SQLite using the
// pure-Go modernc.org/sqlite driver.
//
// Each PersonRecord commit runs as a single transaction, so the join
// tables can never reference a missing experience or education row.
// Surrogate keys are allocated as max(id)+1 inside the transaction;
// single-writer operation is assumed (the pipeline is strictly
// sequential), so allocation needs no extra locking.
package sqlite
