// Package dbconn opens single-use database connections from per-request
// credentials and materializes query results.
package dbconn

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/SAP/go-hdb/driver"
	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/lib/pq"
)

// connectTimeout bounds dialing and the initial ping.
const connectTimeout = 10 * time.Second

// ConnectError marks failures during connection establishment, before the
// query runs. The wire contract reports these as 400 with this prefix.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return "Connection Error: " + e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// OpenFunc opens a database handle for one request. Services hold one so
// tests can substitute a mock-backed opener.
type OpenFunc func(ctx context.Context, creds *Credentials) (*sql.DB, error)

// Open builds the DSN and opens a single-use handle: one connection per
// request, verified with a ping. The caller closes it when the request ends.
func Open(ctx context.Context, creds *Credentials) (*sql.DB, error) {
	driver, dsn, err := BuildDSN(creds)
	if err != nil {
		return nil, &ConnectError{Err: err}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, &ConnectError{Err: err}
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, &ConnectError{Err: err}
	}

	return db, nil
}
