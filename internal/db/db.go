package db

import (
	"database/sql"
	"log"

	"travelapp/internal/domain"
)

// Execer is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// repository methods can run either standalone or inside a transaction.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// QueryRower is the read-only slice of Execer.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// WithTx runs fn inside a transaction. Commit happens only when fn returns
// nil; any error from fn rolls every statement back and is returned as-is.
// Begin/commit failures surface as domain.TransactionError.
func WithTx(dbh *sql.DB, op string, fn func(tx *sql.Tx) error) error {
	if dbh == nil {
		return domain.TransactionError{Op: op, Err: sql.ErrConnDone}
	}
	tx, err := dbh.Begin()
	if err != nil {
		return domain.TransactionError{Op: op, Err: err}
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			log.Printf("[DB] rollback failed op=%s err=%v", op, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.TransactionError{Op: op, Err: err}
	}
	return nil
}

// HasTable reports whether a table exists in the current schema.
func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}
