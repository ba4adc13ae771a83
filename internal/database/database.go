package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func init() {
	// The modernc driver registers as "sqlite", which sqlx does not know;
	// named queries need the bindvar style registered explicitly.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// NewSQLXSQLiteDB opens (creating if necessary) the SQLite database at path
// and verifies the connection. Foreign keys are enforced per connection.
func NewSQLXSQLiteDB(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// churn under concurrent request handling.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return db, nil
}
