package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite" // sqlite migration driver
	_ "github.com/golang-migrate/migrate/v4/source/file"     // file:// migration source
)

// RunMigrations applies all pending up migrations from migrationsDir to the
// SQLite database at dbPath. An already up-to-date database is not an error.
func RunMigrations(dbPath, migrationsDir string) error {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsDir),
		fmt.Sprintf("sqlite://%s", dbPath),
	)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}
