package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres migrate driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file source
)

// RunMigrations applies every pending migration from sourceDir against the
// database at dsn. Both environments' tables live in the same schema, so a
// single migration set covers them.
func RunMigrations(dsn, sourceDir string) error {
	m, err := migrate.New("file://"+sourceDir, dsn)
	if err != nil {
		return fmt.Errorf("could not initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}
