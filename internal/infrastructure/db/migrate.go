package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// RunMigrations applies the ordered schema files under dir. The mysql
// driver serializes concurrent instances behind GET_LOCK, so a losing
// instance waits, sees the schema already applied, and skips.
func RunMigrations(dsn, dir string, log *zap.Logger) error {
	m, err := migrate.New("file://"+dir, "mysql://"+dsn)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("migrations: already up to date")
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}
	log.Info("migrations: applied")
	return nil
}
