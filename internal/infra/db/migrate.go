package db

import (
	"log/slog"
	"strings"

	"order-ledger/internal/pkg/config"
	"order-ledger/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrateUp applies every pending migration under dir.
func MigrateUp(cfg config.DBConfig, dir string, logger *slog.Logger) error {
	dsn := "pgx5://" + strings.TrimPrefix(cfg.BuildDSN(), "postgres://")

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return errs.Wrap(err, "create migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errs.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations to apply")
			return nil
		}
		return errs.Wrap(err, "migrate up")
	}

	version, dirty, err := m.Version()
	if err != nil {
		return errs.Wrap(err, "read migration version")
	}
	logger.Info("migrations applied", "version", version, "dirty", dirty)
	return nil
}
