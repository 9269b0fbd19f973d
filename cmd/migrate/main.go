package main

import (
	"flag"
	"os"

	"order-ledger/internal/handler/middleware"
	"order-ledger/internal/infra/db"
	"order-ledger/internal/pkg/config"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		// No logger yet: config carries the log settings.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := db.MigrateUp(cfg.DB, *dir, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}
