package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/config"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/repository/sqlite"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
)

// Open открывает локальную базу устройства и накатывает миграции.
// WAL нужен чтобы фоновая синхронизация не блокировала запись интентов.
func Open(ctx context.Context, log logger.Logger, cfg *config.Storage) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", cfg.SQLitePath)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// одна соединительная единица: sqlite не любит конкурентных писателей
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := sqlite.RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite migrations: %w", err)
	}

	log.With(
		logger.NewField("path", cfg.SQLitePath),
	).Info("local database ready")

	return db, nil
}
