package store

import (
	"database/sql"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/migrations"
)

// DB wraps the shared *sql.DB handle together with the error classificator
// used by repositories to decide how a failed statement should be reported.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
