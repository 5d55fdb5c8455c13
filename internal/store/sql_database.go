package store

import (
	"database/sql"

	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
