package store

import (
	"context"

	"github.com/jobdori/profile-api/internal/config"
	"github.com/jobdori/profile-api/internal/logger"
)

// Storages bundles all repository implementations behind their interfaces.
// The service layer receives this struct and never touches the database
// connection directly.
type Storages struct {
	UserRepository     UserRepository
	JobSkillRepository JobSkillRepository
}

// NewStorages connects to PostgreSQL, runs pending migrations and wires up
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		JobSkillRepository: NewJobSkillRepository(db, log),
	}, nil
}
