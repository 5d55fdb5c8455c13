package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/models"
)

// jobSkillRepository is the PostgreSQL-backed implementation of
// [JobSkillRepository]. The catalog is seeded by migrations and never
// modified at runtime, so both methods are plain reads.
type jobSkillRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewJobSkillRepository constructs a [JobSkillRepository] backed by the
// provided database connection and logger.
func NewJobSkillRepository(db *DB, logger *logger.Logger) JobSkillRepository {
	logger.Debug().Msg("creating job skill repository")
	return &jobSkillRepository{
		db:     db,
		logger: logger,
	}
}

// FindJobSkillsByNames returns the catalog entries whose names are in the
// given set. Unknown names are simply absent from the result; the caller is
// responsible for comparing cardinality.
func (r *jobSkillRepository) FindJobSkillsByNames(ctx context.Context, names []string) ([]models.JobSkill, error) {
	log := logger.FromContext(ctx)

	if len(names) == 0 {
		return nil, nil
	}

	query, args, err := buildFindJobSkillsByNamesQuery(names)
	if err != nil {
		log.Err(err).Str("func", "*jobSkillRepository.FindJobSkillsByNames").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*jobSkillRepository.FindJobSkillsByNames").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanJobSkills(rows)
}

// scanJobSkills drains the given result set into a slice of catalog entries,
// preserving row order.
func scanJobSkills(rows *sql.Rows) ([]models.JobSkill, error) {
	var jobSkills []models.JobSkill
	for rows.Next() {
		var jobSkill models.JobSkill
		if err := rows.Scan(&jobSkill.Code, &jobSkill.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		jobSkills = append(jobSkills, jobSkill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return jobSkills, nil
}

// GetAllJobSkills returns the full catalog ordered by code.
func (r *jobSkillRepository) GetAllJobSkills(ctx context.Context) ([]models.JobSkill, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllJobSkills)
	if err != nil {
		log.Err(err).Str("func", "*jobSkillRepository.GetAllJobSkills").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanJobSkills(rows)
}
