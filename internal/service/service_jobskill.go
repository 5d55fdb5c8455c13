package service

import (
	"context"
	"fmt"

	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/internal/store"
	"github.com/jobdori/profile-api/models"
)

// jobSkillService exposes the read-only skill catalog.
type jobSkillService struct {
	jobSkillRepository store.JobSkillRepository
	logger             *logger.Logger
}

// NewJobSkillService constructs a JobSkillService backed by the given
// repository.
func NewJobSkillService(jobSkillRepository store.JobSkillRepository, logger *logger.Logger) JobSkillService {
	return &jobSkillService{
		jobSkillRepository: jobSkillRepository,
		logger:             logger,
	}
}

// GetAllJobSkills returns the full skill catalog ordered by code.
func (s *jobSkillService) GetAllJobSkills(ctx context.Context) ([]models.JobSkill, error) {
	log := logger.FromContext(ctx)

	jobSkills, err := s.jobSkillRepository.GetAllJobSkills(ctx)
	if err != nil {
		log.Err(err).Msg("job skill catalog lookup failed")
		return nil, fmt.Errorf("job skill catalog lookup failed: %w", err)
	}

	return jobSkills, nil
}
