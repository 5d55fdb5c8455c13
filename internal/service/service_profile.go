package service

import (
	"context"
	"fmt"

	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/internal/store"
	"github.com/jobdori/profile-api/models"
)

// profileService is the concrete implementation of ProfileService.
// It enforces the ownership rule (a caller may only touch their own profile)
// and resolves submitted skill names against the catalog before delegating
// the write to the UserRepository.
type profileService struct {
	userRepository     store.UserRepository
	jobSkillRepository store.JobSkillRepository
	logger             *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given
// repositories.
func NewProfileService(userRepository store.UserRepository, jobSkillRepository store.JobSkillRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository:     userRepository,
		jobSkillRepository: jobSkillRepository,
		logger:             logger,
	}
}

// GetProfile returns the profile of the user identified by targetID.
//
// The ownership check runs before any repository access: a caller asking for
// someone else's profile gets ErrForbidden and learns nothing about whether
// the target exists.
func (p *profileService) GetProfile(ctx context.Context, callerID int64, targetID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID != targetID {
		log.Warn().Int64("caller_id", callerID).Int64("target_id", targetID).Msg("profile access denied")
		return models.User{}, ErrForbidden
	}

	foundUser, err := p.userRepository.FindUserByID(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("user_id", targetID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// ModifyProfile applies the given modification request to the target user's
// profile and returns the updated profile.
//
// Introduction, job and the skill list all follow partial-update semantics:
// a field omitted from the request leaves the stored value unchanged. When
// the skill list is present it fully replaces the stored one (an empty list
// clears it), preserving request order. All skill names are resolved against
// the catalog first: a single unknown name rejects the whole request with
// ErrUnknownSkill and nothing is written.
func (p *profileService) ModifyProfile(ctx context.Context, callerID int64, targetID int64, request models.ModifyProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID != targetID {
		log.Warn().Int64("caller_id", callerID).Int64("target_id", targetID).Msg("profile modification denied")
		return models.User{}, ErrForbidden
	}

	update := models.ProfileUpdate{
		Introduction: request.Introduction,
		Job:          request.Job,
	}

	if request.JobSkills != nil {
		jobSkills, err := p.resolveJobSkills(ctx, request.SkillNames())
		if err != nil {
			return models.User{}, err
		}
		if jobSkills == nil {
			// an explicitly submitted empty list still clears the stored one
			jobSkills = []models.JobSkill{}
		}
		update.JobSkills = jobSkills
	}

	if err := p.userRepository.UpdateProfile(ctx, targetID, update); err != nil {
		log.Err(err).Int64("user_id", targetID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	updatedUser, err := p.userRepository.FindUserByID(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("user_id", targetID).Msg("user search by id failed after update")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return updatedUser, nil
}

// resolveJobSkills maps the submitted names to catalog entries, preserving
// the order in which the names were submitted. Duplicate names are collapsed
// to their first occurrence. Any name the catalog does not know fails the
// whole resolution with ErrUnknownSkill.
func (p *profileService) resolveJobSkills(ctx context.Context, names []string) ([]models.JobSkill, error) {
	log := logger.FromContext(ctx)

	if len(names) == 0 {
		return nil, nil
	}

	found, err := p.jobSkillRepository.FindJobSkillsByNames(ctx, names)
	if err != nil {
		log.Err(err).Strs("names", names).Msg("job skill lookup failed")
		return nil, fmt.Errorf("job skill lookup failed: %w", err)
	}

	byName := make(map[string]models.JobSkill, len(found))
	for _, jobSkill := range found {
		byName[jobSkill.Name] = jobSkill
	}

	resolved := make([]models.JobSkill, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		jobSkill, ok := byName[name]
		if !ok {
			log.Warn().Str("name", name).Msg("unknown job skill name")
			return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		resolved = append(resolved, jobSkill)
	}

	return resolved, nil
}
