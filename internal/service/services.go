package service

import (
	"github.com/jobdori/profile-api/internal/config"
	"github.com/jobdori/profile-api/internal/crypto"
	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/internal/store"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	JobSkillService JobSkillService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.App, logger),
		ProfileService:  NewProfileService(storages.UserRepository, storages.JobSkillRepository, logger),
		JobSkillService: NewJobSkillService(storages.JobSkillRepository, logger),
	}
}
