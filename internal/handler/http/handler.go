package http

import (
	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/internal/service"
	"github.com/jobdori/profile-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewUserRequestValidator(),
		logger:    logger,
	}
}
