// Package service contains the business logic of the application: credential
// verification and token lifecycle, profile access control, and the skill
// catalog. Services depend on the repository interfaces from the store
// package and are consumed by the HTTP handlers.
package service

import (
	"context"

	"github.com/jobdori/profile-api/models"
)

type AuthService interface {
	// RegisterUser creates a new account with a hashed password.
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)

	// Login verifies the given credentials and returns the matching user.
	// Unknown email and wrong password are indistinguishable to the caller:
	// both yield ErrInvalidCredentials.
	Login(ctx context.Context, email string, password string) (models.User, error)

	// CreateTokenPair issues a signed access/refresh token pair for the user.
	CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	// GetProfile returns the profile of the user identified by targetID.
	// Callers may only read their own profile: when callerID differs from
	// targetID, ErrForbidden is returned without touching the store.
	GetProfile(ctx context.Context, callerID int64, targetID int64) (models.User, error)

	// ModifyProfile applies the given modification request to the target
	// user's profile. The same ownership rule as GetProfile applies. The
	// submitted skill names fully replace the stored skill list, keeping
	// request order; any unknown name fails the whole write with
	// ErrUnknownSkill and leaves the profile untouched.
	ModifyProfile(ctx context.Context, callerID int64, targetID int64, request models.ModifyProfileRequest) (models.User, error)
}

type JobSkillService interface {
	// GetAllJobSkills returns the full skill catalog ordered by code.
	GetAllJobSkills(ctx context.Context) ([]models.JobSkill, error)
}
