// Package store implements the persistence layer of the application.
// It exposes repository interfaces for the service layer and PostgreSQL-backed
// implementations of them, together with connection management, migrations,
// and driver-level error classification.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/jobdori/profile-api/models"
)

// UserRepository persists and retrieves user accounts together with their
// profile aggregate (introduction, job, ordered skill list).
type UserRepository interface {
	// CreateUser inserts a new user record and returns the persisted user
	// with server-assigned fields (UserID, CreatedAt).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given id, including the
	// ordered skill list.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByEmail returns the user with the given login email,
	// including the ordered skill list. Used during authentication.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateProfile atomically applies the given profile mutation to the
	// user: the introduction/job columns are updated and the skill list is
	// fully replaced in a single transaction. Either everything commits or
	// nothing does.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error
}

// JobSkillRepository reads the fixed skill catalog. The catalog is seeded by
// migrations and is read-only at runtime.
type JobSkillRepository interface {
	// FindJobSkillsByNames returns the catalog entries whose names are in
	// the given set. The result carries no particular order and may be
	// smaller than the input when some names are unknown; callers decide
	// how to treat the difference.
	FindJobSkillsByNames(ctx context.Context, names []string) ([]models.JobSkill, error)

	// GetAllJobSkills returns the full catalog ordered by code.
	GetAllJobSkills(ctx context.Context) ([]models.JobSkill, error)
}
