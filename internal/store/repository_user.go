package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and profile mutation against the
// "users", "job_skills" and "users_job_skills" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash, user.Name, user.Role)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Name, &user.Role, &user.Introduction, &user.Job, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID retrieves a user record by its primary key, including the
// ordered skill list.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	// find user by id
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Name, &foundUser.Role, &foundUser.Introduction, &foundUser.Job, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	// load the ordered skill list
	jobSkills, err := r.findUserJobSkills(ctx, foundUser.UserID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error loading user's job skills")
		return models.User{}, err
	}
	foundUser.JobSkills = jobSkills

	return foundUser, nil
}

// FindUserByEmail retrieves a user record by its login email, including the
// ordered skill list. Used during authentication.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Name, &foundUser.Role, &foundUser.Introduction, &foundUser.Job, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	// load the ordered skill list
	jobSkills, err := r.findUserJobSkills(ctx, foundUser.UserID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error loading user's job skills")
		return models.User{}, err
	}
	foundUser.JobSkills = jobSkills

	return foundUser, nil
}

// UpdateProfile applies the given profile mutation to the user inside a
// single transaction: the introduction/job columns are updated first, then
// the user's skill rows are deleted and re-inserted in request order. A nil
// skill list leaves the stored rows untouched; an empty non-nil list clears
// them. Either everything commits or nothing does.
//
// Error handling:
//   - UPDATE affecting zero rows → [ErrProfileNotUpdated].
//   - Transaction, statement or execution failures → wrapped with the
//     corresponding low-level sentinel error.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// begin transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// update profile columns
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Bool("retryable", r.db.IsRetryable(err)).Msg("error executing profile update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().Str("func", "*userRepository.UpdateProfile").Int64("user_id", userID).Msg("profile was not updated")
		return ErrProfileNotUpdated
	}

	// replace the skill list only when one was submitted: delete all rows,
	// then insert in request order
	if update.JobSkills != nil {
		if _, err = tx.ExecContext(ctx, deleteUserJobSkills, userID); err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateProfile").Bool("retryable", r.db.IsRetryable(err)).Msg("error deleting user's job skills")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		stmt, err := tx.PrepareContext(ctx, insertUserJobSkill)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error during preparing statement")
			return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
		}
		defer stmt.Close()

		for ordinal, jobSkill := range update.JobSkills {
			if _, err = stmt.ExecContext(ctx, userID, jobSkill.Code, ordinal); err != nil {
				log.Err(err).Str("func", "*userRepository.UpdateProfile").Int64("job_skill_code", jobSkill.Code).Msg("error inserting user's job skill")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// findUserJobSkills returns the user's skills ordered by the position they
// were submitted in.
func (r *userRepository) findUserJobSkills(ctx context.Context, userID int64) ([]models.JobSkill, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findUserJobSkills, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserJobSkills").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	jobSkills, err := scanJobSkills(rows)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserJobSkills").Msg("error scanning rows")
		return nil, err
	}

	return jobSkills, nil
}
