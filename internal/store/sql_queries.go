package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jobdori/profile-api/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, name, role, introduction, job, created_at;`

	findUserByID = `SELECT user_id, email, password_hash, name, role, introduction, job, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, role, introduction, job, created_at
    FROM users
    WHERE email = $1;`

	findUserJobSkills = `SELECT js.code, js.name
    FROM users_job_skills ujs
    JOIN job_skills js ON js.code = ujs.job_skill_code
    WHERE ujs.user_id = $1
    ORDER BY ujs.ordinal;`

	deleteUserJobSkills = `DELETE FROM users_job_skills
    WHERE user_id = $1;`

	insertUserJobSkill = `INSERT INTO users_job_skills (user_id, job_skill_code, ordinal)
    VALUES ($1, $2, $3);`

	getAllJobSkills = `SELECT code, name
    FROM job_skills
    ORDER BY code;`
)

// buildUpdateProfileQuery builds the UPDATE statement for the profile columns
// of a single user. Only non-nil fields of the update are included in the SET
// clause; updated_at is always touched so the statement affects a row even
// when the request changes skills only.
func buildUpdateProfileQuery(userID int64, update models.ProfileUpdate) (string, []any, error) {
	builder := sq.Update(models.User{}.TableName()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if update.Introduction != nil {
		builder = builder.Set("introduction", *update.Introduction)
	}
	if update.Job != nil {
		builder = builder.Set("job", *update.Job)
	}

	return builder.ToSql()
}

// buildFindJobSkillsByNamesQuery builds a SELECT over the skill catalog that
// matches any of the given names. squirrel expands the slice into an
// IN ($1,$2,...) clause with Postgres placeholders.
func buildFindJobSkillsByNamesQuery(names []string) (string, []any, error) {
	return sq.Select("code", "name").
		From(models.JobSkill{}.TableName()).
		Where(sq.Eq{"name": names}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
