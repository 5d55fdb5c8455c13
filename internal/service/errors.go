package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is deliberately opaque: login failures never
	// reveal whether the email exists or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when an authenticated caller tries to access
	// a profile they do not own.
	ErrForbidden = errors.New("access to another user's profile is forbidden")

	// ErrUnknownSkill is returned when a profile modification names a skill
	// that is not in the catalog. The whole write is rejected.
	ErrUnknownSkill = errors.New("unknown job skill name")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
