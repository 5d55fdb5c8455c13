package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmptyPassword       = errors.New("password is required")
	ErrIntroductionTooLong = errors.New("introduction is too long")
	ErrJobTooLong          = errors.New("job is too long")
	ErrTooManyJobSkills    = errors.New("too many job skills")
	ErrEmptyJobSkillName   = errors.New("job skill name cannot be empty")
)
