package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobdori/profile-api/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldIntroduction = "introduction"
	FieldJob          = "job"
	FieldJobSkills    = "job_skills"
)

// Structural limits enforced on profile modification requests.
const (
	maxIntroductionLength = 2000
	maxJobLength          = 200
	maxJobSkills          = 50
)

type UserRequestValidator struct {
}

func NewUserRequestValidator() Validator {
	return &UserRequestValidator{}
}

// Validate dispatches on the concrete request type. When no field names are
// given, all fields of the request are validated.
func (v *UserRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.ModifyProfileRequest:
		return v.validateModifyProfileRequest(ctx, value, fields...)
	case *models.ModifyProfileRequest:
		return v.validateModifyProfileRequest(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserRequestValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if request.Email == "" {
				return ErrEmptyEmail
			}
			// lightweight structural check, the mail server is the real judge
			if !strings.Contains(request.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *UserRequestValidator) validateModifyProfileRequest(_ context.Context, request models.ModifyProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIntroduction, FieldJob, FieldJobSkills}
	}

	for _, field := range fields {
		switch field {
		case FieldIntroduction:
			if request.Introduction != nil && len(*request.Introduction) > maxIntroductionLength {
				return ErrIntroductionTooLong
			}
		case FieldJob:
			if request.Job != nil && len(*request.Job) > maxJobLength {
				return ErrJobTooLong
			}
		case FieldJobSkills:
			if len(request.JobSkills) > maxJobSkills {
				return ErrTooManyJobSkills
			}
			for _, jobSkill := range request.JobSkills {
				if strings.TrimSpace(jobSkill.Name) == "" {
					return ErrEmptyJobSkillName
				}
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}
