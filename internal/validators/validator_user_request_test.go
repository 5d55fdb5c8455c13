package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/jobdori/profile-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestValidate_LoginRequest(t *testing.T) {
	tests := []struct {
		name    string
		request models.LoginRequest
		fields  []string
		wantErr error
	}{
		{
			name:    "valid credentials",
			request: models.LoginRequest{Email: "john@example.com", Password: "secret"},
		},
		{
			name:    "empty email",
			request: models.LoginRequest{Password: "secret"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "email without at sign",
			request: models.LoginRequest{Email: "john.example.com", Password: "secret"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty password",
			request: models.LoginRequest{Email: "john@example.com"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "scoped to email skips empty password",
			request: models.LoginRequest{Email: "john@example.com"},
			fields:  []string{FieldEmail},
		},
		{
			name:    "unknown field name",
			request: models.LoginRequest{Email: "john@example.com", Password: "secret"},
			fields:  []string{"nickname"},
			wantErr: ErrUnknownField,
		},
	}

	validator := NewUserRequestValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(context.Background(), tt.request)
			if tt.fields != nil {
				err = validator.Validate(context.Background(), tt.request, tt.fields...)
			}

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidate_ModifyProfileRequest(t *testing.T) {
	tests := []struct {
		name    string
		request models.ModifyProfileRequest
		wantErr error
	}{
		{
			name: "full valid request",
			request: models.ModifyProfileRequest{
				Introduction: strPtr("hello"),
				Job:          strPtr("backend developer"),
				JobSkills:    []models.JobSkillRequest{{Name: "Go"}, {Name: "SQL"}},
			},
		},
		{
			name:    "empty request is valid",
			request: models.ModifyProfileRequest{},
		},
		{
			name: "introduction at the limit",
			request: models.ModifyProfileRequest{
				Introduction: strPtr(strings.Repeat("a", maxIntroductionLength)),
			},
		},
		{
			name: "introduction too long",
			request: models.ModifyProfileRequest{
				Introduction: strPtr(strings.Repeat("a", maxIntroductionLength+1)),
			},
			wantErr: ErrIntroductionTooLong,
		},
		{
			name: "job too long",
			request: models.ModifyProfileRequest{
				Job: strPtr(strings.Repeat("a", maxJobLength+1)),
			},
			wantErr: ErrJobTooLong,
		},
		{
			name: "too many job skills",
			request: models.ModifyProfileRequest{
				JobSkills: make([]models.JobSkillRequest, maxJobSkills+1),
			},
			wantErr: ErrTooManyJobSkills,
		},
		{
			name: "blank job skill name",
			request: models.ModifyProfileRequest{
				JobSkills: []models.JobSkillRequest{{Name: "Go"}, {Name: "   "}},
			},
			wantErr: ErrEmptyJobSkillName,
		},
	}

	validator := NewUserRequestValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(context.Background(), tt.request)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidate_PointerRequestsAccepted(t *testing.T) {
	validator := NewUserRequestValidator()

	err := validator.Validate(context.Background(), &models.LoginRequest{Email: "john@example.com", Password: "secret"})
	assert.NoError(t, err)

	err = validator.Validate(context.Background(), &models.ModifyProfileRequest{})
	assert.NoError(t, err)
}

func TestValidate_UnsupportedType(t *testing.T) {
	validator := NewUserRequestValidator()

	err := validator.Validate(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "int")
}
