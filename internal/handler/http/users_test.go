package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jobdori/profile-api/internal/service"
	"github.com/jobdori/profile-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The profile endpoints are tested through the full router so that the auth
// middleware and the {id} path parameter are exercised the way real requests
// hit them.

func modifyBody(t *testing.T, request models.ModifyProfileRequest) string {
	t.Helper()
	b, err := json.Marshal(request)
	require.NoError(t, err)
	return string(b)
}

func TestGetProfile_Success(t *testing.T) {
	profile := &mockProfileService{
		getProfileFn: func(_ context.Context, callerID, targetID int64) (models.User, error) {
			assert.Equal(t, int64(42), callerID)
			assert.Equal(t, int64(42), targetID)
			return models.User{
				UserID: 42,
				Email:  "john@example.com",
				Name:   "John",
				JobSkills: []models.JobSkill{
					{Code: 3, Name: "Go"},
				},
			}, nil
		},
	}
	auth := &mockAuthService{parseTokenFn: parseTokenAs(42)}

	router := newTestHandler(t, auth, profile, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/42", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, models.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "john@example.com", data["email"])
	assert.Equal(t, "John", data["name"])
}

func TestGetProfile_NoToken(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockProfileService{}, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/42", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	// HTTP 401 but application code 400: that pairing is the contract
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeUnauthenticated, resp.Code)
}

func TestGetProfile_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	router := newTestHandler(t, auth, &mockProfileService{}, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/42", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeUnauthenticated, resp.Code)
}

func TestGetProfile_OtherUsersProfile(t *testing.T) {
	profile := &mockProfileService{
		getProfileFn: func(_ context.Context, callerID, targetID int64) (models.User, error) {
			return models.User{}, service.ErrForbidden
		},
	}
	auth := &mockAuthService{parseTokenFn: parseTokenAs(42)}
	router := newTestHandler(t, auth, profile, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/43", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	// HTTP 403 with application code 4003
	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeForbidden, resp.Code)
}

func TestGetProfile_InvalidID(t *testing.T) {
	auth := &mockAuthService{parseTokenFn: parseTokenAs(42)}
	router := newTestHandler(t, auth, &mockProfileService{}, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/not-a-number", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestModifyProfile_Success(t *testing.T) {
	request := models.ModifyProfileRequest{
		Introduction: strPtr("hello"),
		Job:          strPtr("backend developer"),
		JobSkills: []models.JobSkillRequest{
			{Name: "Go"},
			{Name: "SQL"},
		},
	}

	profile := &mockProfileService{
		modifyProfileFn: func(_ context.Context, callerID, targetID int64, got models.ModifyProfileRequest) (models.User, error) {
			assert.Equal(t, int64(42), callerID)
			assert.Equal(t, int64(42), targetID)
			require.NotNil(t, got.Introduction)
			assert.Equal(t, "hello", *got.Introduction)
			require.Len(t, got.JobSkills, 2)
			assert.Equal(t, "Go", got.JobSkills[0].Name)
			return models.User{
				UserID:       42,
				Introduction: got.Introduction,
				Job:          got.Job,
				JobSkills: []models.JobSkill{
					{Code: 3, Name: "Go"},
					{Code: 7, Name: "SQL"},
				},
			}, nil
		},
	}
	auth := &mockAuthService{parseTokenFn: parseTokenAs(42)}
	router := newTestHandler(t, auth, profile, nil).Init()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/42", strings.NewReader(modifyBody(t, request)))
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, models.CodeSuccess, resp.Code)
}

func TestModifyProfile_NoToken(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockProfileService{}, nil).Init()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/42", strings.NewReader(modifyBody(t, models.ModifyProfileRequest{})))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeUnauthenticated, resp.Code)
}

func TestModifyProfile_OtherUsersProfile(t *testing.T) {
	profile := &mockProfileService{
		modifyProfileFn: func(_ context.Context, _, _ int64, _ models.ModifyProfileRequest) (models.User, error) {
			return models.User{}, service.ErrForbidden
		},
	}
	auth := &mockAuthService{parseTokenFn: parseTokenAs(42)}
	router := newTestHandler(t, auth, profile, nil).Init()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/43", strings.NewReader(modifyBody(t, models.ModifyProfileRequest{})))
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeForbidden, resp.Code)
}

func TestModifyProfile_UnknownSkill(t *testing.T) {
	profile := &mockProfileService{
		modifyProfileFn: func(_ context.Context, _, _ int64, _ models.ModifyProfileRequest) (models.User, error) {
			return models.User{}, service.ErrUnknownSkill
		},
	}
	auth := &mockAuthService{parseTokenFn: parseTokenAs(42)}
	router := newTestHandler(t, auth, profile, nil).Init()

	body := modifyBody(t, models.ModifyProfileRequest{
		JobSkills: []models.JobSkillRequest{{Name: "Cobol"}},
	})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/42", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestModifyProfile_InvalidJSON(t *testing.T) {
	auth := &mockAuthService{parseTokenFn: parseTokenAs(42)}
	router := newTestHandler(t, auth, &mockProfileService{}, nil).Init()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/42", strings.NewReader("{invalid json}"))
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}
