package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/internal/service"
	"github.com/jobdori/profile-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn    func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn           func(ctx context.Context, email string, password string) (models.User, error)
	createTokenPairFn func(ctx context.Context, user models.User) (models.TokenPair, error)
	parseTokenFn      func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerUserFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email string, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	return m.createTokenPairFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockProfileService implements service.ProfileService for unit tests.
type mockProfileService struct {
	getProfileFn    func(ctx context.Context, callerID, targetID int64) (models.User, error)
	modifyProfileFn func(ctx context.Context, callerID, targetID int64, request models.ModifyProfileRequest) (models.User, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, callerID, targetID int64) (models.User, error) {
	return m.getProfileFn(ctx, callerID, targetID)
}

func (m *mockProfileService) ModifyProfile(ctx context.Context, callerID, targetID int64, request models.ModifyProfileRequest) (models.User, error) {
	return m.modifyProfileFn(ctx, callerID, targetID, request)
}

// mockJobSkillService implements service.JobSkillService for unit tests.
type mockJobSkillService struct {
	getAllJobSkillsFn func(ctx context.Context) ([]models.JobSkill, error)
}

func (m *mockJobSkillService) GetAllJobSkills(ctx context.Context) ([]models.JobSkill, error) {
	return m.getAllJobSkillsFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are allowed for services the test never reaches.
func newTestHandler(t *testing.T, auth service.AuthService, profile service.ProfileService, jobSkills service.JobSkillService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:     auth,
		ProfileService:  profile,
		JobSkillService: jobSkills,
	}
	return NewHandler(svcs, logger.Nop())
}

// parseTokenAs returns a ParseToken implementation that accepts any token
// string and authenticates it as the given user id.
func parseTokenAs(userID int64) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: userID}, nil
	}
}

// decodeResponse unmarshals the recorded body into the response envelope.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func strPtr(s string) *string {
	return &s
}
