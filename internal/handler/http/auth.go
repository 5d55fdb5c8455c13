package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/internal/service"
	"github.com/jobdori/profile-api/internal/utils"
	"github.com/jobdori/profile-api/models"
)

// refreshTokenCookie is the name of the HttpOnly cookie carrying the refresh
// token.
const refreshTokenCookie = "refreshToken"

// login handles POST /api/v1/adm/login.
//
// On success it answers with HTTP 200 and:
//   - the access token in the "Authorization" response header (raw compact
//     form, no "Bearer " prefix — clients add the scheme themselves when
//     sending it back),
//   - the refresh token in an HttpOnly "refreshToken" cookie that expires
//     together with the token,
//   - the success envelope carrying the authenticated user's profile.
//
// Failed credentials answer with HTTP 401 and an opaque failure envelope:
// an unknown email and a wrong password are indistinguishable.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var loginRequest models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Fail(http.StatusBadRequest, "invalid request body"), http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, loginRequest); err != nil {
		log.Warn().Err(err).Msg("login request rejected by validation")
		utils.WriteJSON(w, models.Fail(http.StatusBadRequest, err.Error()), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, loginRequest.Email, loginRequest.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Err(err).Msg("invalid login data provided")
			utils.WriteJSON(w, models.Fail(http.StatusBadRequest, "email and password are required"), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Err(err).Msg("login rejected")
			utils.WriteJSON(w, models.Fail(http.StatusUnauthorized, "invalid credentials"), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.Fail(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	tokenPair, err := h.services.AuthService.CreateTokenPair(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token pair failed")
		utils.WriteJSON(w, models.Fail(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", tokenPair.AccessToken.SignedString)
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    tokenPair.RefreshToken.SignedString,
		Path:     "/",
		Expires:  tokenPair.RefreshToken.ExpiresAt.Time,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	utils.WriteJSON(w, models.OK(foundUser), http.StatusOK)
}

// logout handles DELETE /api/v1/adm/logout. It clears the refresh token
// cookie; the access token simply ages out.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		log.Info().Int64("user_id", userID).Msg("user logged out")
	}

	utils.WriteJSON(w, models.OK(nil), http.StatusOK)
}

// ping handles GET /ping, the liveness probe.
func (h *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
