package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/internal/service"
	"github.com/jobdori/profile-api/internal/store"
	"github.com/jobdori/profile-api/internal/utils"
	"github.com/jobdori/profile-api/models"
)

// getProfile handles GET /api/v1/users/{id}.
//
// The caller may only read their own profile: asking for any other id
// answers with HTTP 403 and the failure envelope carrying
// [models.CodeForbidden], regardless of whether the target exists.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, targetID, ok := h.profileIDs(w, r)
	if !ok {
		return
	}

	foundUser, err := h.services.ProfileService.GetProfile(ctx, callerID, targetID)
	if err != nil {
		h.writeProfileError(w, r, err, "profile retrieval failed")
		return
	}

	utils.WriteJSON(w, models.OK(foundUser), http.StatusOK)
}

// modifyProfile handles PATCH /api/v1/users/{id}.
//
// Introduction, job and the skill list are updated only when present in the
// body; a submitted skill list fully replaces the stored one, keeping request
// order, and an explicit empty list clears it. The same ownership rule as
// getProfile applies. An unknown skill name rejects the whole request with
// HTTP 400 and nothing is written.
func (h *Handler) modifyProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, targetID, ok := h.profileIDs(w, r)
	if !ok {
		return
	}

	var modifyRequest models.ModifyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&modifyRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Fail(http.StatusBadRequest, "invalid request body"), http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, modifyRequest); err != nil {
		log.Warn().Err(err).Msg("profile modification rejected by validation")
		utils.WriteJSON(w, models.Fail(http.StatusBadRequest, err.Error()), http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.ProfileService.ModifyProfile(ctx, callerID, targetID, modifyRequest)
	if err != nil {
		h.writeProfileError(w, r, err, "profile modification failed")
		return
	}

	utils.WriteJSON(w, models.OK(updatedUser), http.StatusOK)
}

// profileIDs extracts the authenticated caller's id from the request context
// and the target user's id from the {id} path parameter. On failure it writes
// the error response itself and returns ok=false.
func (h *Handler) profileIDs(w http.ResponseWriter, r *http.Request) (callerID, targetID int64, ok bool) {
	log := logger.FromRequest(r)

	callerID, ok = utils.GetUserIDFromContext(r.Context())
	if !ok {
		// only reachable if the route is wired without the auth middleware
		log.Error().Msg("no authenticated user id in request context")
		utils.WriteJSON(w, models.Fail(models.CodeUnauthenticated, "authentication required"), http.StatusUnauthorized)
		return 0, 0, false
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Warn().Err(ErrInvalidUserID).Str("id", chi.URLParam(r, "id")).Send()
		utils.WriteJSON(w, models.Fail(http.StatusBadRequest, ErrInvalidUserID.Error()), http.StatusBadRequest)
		return 0, 0, false
	}

	return callerID, targetID, true
}

// writeProfileError maps profile service errors to the response contract.
func (h *Handler) writeProfileError(w http.ResponseWriter, r *http.Request, err error, context string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrForbidden):
		log.Warn().Err(err).Msg("profile access forbidden")
		utils.WriteJSON(w, models.Fail(models.CodeForbidden, "access denied"), http.StatusForbidden)
	case errors.Is(err, service.ErrUnknownSkill):
		log.Warn().Err(err).Msg("unknown skill in profile modification")
		utils.WriteJSON(w, models.Fail(http.StatusBadRequest, err.Error()), http.StatusBadRequest)
	case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, store.ErrProfileNotUpdated):
		log.Warn().Err(err).Msg("profile owner no longer exists")
		utils.WriteJSON(w, models.Fail(http.StatusNotFound, "user not found"), http.StatusNotFound)
	default:
		log.Err(err).Msg(context)
		utils.WriteJSON(w, models.Fail(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
	}
}
