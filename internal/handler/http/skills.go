package http

import (
	"net/http"

	"github.com/jobdori/profile-api/internal/logger"
	"github.com/jobdori/profile-api/internal/utils"
	"github.com/jobdori/profile-api/models"
)

// getJobSkills handles GET /api/v1/skills. It returns the full skill catalog
// so that clients can offer a picker instead of free-form input.
func (h *Handler) getJobSkills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	jobSkills, err := h.services.JobSkillService.GetAllJobSkills(ctx)
	if err != nil {
		log.Err(err).Msg("skill catalog retrieval failed")
		utils.WriteJSON(w, models.Fail(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.OK(jobSkills), http.StatusOK)
}
