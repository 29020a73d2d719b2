package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/matcher"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/services"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/utils"
)

type MatchHandler struct {
	matching *services.MatchingService
}

func NewMatchHandler(matching *services.MatchingService) *MatchHandler {
	return &MatchHandler{
		matching: matching,
	}
}

// GenerateMatches runs the full matching pipeline for one athlete
// POST /api/v1/athletes/:id/college-matches
func (h *MatchHandler) GenerateMatches(c *gin.Context) {
	athleteID, ok := parseAthleteID(c)
	if !ok {
		return
	}

	var opts matcher.MatchOptions
	if err := c.ShouldBindJSON(&opts); err != nil && !errors.Is(err, io.EOF) {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if !validateMatchOptions(c, opts) {
		return
	}

	result, err := h.matching.GenerateCollegeMatches(c.Request.Context(), athleteID, opts)
	if err != nil {
		if errors.Is(err, services.ErrAthleteNotFound) {
			utils.SendNotFound(c, "Athlete not found")
			return
		}
		utils.SendInternalError(c, "Failed to generate college matches")
		return
	}

	utils.SendSuccess(c, result)
}

// validateMatchOptions rejects out-of-range filter values before they reach
// the scoring engine. Returns false after writing the error response.
func validateMatchOptions(c *gin.Context, opts matcher.MatchOptions) bool {
	if opts.FinancialAidImportance != nil {
		v := *opts.FinancialAidImportance
		if v < 0 || v > 10 {
			utils.SendValidationError(c, "Invalid financial aid importance", "financialAidImportance must be between 0 and 10")
			return false
		}
	}
	if opts.MaxDistance != nil && *opts.MaxDistance < 0 {
		utils.SendValidationError(c, "Invalid max distance", "maxDistance must not be negative")
		return false
	}
	if opts.MinEnrollment != nil && *opts.MinEnrollment < 0 {
		utils.SendValidationError(c, "Invalid enrollment bound", "minEnrollment must not be negative")
		return false
	}
	if opts.MaxEnrollment != nil && *opts.MaxEnrollment < 0 {
		utils.SendValidationError(c, "Invalid enrollment bound", "maxEnrollment must not be negative")
		return false
	}
	if opts.MinEnrollment != nil && opts.MaxEnrollment != nil && *opts.MinEnrollment > *opts.MaxEnrollment {
		utils.SendValidationError(c, "Invalid enrollment bounds", "minEnrollment must not exceed maxEnrollment")
		return false
	}
	return true
}
