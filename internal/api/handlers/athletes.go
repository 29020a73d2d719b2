package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/services"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/database"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/utils"
)

type AthleteHandler struct {
	db    *database.DB
	cache *services.CacheService
}

func NewAthleteHandler(db *database.DB, cache *services.CacheService) *AthleteHandler {
	return &AthleteHandler{
		db:    db,
		cache: cache,
	}
}

func parseAthleteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid athlete ID", err.Error())
		return 0, false
	}
	return uint(id), true
}

// GetAthlete returns a single athlete profile
// GET /api/v1/athletes/:id
func (h *AthleteHandler) GetAthlete(c *gin.Context) {
	athleteID, ok := parseAthleteID(c)
	if !ok {
		return
	}

	ctx := context.Background()
	cacheKey := services.AthleteCacheKey(athleteID)
	var athlete models.Athlete
	if err := h.cache.Get(ctx, cacheKey, &athlete); err == nil {
		utils.SendSuccess(c, athlete)
		return
	}

	found, err := models.GetAthleteByID(h.db, athleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendNotFound(c, "Athlete not found")
			return
		}
		utils.SendInternalError(c, "Failed to fetch athlete")
		return
	}

	h.cache.SetWithRetry(ctx, cacheKey, found, 5*time.Minute, 3)
	utils.SendSuccess(c, found)
}

// CreateAthlete registers a new athlete profile
// POST /api/v1/athletes
func (h *AthleteHandler) CreateAthlete(c *gin.Context) {
	var athlete models.Athlete
	if err := c.ShouldBindJSON(&athlete); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if athlete.FirstName == "" || athlete.LastName == "" {
		utils.SendValidationError(c, "Missing required fields", "first_name and last_name are required")
		return
	}
	if athlete.FinancialAidImportance != nil {
		v := *athlete.FinancialAidImportance
		if v < 0 || v > 10 {
			utils.SendValidationError(c, "Invalid financial aid importance", "financial_aid_importance must be between 0 and 10")
			return
		}
	}

	athlete.ID = 0
	if err := h.db.Create(&athlete).Error; err != nil {
		utils.SendInternalError(c, "Failed to create athlete")
		return
	}
	utils.SendSuccess(c, athlete)
}

// GetLatestMetrics returns the most recent combine metrics for an athlete
// GET /api/v1/athletes/:id/metrics/latest
func (h *AthleteHandler) GetLatestMetrics(c *gin.Context) {
	athleteID, ok := parseAthleteID(c)
	if !ok {
		return
	}

	metrics, err := models.GetLatestMetrics(h.db, athleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendNotFound(c, "No combine metrics recorded for this athlete")
			return
		}
		utils.SendInternalError(c, "Failed to fetch metrics")
		return
	}
	utils.SendSuccess(c, metrics)
}

// AddMetrics records a new set of combine metrics
// POST /api/v1/athletes/:id/metrics
func (h *AthleteHandler) AddMetrics(c *gin.Context) {
	athleteID, ok := parseAthleteID(c)
	if !ok {
		return
	}

	if _, err := models.GetAthleteByID(h.db, athleteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendNotFound(c, "Athlete not found")
			return
		}
		utils.SendInternalError(c, "Failed to fetch athlete")
		return
	}

	var metrics models.CombineMetrics
	if err := c.ShouldBindJSON(&metrics); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	metrics.ID = 0
	metrics.AthleteID = athleteID
	if metrics.RecordedAt.IsZero() {
		metrics.RecordedAt = time.Now().UTC()
	}
	if err := h.db.Create(&metrics).Error; err != nil {
		utils.SendInternalError(c, "Failed to record metrics")
		return
	}
	utils.SendSuccess(c, metrics)
}

// GetPreferences returns the athlete's stored recruiting preferences
// GET /api/v1/athletes/:id/preferences
func (h *AthleteHandler) GetPreferences(c *gin.Context) {
	athleteID, ok := parseAthleteID(c)
	if !ok {
		return
	}

	ctx := context.Background()
	cacheKey := services.PreferencesCacheKey(athleteID)
	var prefs models.RecruitingPreferences
	if err := h.cache.Get(ctx, cacheKey, &prefs); err == nil {
		utils.SendSuccess(c, prefs)
		return
	}

	found, err := models.GetRecruitingPreferences(h.db, athleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendNotFound(c, "No recruiting preferences saved for this athlete")
			return
		}
		utils.SendInternalError(c, "Failed to fetch preferences")
		return
	}

	h.cache.SetWithRetry(ctx, cacheKey, found, 5*time.Minute, 3)
	utils.SendSuccess(c, found)
}

// UpdatePreferences creates or replaces the athlete's recruiting preferences
// PUT /api/v1/athletes/:id/preferences
func (h *AthleteHandler) UpdatePreferences(c *gin.Context) {
	athleteID, ok := parseAthleteID(c)
	if !ok {
		return
	}

	if _, err := models.GetAthleteByID(h.db, athleteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendNotFound(c, "Athlete not found")
			return
		}
		utils.SendInternalError(c, "Failed to fetch athlete")
		return
	}

	var prefs models.RecruitingPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if prefs.PreferredDivision != "" {
		if _, valid := catalog.ParseDivision(prefs.PreferredDivision); !valid {
			utils.SendValidationError(c, "Invalid preferred division", "Division must be one of: D1, D2, D3, NAIA, JUCO")
			return
		}
	}

	prefs.AthleteID = athleteID
	if err := models.UpsertRecruitingPreferences(h.db, &prefs); err != nil {
		utils.SendInternalError(c, "Failed to save preferences")
		return
	}

	h.cache.Delete(context.Background(), services.PreferencesCacheKey(athleteID))
	utils.SendSuccess(c, prefs)
}
