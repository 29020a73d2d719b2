package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/services"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/utils"
)

type CollegeHandler struct {
	cache *services.CacheService
}

func NewCollegeHandler(cache *services.CacheService) *CollegeHandler {
	return &CollegeHandler{
		cache: cache,
	}
}

// ListColleges returns the full catalog, optionally filtered by division
// GET /api/v1/colleges?division=D1
func (h *CollegeHandler) ListColleges(c *gin.Context) {
	divisionStr := c.Query("division")
	if divisionStr == "" {
		utils.SendSuccess(c, catalog.All())
		return
	}

	division, ok := catalog.ParseDivision(divisionStr)
	if !ok {
		utils.SendValidationError(c, "Invalid division", "Division must be one of: D1, D2, D3, NAIA, JUCO")
		return
	}
	utils.SendSuccess(c, catalog.ByDivision(division))
}

// GetCollege returns a single catalog entry by id
// GET /api/v1/colleges/:id
func (h *CollegeHandler) GetCollege(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid college ID", err.Error())
		return
	}

	college, ok := catalog.ByID(uint(id))
	if !ok {
		utils.SendNotFound(c, "College not found")
		return
	}
	utils.SendSuccess(c, college)
}

// SearchColleges performs a substring search over name, region, state, city
// GET /api/v1/colleges/search?q=texas
func (h *CollegeHandler) SearchColleges(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.SendValidationError(c, "Search query required", "Please provide a search query using the 'q' parameter")
		return
	}
	if len(query) < 2 {
		utils.SendValidationError(c, "Query too short", "Search query must be at least 2 characters")
		return
	}

	ctx := context.Background()
	cacheKey := services.CollegeSearchCacheKey(query)
	var colleges []catalog.College
	if err := h.cache.Get(ctx, cacheKey, &colleges); err == nil {
		utils.SendSuccess(c, colleges)
		return
	}

	colleges = catalog.Search(query)
	h.cache.SetWithRetry(ctx, cacheKey, colleges, 10*time.Minute, 3)
	utils.SendSuccess(c, colleges)
}
