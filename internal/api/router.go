package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/api/handlers"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/api/middleware"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/services"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/config"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/database"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, db *database.DB, cache *services.CacheService, cfg *config.Config, logger *logrus.Logger) {
	// Initialize services
	store := services.NewGormAthleteStore(db)
	insights := services.NewAnthropicInsightGenerator(cfg, logger)
	matchingService := services.NewMatchingService(store, insights, cache, cfg, logger)

	// Initialize handlers
	collegeHandler := handlers.NewCollegeHandler(cache)
	athleteHandler := handlers.NewAthleteHandler(db, cache)
	matchHandler := handlers.NewMatchHandler(matchingService)

	// College catalog endpoints (public)
	group.GET("/colleges", collegeHandler.ListColleges)
	group.GET("/colleges/search", collegeHandler.SearchColleges)
	group.GET("/colleges/:id", collegeHandler.GetCollege)

	// Athlete endpoints (optional authentication)
	athleteGroup := group.Group("/athletes")
	athleteGroup.Use(middleware.OptionalAuth(cfg.JWTSecret))
	{
		athleteGroup.GET("/:id", athleteHandler.GetAthlete)
		athleteGroup.GET("/:id/metrics/latest", athleteHandler.GetLatestMetrics)
		athleteGroup.GET("/:id/preferences", athleteHandler.GetPreferences)
		athleteGroup.POST("/:id/college-matches", matchHandler.GenerateMatches)
	}

	// Write endpoints require authentication
	authGroup := group.Group("/athletes")
	authGroup.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		authGroup.POST("", athleteHandler.CreateAthlete)
		authGroup.POST("/:id/metrics", athleteHandler.AddMetrics)
		authGroup.PUT("/:id/preferences", athleteHandler.UpdatePreferences)
	}
}
