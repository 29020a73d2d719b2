package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/matcher"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/config"
)

const topInsightMatches = 5

// MatchingService composes the pure scoring engine with storage, the insight
// generator and the cache. Scoring is recomputed on every request; match
// results are never persisted or cached.
type MatchingService struct {
	store    AthleteStore
	insights InsightGenerator
	cache    *CacheService
	config   *config.Config
	logger   *logrus.Logger
}

func NewMatchingService(store AthleteStore, insights InsightGenerator, cache *CacheService, cfg *config.Config, logger *logrus.Logger) *MatchingService {
	return &MatchingService{
		store:    store,
		insights: insights,
		cache:    cache,
		config:   cfg,
		logger:   logger,
	}
}

// GenerateCollegeMatches runs the full matching pipeline for one athlete.
// Profile, metrics and preferences are fetched sequentially (later steps
// depend on earlier results); the scoring itself is a single pass over the
// in-memory catalog.
func (s *MatchingService) GenerateCollegeMatches(ctx context.Context, athleteID uint, opts matcher.MatchOptions) (*matcher.MatchResult, error) {
	athlete, err := s.store.GetAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	metrics, err := s.store.GetLatestMetrics(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.store.GetPreferences(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	// The stored profile value is the default financial weighting; an
	// explicit request option overrides it.
	if opts.FinancialAidImportance == nil {
		opts.FinancialAidImportance = athlete.FinancialAidImportance
	}

	recommendation := matcher.RecommendDivision(athlete, metrics)
	schools := matcher.MatchColleges(athlete, metrics, prefs, opts)

	result := &matcher.MatchResult{
		Recommendation:   recommendation,
		Schools:          schools,
		Feedback:         matcher.GenerateFeedback(athlete, metrics, recommendation.Division),
		AcademicStrength: matcher.AcademicStrength(athlete),
		AthleticStrength: matcher.AthleticStrength(athlete, metrics),
		PositionRanking:  matcher.PositionRanking(athlete, metrics),
	}

	if opts.UseAI {
		result.Insights = s.generateInsights(ctx, athlete, metrics, schools)
	}

	return result, nil
}

// generateInsights enriches the top matches with narrative text. Failure of
// the external generator is non-fatal: the athlete always gets a MatchResult,
// degraded to static fallback insights.
func (s *MatchingService) generateInsights(ctx context.Context, athlete *models.Athlete, metrics *models.CombineMetrics, schools []matcher.MatchedSchool) []string {
	top := schools
	if len(top) > topInsightMatches {
		top = top[:topInsightMatches]
	}

	cacheKey := InsightsCacheKey(athlete.ID, insightFingerprint(top))
	if s.cache != nil {
		var cached []string
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
			return cached
		}
	}

	timeout := s.config.AITimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	aiCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	insights, err := s.insights.GenerateInsights(aiCtx, athlete, metrics, top)
	if err != nil {
		s.logger.WithError(err).WithField("athlete_id", athlete.ID).
			Warn("Insight generation failed, using fallback text")
		return FallbackInsights()
	}

	if s.cache != nil {
		expiration := time.Duration(s.config.AICacheExpiration) * time.Second
		if expiration <= 0 {
			expiration = time.Hour
		}
		if err := s.cache.Set(ctx, cacheKey, insights, expiration); err != nil {
			s.logger.WithError(err).Debug("Failed to cache insights")
		}
	}

	return insights
}

// insightFingerprint keys the insight cache by the ranked top schools, so a
// changed ranking always regenerates the narrative.
func insightFingerprint(top []matcher.MatchedSchool) string {
	parts := make([]string, 0, len(top))
	for _, school := range top {
		parts = append(parts, fmt.Sprintf("%d:%d", school.ID, school.OverallMatch))
	}
	return strings.Join(parts, ",")
}
