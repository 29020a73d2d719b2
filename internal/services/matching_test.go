package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/matcher"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/config"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

type stubStore struct {
	athlete *models.Athlete
	metrics *models.CombineMetrics
	prefs   *models.RecruitingPreferences
}

func (s *stubStore) GetAthlete(ctx context.Context, athleteID uint) (*models.Athlete, error) {
	if s.athlete == nil {
		return nil, ErrAthleteNotFound
	}
	return s.athlete, nil
}

func (s *stubStore) GetLatestMetrics(ctx context.Context, athleteID uint) (*models.CombineMetrics, error) {
	return s.metrics, nil
}

func (s *stubStore) GetPreferences(ctx context.Context, athleteID uint) (*models.RecruitingPreferences, error) {
	return s.prefs, nil
}

type stubInsightGenerator struct {
	insights []string
	err      error
	gotTop   []matcher.MatchedSchool
	calls    int
}

func (g *stubInsightGenerator) GenerateInsights(ctx context.Context, athlete *models.Athlete, metrics *models.CombineMetrics, topMatches []matcher.MatchedSchool) ([]string, error) {
	g.calls++
	g.gotTop = topMatches
	if g.err != nil {
		return nil, g.err
	}
	return g.insights, nil
}

func testConfig() *config.Config {
	return &config.Config{
		AITimeout:         time.Second,
		AICacheExpiration: 60,
	}
}

func testMatchingService(store AthleteStore, insights InsightGenerator) *MatchingService {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewMatchingService(store, insights, nil, testConfig(), logger)
}

func testAthlete() *models.Athlete {
	return &models.Athlete{
		ID:           1,
		FirstName:    "Marcus",
		LastName:     "Webb",
		Position:     "Quarterback (QB)",
		HeightInches: floatPtr(75),
		GPA:          floatPtr(3.9),
		ACTScore:     intPtr(30),
	}
}

func TestGenerateCollegeMatches_FullResult(t *testing.T) {
	store := &stubStore{
		athlete: testAthlete(),
		metrics: &models.CombineMetrics{AthleteID: 1, FortyYard: floatPtr(4.6)},
	}
	svc := testMatchingService(store, &stubInsightGenerator{})

	result, err := svc.GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, catalog.DivisionD1, result.Recommendation.Division)
	assert.NotEmpty(t, result.Schools)
	assert.NotEmpty(t, result.Feedback)
	assert.Equal(t, 100, result.AcademicStrength)
	assert.Equal(t, 70, result.AthleticStrength)
	assert.NotEmpty(t, result.PositionRanking)
	assert.Empty(t, result.Insights)
}

func TestGenerateCollegeMatches_AthleteNotFound(t *testing.T) {
	svc := testMatchingService(&stubStore{}, &stubInsightGenerator{})

	result, err := svc.GenerateCollegeMatches(context.Background(), 42, matcher.MatchOptions{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAthleteNotFound)
}

func TestGenerateCollegeMatches_NoMetricsStillMatches(t *testing.T) {
	store := &stubStore{athlete: testAthlete()}
	svc := testMatchingService(store, &stubInsightGenerator{})

	result, err := svc.GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Schools)
	assert.Equal(t, 60, result.AthleticStrength) // height bonus only
}

func TestGenerateCollegeMatches_AIInsightsAttached(t *testing.T) {
	store := &stubStore{athlete: testAthlete()}
	gen := &stubInsightGenerator{insights: []string{"custom insight"}}
	svc := testMatchingService(store, gen)

	result, err := svc.GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{UseAI: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"custom insight"}, result.Insights)
	assert.Equal(t, 1, gen.calls)
	assert.LessOrEqual(t, len(gen.gotTop), topInsightMatches)
	assert.NotEmpty(t, gen.gotTop)
}

func TestGenerateCollegeMatches_InsightFailureFallsBack(t *testing.T) {
	store := &stubStore{athlete: testAthlete()}
	gen := &stubInsightGenerator{err: errors.New("upstream down")}
	svc := testMatchingService(store, gen)

	result, err := svc.GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{UseAI: true})
	require.NoError(t, err)
	assert.Equal(t, FallbackInsights(), result.Insights)
}

func TestGenerateCollegeMatches_PreferencesInfluenceRanking(t *testing.T) {
	base := &stubStore{athlete: testAthlete()}
	withPrefs := &stubStore{
		athlete: testAthlete(),
		prefs: &models.RecruitingPreferences{
			AthleteID:         1,
			SchoolsOfInterest: []string{"Grand Valley State"},
		},
	}

	baseline, err := testMatchingService(base, &stubInsightGenerator{}).
		GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{})
	require.NoError(t, err)
	boosted, err := testMatchingService(withPrefs, &stubInsightGenerator{}).
		GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{})
	require.NoError(t, err)

	assert.Greater(t, overallFor(t, boosted.Schools, "Grand Valley State University"),
		overallFor(t, baseline.Schools, "Grand Valley State University"))
}

func overallFor(t *testing.T, schools []matcher.MatchedSchool, name string) int {
	t.Helper()
	for _, s := range schools {
		if s.Name == name {
			return s.OverallMatch
		}
	}
	t.Fatalf("school %q not in results", name)
	return 0
}

func TestGenerateCollegeMatches_StoredFinancialImportanceIsDefault(t *testing.T) {
	plain := testAthlete()
	sensitive := testAthlete()
	sensitive.FinancialAidImportance = intPtr(10)

	baseline, err := testMatchingService(&stubStore{athlete: plain}, &stubInsightGenerator{}).
		GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{})
	require.NoError(t, err)
	stored, err := testMatchingService(&stubStore{athlete: sensitive}, &stubInsightGenerator{}).
		GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{})
	require.NoError(t, err)
	explicit, err := testMatchingService(&stubStore{athlete: plain}, &stubInsightGenerator{}).
		GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{FinancialAidImportance: intPtr(10)})
	require.NoError(t, err)

	// The stored value flows through exactly like the request option.
	assert.Equal(t, explicit.Schools, stored.Schools)

	// And it moves the ranking: a cheap public JUCO gains weight when
	// finances matter more.
	assert.NotEqual(t, overallFor(t, baseline.Schools, "Garden City Community College"),
		overallFor(t, stored.Schools, "Garden City Community College"))
}

func TestGenerateCollegeMatches_ExplicitImportanceOverridesStored(t *testing.T) {
	sensitive := testAthlete()
	sensitive.FinancialAidImportance = intPtr(10)
	plain := testAthlete()

	overridden, err := testMatchingService(&stubStore{athlete: sensitive}, &stubInsightGenerator{}).
		GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{FinancialAidImportance: intPtr(0)})
	require.NoError(t, err)
	reference, err := testMatchingService(&stubStore{athlete: plain}, &stubInsightGenerator{}).
		GenerateCollegeMatches(context.Background(), 1, matcher.MatchOptions{FinancialAidImportance: intPtr(0)})
	require.NoError(t, err)

	assert.Equal(t, reference.Schools, overridden.Schools)
}

func TestInsightFingerprint_TracksRanking(t *testing.T) {
	top := []matcher.MatchedSchool{
		{College: catalog.College{ID: 5}, OverallMatch: 88},
		{College: catalog.College{ID: 1}, OverallMatch: 84},
	}
	assert.Equal(t, "5:88,1:84", insightFingerprint(top))
	assert.Equal(t, "", insightFingerprint(nil))
}
