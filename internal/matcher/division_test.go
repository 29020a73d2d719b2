package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
)

func TestRecommendDivision_QuarterbackProjectsD1(t *testing.T) {
	// forty 4.6 (+12), height 75 (+4), GPA 3.9 (+10), ACT 30 (+8)
	rec := RecommendDivision(qbAthlete(), qbMetrics())
	assert.Equal(t, catalog.DivisionD1, rec.Division)
	assert.Equal(t, 84, rec.MatchScore)
}

func TestRecommendDivision_EmptyProfileFloorsAtJUCO(t *testing.T) {
	rec := RecommendDivision(&models.Athlete{}, nil)
	assert.Equal(t, catalog.DivisionJUCO, rec.Division)
	assert.Equal(t, 30, rec.MatchScore)
}

func TestRecommendDivision_AcademicsOnlyLandsD3(t *testing.T) {
	a := &models.Athlete{GPA: floatPtr(3.6), ACTScore: intPtr(29)}
	// 50 + 10 + 8 - 10 (no metrics)
	rec := RecommendDivision(a, nil)
	assert.Equal(t, catalog.DivisionD3, rec.Division)
	assert.Equal(t, 58, rec.MatchScore)
}

func TestRecommendDivision_MetricsWithoutAcademics(t *testing.T) {
	a := &models.Athlete{Position: "Running Back (RB)"}
	m := &models.CombineMetrics{
		FortyYard:    floatPtr(4.39),
		ShuttleTime:  floatPtr(4.1),
		VerticalJump: floatPtr(35),
	}
	// 50 + 22 + 6 + 4 - 10 (no academics on record)
	rec := RecommendDivision(a, m)
	assert.Equal(t, catalog.DivisionD2, rec.Division)
	assert.Equal(t, 72, rec.MatchScore)
}

func TestBucketDivision_Boundaries(t *testing.T) {
	assert.Equal(t, catalog.DivisionD1, bucketDivision(80))
	assert.Equal(t, catalog.DivisionD2, bucketDivision(79))
	assert.Equal(t, catalog.DivisionD2, bucketDivision(60))
	assert.Equal(t, catalog.DivisionD3, bucketDivision(59))
	assert.Equal(t, catalog.DivisionD3, bucketDivision(40))
	assert.Equal(t, catalog.DivisionJUCO, bucketDivision(39))
	assert.Equal(t, catalog.DivisionJUCO, bucketDivision(0))
}

func TestHasAnyMetrics(t *testing.T) {
	assert.False(t, hasAnyMetrics(nil))
	assert.False(t, hasAnyMetrics(&models.CombineMetrics{}))
	assert.True(t, hasAnyMetrics(&models.CombineMetrics{BenchReps: intPtr(12)}))
}
