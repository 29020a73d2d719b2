package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func qbAthlete() *models.Athlete {
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

func qbMetrics() *models.CombineMetrics {
	return &models.CombineMetrics{
		AthleteID: 1,
		FortyYard: floatPtr(4.6),
	}
}

func TestAcademicStrength_EmptyProfileScoresFifty(t *testing.T) {
	assert.Equal(t, 50, AcademicStrength(&models.Athlete{}))
}

func TestAcademicStrength_StrongProfileClampsAtHundred(t *testing.T) {
	// 50 + 35 (GPA 3.9) + 26 (ACT 30) exceeds the cap
	assert.Equal(t, 100, AcademicStrength(qbAthlete()))
}

func TestAcademicStrength_BestOfACTAndSAT(t *testing.T) {
	a := &models.Athlete{ACTScore: intPtr(21), SATScore: intPtr(1420)}
	// SAT tier (30) beats ACT tier (12)
	assert.Equal(t, 80, AcademicStrength(a))
}

func TestAthleticStrength_NoMetricsScoresFifty(t *testing.T) {
	a := &models.Athlete{Position: "Wide Receiver (WR)"}
	assert.Equal(t, 50, AthleticStrength(a, nil))
	assert.Equal(t, 50, AthleticStrength(a, &models.CombineMetrics{}))
}

func TestAthleticStrength_QuarterbackProfile(t *testing.T) {
	// forty 4.6 (+10) and height 75 (+10) on the QB weights
	assert.Equal(t, 70, AthleticStrength(qbAthlete(), qbMetrics()))
}

func TestAthleticStrength_SkillSpeedProfile(t *testing.T) {
	a := &models.Athlete{Position: "Running Back (RB)"}
	m := &models.CombineMetrics{
		FortyYard:    floatPtr(4.38),
		ShuttleTime:  floatPtr(4.05),
		VerticalJump: floatPtr(37),
		BroadJump:    floatPtr(122),
	}
	// 20 + 10 + 10 + 5 on top of the base
	assert.Equal(t, 95, AthleticStrength(a, m))
}

func TestAthleticStrength_LineProfile(t *testing.T) {
	a := &models.Athlete{Position: "Offensive Line (OL)", WeightPounds: floatPtr(290)}
	m := &models.CombineMetrics{
		BenchPressMax: floatPtr(320),
		SquatMax:      floatPtr(455),
		FortyYard:     floatPtr(5.2),
	}
	// 20 + 10 + 10 + 5 on top of the base
	assert.Equal(t, 95, AthleticStrength(a, m))
}

func TestAthleticStrength_AlwaysInRange(t *testing.T) {
	athletes := []*models.Athlete{
		{},
		qbAthlete(),
		{Position: "Linebacker (LB)", WeightPounds: floatPtr(235)},
		{Position: "Kicker (K)"},
	}
	metrics := []*models.CombineMetrics{
		nil,
		{},
		qbMetrics(),
		{
			FortyYard:     floatPtr(4.3),
			ShuttleTime:   floatPtr(3.9),
			VerticalJump:  floatPtr(40),
			BroadJump:     floatPtr(130),
			BenchPressMax: floatPtr(400),
			SquatMax:      floatPtr(500),
		},
	}
	for _, a := range athletes {
		for _, m := range metrics {
			score := AthleticStrength(a, m)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestPositionRanking_Bands(t *testing.T) {
	a := &models.Athlete{Position: "Running Back (RB)"}
	elite := &models.CombineMetrics{
		FortyYard:    floatPtr(4.35),
		ShuttleTime:  floatPtr(4.0),
		VerticalJump: floatPtr(38),
		BroadJump:    floatPtr(125),
	}
	assert.Equal(t, "Top 1% - national elite prospect", PositionRanking(a, elite))
	assert.Equal(t, "Developing prospect", PositionRanking(&models.Athlete{}, nil))
	assert.Equal(t, "Top 30% - scholarship potential", PositionRanking(qbAthlete(), qbMetrics()))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-12.4))
	assert.Equal(t, 0, clampScore(0))
	assert.Equal(t, 50, clampScore(50.4))
	assert.Equal(t, 51, clampScore(50.5))
	assert.Equal(t, 100, clampScore(117))
}
