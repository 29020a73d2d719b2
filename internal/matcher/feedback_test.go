package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
)

func TestGenerateFeedback_Deterministic(t *testing.T) {
	first := GenerateFeedback(qbAthlete(), qbMetrics(), catalog.DivisionD1)
	second := GenerateFeedback(qbAthlete(), qbMetrics(), catalog.DivisionD1)
	assert.Equal(t, first, second)
}

func TestGenerateFeedback_EmptyProfilePromptsAcademics(t *testing.T) {
	feedback := GenerateFeedback(&models.Athlete{}, nil, catalog.DivisionJUCO)

	assert.Contains(t, feedback, "Raising your GPA is the fastest way to widen your recruiting options. Many programs screen on academics before they watch film.")
	assert.Contains(t, feedback, "Take the ACT or SAT soon. Verified test scores unlock academic money at most schools.")
}

func TestGenerateFeedback_D1WithLowGPA(t *testing.T) {
	a := &models.Athlete{Position: "Running Back (RB)", GPA: floatPtr(2.8)}
	feedback := GenerateFeedback(a, nil, catalog.DivisionD1)
	assert.Contains(t, feedback, "Top-tier programs expect stronger academics. Pushing your GPA above 3.0 protects your D1 options.")
}

func TestGenerateFeedback_PositionSpecificAdvice(t *testing.T) {
	qb := GenerateFeedback(qbAthlete(), qbMetrics(), catalog.DivisionD1)
	assert.Contains(t, qb, "Work on footwork and release quickness. QB evaluations weigh mechanics as heavily as arm strength.")

	lb := GenerateFeedback(&models.Athlete{Position: "Linebacker (LB)"}, nil, catalog.DivisionD3)
	assert.Contains(t, lb, "Train sideline-to-sideline speed alongside shed strength. Coaches want range at linebacker.")
}

func TestGenerateFeedback_AlwaysEndsWithOutreachAdvice(t *testing.T) {
	feedback := GenerateFeedback(&models.Athlete{}, nil, catalog.DivisionD2)
	assert.GreaterOrEqual(t, len(feedback), 4)
	assert.Equal(t, "Reach out to position coaches directly. Proactive athletes get evaluated first.", feedback[len(feedback)-1])
}
