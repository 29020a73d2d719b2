package matcher

import (
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
)

// GenerateFeedback produces ordered improvement suggestions for the athlete
// given the recommended division. Pure and deterministic: the same inputs
// always yield the same list in the same order.
func GenerateFeedback(a *models.Athlete, m *models.CombineMetrics, division catalog.Division) []string {
	var feedback []string

	switch division {
	case catalog.DivisionD1:
		feedback = append(feedback, "Your measurables already profile as a Division I recruit. Stay consistent and keep your film current.")
	case catalog.DivisionD2:
		feedback = append(feedback, "You project as a strong D2 candidate. A big testing cycle this offseason could push you into the D1 conversation.")
	case catalog.DivisionD3:
		feedback = append(feedback, "D3 and NAIA programs are a realistic target. Lean on your academics and game film to stand out.")
	default:
		feedback = append(feedback, "A JUCO route can be a springboard. Two strong seasons open four-year doors.")
	}

	gpa, hasGPA := floatVal(a.GPA)
	switch {
	case !hasGPA || gpa < 2.5:
		feedback = append(feedback, "Raising your GPA is the fastest way to widen your recruiting options. Many programs screen on academics before they watch film.")
	case gpa < 3.0 && division == catalog.DivisionD1:
		feedback = append(feedback, "Top-tier programs expect stronger academics. Pushing your GPA above 3.0 protects your D1 options.")
	}

	if a.ACTScore == nil && a.SATScore == nil {
		feedback = append(feedback, "Take the ACT or SAT soon. Verified test scores unlock academic money at most schools.")
	}

	switch ClassifyPosition(a.Position) {
	case FamilyQuarterback:
		feedback = append(feedback, "Work on footwork and release quickness. QB evaluations weigh mechanics as heavily as arm strength.")
	case FamilySkillSpeed:
		feedback = append(feedback, "Keep sharpening your change of direction. Shuttle and three-cone times separate skill players on film.")
	case FamilyLine:
		feedback = append(feedback, "Prioritize lower-body strength and first-step quickness. Line evaluations start in the weight room.")
	case FamilyLinebacker:
		feedback = append(feedback, "Train sideline-to-sideline speed alongside shed strength. Coaches want range at linebacker.")
	default:
		feedback = append(feedback, "Tighten your position fundamentals and get verified combine numbers on record.")
	}

	feedback = append(feedback,
		"Build a 3-5 minute highlight film with your best plays in the first 30 seconds.",
		"Reach out to position coaches directly. Proactive athletes get evaluated first.",
	)

	return feedback
}
