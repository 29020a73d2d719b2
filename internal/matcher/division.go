package matcher

import (
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
)

// RecommendDivision maps the athlete's profile and latest metrics to a
// competitive division and a 0-100 confidence score. The bonus weighting is
// intentionally separate from the strength estimators: the question here is
// which tier, not how strong overall.
func RecommendDivision(a *models.Athlete, m *models.CombineMetrics) DivisionRecommendation {
	score := baseScore

	score += divisionPositionBonus(ClassifyPosition(a.Position), a, m)

	if gpa, ok := floatVal(a.GPA); ok {
		switch {
		case gpa >= 3.5:
			score += 10
		case gpa >= 3.0:
			score += 6
		case gpa >= 2.5:
			score += 3
		}
	}

	score += divisionTestBonus(a.ACTScore, a.SATScore)

	// Unverified athletes drop a tier: without academics on record or any
	// combine numbers, the recommendation floors at the two-year route.
	if a.GPA == nil && a.ACTScore == nil && a.SATScore == nil {
		score -= 10
	}
	if !hasAnyMetrics(m) {
		score -= 10
	}

	matchScore := clampScore(score)
	return DivisionRecommendation{
		Division:   bucketDivision(matchScore),
		MatchScore: matchScore,
	}
}

func bucketDivision(matchScore int) catalog.Division {
	switch {
	case matchScore >= 80:
		return catalog.DivisionD1
	case matchScore >= 60:
		return catalog.DivisionD2
	case matchScore >= 40:
		return catalog.DivisionD3
	default:
		return catalog.DivisionJUCO
	}
}

func hasAnyMetrics(m *models.CombineMetrics) bool {
	if m == nil {
		return false
	}
	return m.FortyYard != nil || m.ShuttleTime != nil || m.ThreeCone != nil ||
		m.VerticalJump != nil || m.BroadJump != nil || m.BenchPressMax != nil ||
		m.BenchReps != nil || m.SquatMax != nil || m.PowerClean != nil ||
		m.DeadliftMax != nil
}

func divisionTestBonus(act, sat *int) float64 {
	best := 0.0
	if v, ok := intVal(act); ok {
		switch {
		case v >= 28:
			best = 8
		case v >= 24:
			best = 5
		case v >= 21:
			best = 3
		}
	}
	if v, ok := intVal(sat); ok {
		var b float64
		switch {
		case v >= 1280:
			b = 8
		case v >= 1120:
			b = 5
		case v >= 1010:
			b = 3
		}
		if b > best {
			best = b
		}
	}
	return best
}

func divisionPositionBonus(family PositionFamily, a *models.Athlete, m *models.CombineMetrics) float64 {
	if m == nil {
		m = &models.CombineMetrics{}
	}
	bonus := 0.0

	switch family {
	case FamilyQuarterback:
		if v, ok := floatVal(m.FortyYard); ok {
			switch {
			case v <= 4.5:
				bonus += 20
			case v <= 4.7:
				bonus += 12
			case v <= 4.9:
				bonus += 6
			}
		}
		if v, ok := floatVal(a.HeightInches); ok {
			switch {
			case v >= 76:
				bonus += 8
			case v >= 74:
				bonus += 4
			}
		}
		if v, ok := floatVal(m.VerticalJump); ok && v >= 34 {
			bonus += 6
		}

	case FamilySkillSpeed:
		if v, ok := floatVal(m.FortyYard); ok {
			switch {
			case v <= 4.4:
				bonus += 22
			case v <= 4.5:
				bonus += 16
			case v <= 4.6:
				bonus += 10
			case v <= 4.8:
				bonus += 4
			}
		}
		if v, ok := floatVal(m.ShuttleTime); ok && v <= 4.2 {
			bonus += 6
		}
		if v, ok := floatVal(m.VerticalJump); ok && v >= 34 {
			bonus += 4
		}

	case FamilyLine:
		if v, ok := floatVal(m.BenchPressMax); ok {
			switch {
			case v >= 315:
				bonus += 18
			case v >= 275:
				bonus += 12
			case v >= 225:
				bonus += 6
			}
		}
		if v, ok := floatVal(a.WeightPounds); ok {
			switch {
			case v >= 285:
				bonus += 8
			case v >= 260:
				bonus += 4
			}
		}
		if v, ok := floatVal(m.FortyYard); ok && v <= 5.1 {
			bonus += 6
		}

	case FamilyLinebacker:
		if v, ok := floatVal(m.FortyYard); ok {
			switch {
			case v <= 4.6:
				bonus += 16
			case v <= 4.8:
				bonus += 10
			case v <= 5.0:
				bonus += 4
			}
		}
		if v, ok := floatVal(m.BenchPressMax); ok && v >= 275 {
			bonus += 8
		}
		if v, ok := floatVal(m.ShuttleTime); ok && v <= 4.4 {
			bonus += 4
		}

	default:
		if v, ok := floatVal(m.FortyYard); ok {
			switch {
			case v <= 4.6:
				bonus += 10
			case v <= 4.9:
				bonus += 4
			}
		}
		if v, ok := floatVal(m.BenchPressMax); ok && v >= 225 {
			bonus += 4
		}
	}

	return bonus
}
