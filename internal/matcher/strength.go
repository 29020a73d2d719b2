package matcher

import (
	"math"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
)

const baseScore = 50.0

// clampScore rounds to the nearest integer and clamps into [0,100].
func clampScore(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

func floatVal(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func intVal(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// gpaBonus is the tiered academic bonus shared by the strength estimator.
func gpaBonus(gpa float64) int {
	switch {
	case gpa >= 4.0:
		return 40
	case gpa >= 3.7:
		return 35
	case gpa >= 3.5:
		return 30
	case gpa >= 3.3:
		return 25
	case gpa >= 3.0:
		return 20
	case gpa >= 2.5:
		return 10
	default:
		return 0
	}
}

// testScoreBonus maps standardized tests onto a 0-30 scale comparable to the
// GPA bonus. The better of ACT and SAT counts; a missing score contributes 0.
func testScoreBonus(act, sat *int) int {
	actBonus := 0
	if v, ok := intVal(act); ok {
		switch {
		case v >= 32:
			actBonus = 30
		case v >= 30:
			actBonus = 26
		case v >= 28:
			actBonus = 22
		case v >= 26:
			actBonus = 18
		case v >= 24:
			actBonus = 15
		case v >= 21:
			actBonus = 12
		case v >= 18:
			actBonus = 10
		}
	}
	satBonus := 0
	if v, ok := intVal(sat); ok {
		switch {
		case v >= 1420:
			satBonus = 30
		case v >= 1350:
			satBonus = 26
		case v >= 1280:
			satBonus = 22
		case v >= 1200:
			satBonus = 18
		case v >= 1120:
			satBonus = 15
		case v >= 1010:
			satBonus = 12
		case v >= 900:
			satBonus = 10
		}
	}
	if satBonus > actBonus {
		return satBonus
	}
	return actBonus
}

// AcademicStrength scores the athlete's academic profile on a 0-100 scale.
// Missing GPA or test scores contribute nothing; a fully empty academic
// profile scores exactly 50.
func AcademicStrength(a *models.Athlete) int {
	score := baseScore
	if gpa, ok := floatVal(a.GPA); ok {
		score += float64(gpaBonus(gpa))
	}
	score += float64(testScoreBonus(a.ACTScore, a.SATScore))
	return clampScore(score)
}

// athleticBonus sums the position-family metric bonuses. Each family reads
// the measurements that matter for that role; absent measurements are
// skipped.
func athleticBonus(family PositionFamily, a *models.Athlete, m *models.CombineMetrics) float64 {
	if m == nil {
		m = &models.CombineMetrics{}
	}
	bonus := 0.0

	switch family {
	case FamilyQuarterback:
		if v, ok := floatVal(m.FortyYard); ok {
			switch {
			case v <= 4.5:
				bonus += 15
			case v <= 4.7:
				bonus += 10
			case v <= 4.9:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.VerticalJump); ok {
			switch {
			case v >= 34:
				bonus += 10
			case v >= 30:
				bonus += 5
			}
		}
		if v, ok := floatVal(a.HeightInches); ok {
			switch {
			case v >= 75:
				bonus += 10
			case v >= 73:
				bonus += 5
			}
		}

	case FamilySkillSpeed:
		if v, ok := floatVal(m.FortyYard); ok {
			switch {
			case v <= 4.4:
				bonus += 20
			case v <= 4.5:
				bonus += 15
			case v <= 4.6:
				bonus += 10
			case v <= 4.8:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.ShuttleTime); ok {
			switch {
			case v <= 4.1:
				bonus += 10
			case v <= 4.3:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.VerticalJump); ok {
			switch {
			case v >= 36:
				bonus += 10
			case v >= 32:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.BroadJump); ok && v >= 120 {
			bonus += 5
		}

	case FamilyLine:
		if v, ok := floatVal(m.BenchPressMax); ok {
			switch {
			case v >= 315:
				bonus += 20
			case v >= 275:
				bonus += 15
			case v >= 225:
				bonus += 10
			case v >= 185:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.SquatMax); ok {
			switch {
			case v >= 450:
				bonus += 10
			case v >= 365:
				bonus += 5
			}
		}
		if v, ok := floatVal(a.WeightPounds); ok {
			switch {
			case v >= 280:
				bonus += 10
			case v >= 250:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.FortyYard); ok {
			switch {
			case v <= 5.0:
				bonus += 10
			case v <= 5.3:
				bonus += 5
			}
		}

	case FamilyLinebacker:
		if v, ok := floatVal(m.FortyYard); ok {
			switch {
			case v <= 4.6:
				bonus += 15
			case v <= 4.8:
				bonus += 10
			case v <= 5.0:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.BenchPressMax); ok {
			switch {
			case v >= 275:
				bonus += 10
			case v >= 225:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.ShuttleTime); ok {
			switch {
			case v <= 4.3:
				bonus += 10
			case v <= 4.5:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.VerticalJump); ok && v >= 32 {
			bonus += 5
		}

	default:
		if v, ok := floatVal(m.FortyYard); ok {
			switch {
			case v <= 4.6:
				bonus += 10
			case v <= 4.9:
				bonus += 5
			}
		}
		if v, ok := floatVal(m.BenchPressMax); ok && v >= 225 {
			bonus += 5
		}
		if v, ok := floatVal(m.VerticalJump); ok && v >= 30 {
			bonus += 5
		}
	}

	return bonus
}

// AthleticStrength scores the athlete's measurables on a 0-100 scale using
// position-family specific thresholds. An athlete with no recorded metrics
// scores exactly 50.
func AthleticStrength(a *models.Athlete, m *models.CombineMetrics) int {
	family := ClassifyPosition(a.Position)
	return clampScore(baseScore + athleticBonus(family, a, m))
}

// PositionRanking maps athletic strength through a fixed ladder of labeled
// percentile bands.
func PositionRanking(a *models.Athlete, m *models.CombineMetrics) string {
	score := AthleticStrength(a, m)
	switch {
	case score >= 90:
		return "Top 1% - national elite prospect"
	case score >= 85:
		return "Top 5% - high-major recruit"
	case score >= 80:
		return "Top 10% - Division I caliber"
	case score >= 75:
		return "Top 20% - mid-major recruit"
	case score >= 70:
		return "Top 30% - scholarship potential"
	case score >= 65:
		return "Top 40% - solid college prospect"
	case score >= 55:
		return "Top 50% - program developmental fit"
	default:
		return "Developing prospect"
	}
}
