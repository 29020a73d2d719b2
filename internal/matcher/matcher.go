package matcher

import (
	"sort"
	"strings"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
)

// Soft filters damp scores multiplicatively but never disqualify; hard
// filters zero the overall match. The asymmetry is deliberate: a damped
// school still ranks, a disqualified one disappears.
const (
	regionDamp      = 0.8
	stateDamp       = 0.85
	majorDamp       = 0.85
	enrollmentDamp  = 0.9
	scholarshipDamp = 0.5

	locationWeight = 0.1
)

// MatchColleges scores the full catalog against the athlete, applies
// preference boosts and option filters in fixed order, blends the weighted
// overall score, and returns the surviving schools sorted by overall match
// descending. Ties keep catalog order.
func MatchColleges(a *models.Athlete, m *models.CombineMetrics, prefs *models.RecruitingPreferences, opts MatchOptions) []MatchedSchool {
	var matched []MatchedSchool

	for _, college := range catalog.All() {
		s := scoreSchool(a, m, college, prefs, opts)
		acad, athl := s.academic, s.athletic
		disqualified := false

		// 1. Preference-based boosts.
		if prefs != nil {
			if div, ok := catalog.ParseDivision(prefs.PreferredDivision); ok && div == college.Division {
				acad += 5
				athl += 5
			}
			if schoolOfInterest(prefs.SchoolsOfInterest, college.Name) {
				acad += 10
				athl += 10
			}
		}

		// 2. Soft filters: multiplicative damping, never a hard cutoff.
		if opts.Region != "" && !strings.EqualFold(opts.Region, college.Region) {
			acad *= regionDamp
			athl *= regionDamp
		}
		if opts.PreferredState != "" && !strings.EqualFold(opts.PreferredState, college.State) {
			acad *= stateDamp
			athl *= stateDamp
		}
		if opts.PreferredMajor != "" && !majorMatches(opts.PreferredMajor, college.Programs) {
			acad *= majorDamp
		}
		if outsideEnrollmentBounds(college.Enrollment, opts) {
			acad *= enrollmentDamp
		}

		// 3. Hard filters: disqualify outright.
		if opts.AthleticScholarshipRequired && !college.AthleticScholarships {
			athl *= scholarshipDamp
			disqualified = true
		}
		if opts.PublicOnly && !college.Public {
			disqualified = true
		}
		if opts.PrivateOnly && college.Public {
			disqualified = true
		}

		// 4. Weighted overall blend. Athletic-dominant by default; the
		// financial weight scales with the caller's stated importance.
		financialWeight := 0.1
		if v, ok := intVal(opts.FinancialAidImportance); ok {
			financialWeight = float64(v) / 10 * 0.2
		}
		academicWeight := 0.4 - financialWeight/2
		athleticWeight := 0.6 - financialWeight/2 - locationWeight

		overall := acad*academicWeight + athl*athleticWeight +
			s.finance*financialWeight + s.location*locationWeight
		if disqualified {
			overall = 0
		}

		// 5. Round and clamp every numeric field.
		overallMatch := clampScore(overall)
		if overallMatch <= 0 {
			continue
		}

		finance := clampScore(s.finance)
		location := clampScore(s.location)
		matched = append(matched, MatchedSchool{
			College:              college,
			AcademicMatch:        clampScore(acad),
			AthleticMatch:        clampScore(athl),
			OverallMatch:         overallMatch,
			FinancialFit:         &finance,
			LocationFit:          &location,
			ScholarshipPotential: s.scholarship,
			AdmissionChance:      s.admission,
			CampusSize:           s.campus,
			MatchingReasons:      s.reasons,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].OverallMatch > matched[j].OverallMatch
	})
	return matched
}

func outsideEnrollmentBounds(enrollment int, opts MatchOptions) bool {
	if v, ok := intVal(opts.MinEnrollment); ok && enrollment < v {
		return true
	}
	if v, ok := intVal(opts.MaxEnrollment); ok && enrollment > v {
		return true
	}
	return false
}

func schoolOfInterest(schools []string, name string) bool {
	n := strings.ToLower(name)
	for _, s := range schools {
		sl := strings.ToLower(strings.TrimSpace(s))
		if sl == "" {
			continue
		}
		if strings.Contains(n, sl) || strings.Contains(sl, n) {
			return true
		}
	}
	return false
}
