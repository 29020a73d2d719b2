package matcher

import (
	"fmt"
	"strings"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
)

// difficultyFactor compresses athletic-match bonuses for higher competitive
// tiers: the same measurables register a lower match against an elite
// program.
func difficultyFactor(div catalog.Division) float64 {
	switch div {
	case catalog.DivisionD1:
		return 0.7
	case catalog.DivisionD2:
		return 0.85
	case catalog.DivisionD3, catalog.DivisionNAIA:
		return 0.95
	case catalog.DivisionJUCO:
		return 1.1
	default:
		return 1.0
	}
}

// schoolScore carries the per-school component scores before the aggregator
// applies boosts, damping and the weighted blend. Scores stay float64 until
// the final round-and-clamp.
type schoolScore struct {
	college  catalog.College
	academic float64
	athletic float64
	finance  float64
	location float64

	scholarship ScholarshipPotential
	admission   AdmissionChance
	campus      CampusSize
	reasons     []string
}

// scoreSchool computes all component scores for one catalog entry. The
// matching reasons are generated from these pre-damping scores so they
// describe intrinsic fit even when option filters later reduce or zero the
// ranked result.
func scoreSchool(a *models.Athlete, m *models.CombineMetrics, college catalog.College, prefs *models.RecruitingPreferences, opts MatchOptions) schoolScore {
	s := schoolScore{college: college}

	s.academic = academicMatch(a, college, opts)
	s.athletic = athleticMatch(a, m, college)
	s.finance = financialFit(a, college)
	s.location = locationFit(a, college, prefs, opts)
	s.scholarship = scholarshipPotential(college, clampScore(s.athletic))
	s.admission = admissionChance(a, college)
	s.campus = campusSize(college.Enrollment)
	s.reasons = matchingReasons(a, college, prefs, opts, s)

	return s
}

func academicMatch(a *models.Athlete, college catalog.College, opts MatchOptions) float64 {
	score := baseScore
	gpa, hasGPA := floatVal(a.GPA)

	// GPA against the school's published average, or a division-tier
	// estimate when the school does not publish one.
	switch {
	case college.AvgGPA > 0 && hasGPA:
		diff := gpa - college.AvgGPA
		switch {
		case diff >= 0.3:
			score += 25
		case diff >= 0:
			score += 20
		case diff >= -0.2:
			score += 12
		case diff >= -0.4:
			score += 5
		}
	case college.AvgGPA == 0:
		switch college.Division {
		case catalog.DivisionD1:
			score += 10
		case catalog.DivisionD2:
			score += 12
		case catalog.DivisionD3:
			score += 14
		case catalog.DivisionNAIA:
			score += 15
		case catalog.DivisionJUCO:
			score += 18
		}
	}

	// Selectivity tier crossed with GPA.
	if college.AdmissionRate > 0 && hasGPA {
		switch {
		case college.AdmissionRate < 0.15: // extremely selective
			switch {
			case gpa >= 3.9:
				score += 10
			case gpa >= 3.6:
				score += 5
			case gpa < 3.0:
				score -= 10
			}
		case college.AdmissionRate < 0.4: // very selective
			switch {
			case gpa >= 3.5:
				score += 8
			case gpa >= 3.0:
				score += 4
			case gpa < 2.5:
				score -= 5
			}
		case college.AdmissionRate < 0.7: // moderately selective
			if gpa >= 3.0 {
				score += 5
			}
		default: // minimally selective
			score += 5
		}
	}

	if majorMatches(preferredMajor(a, opts), college.Programs) {
		score += 10
	}

	return float64(clampScore(score))
}

func athleticMatch(a *models.Athlete, m *models.CombineMetrics, college catalog.College) float64 {
	family := ClassifyPosition(a.Position)
	raw := athleticBonus(family, a, m)
	score := baseScore + raw*difficultyFactor(college.Division)

	if recruitsPosition(college, a.Position) {
		score += 20
	}

	return float64(clampScore(score))
}

func financialFit(a *models.Athlete, college catalog.College) float64 {
	score := baseScore
	if college.AthleticScholarships {
		score += 20
	}
	if a.State != "" && strings.EqualFold(a.State, college.State) {
		score += 20 // in-state tuition advantage
	}
	if college.Public {
		score += 10
	}
	return float64(clampScore(score))
}

func locationFit(a *models.Athlete, college catalog.College, prefs *models.RecruitingPreferences, opts MatchOptions) float64 {
	score := baseScore
	if a.Region != "" && strings.EqualFold(a.Region, college.Region) {
		score += 15
	}
	if a.State != "" && strings.EqualFold(a.State, college.State) {
		score += 25
	}
	if statedLocationMatch(college, prefs, opts) {
		score += 10
	}
	if opts.MaxDistance != nil && a.Region != "" && !strings.EqualFold(a.Region, college.Region) {
		score -= 20
	}
	return float64(clampScore(score))
}

// statedLocationMatch reports whether an explicit region/state preference
// (request option or stored preference) names the school's location.
func statedLocationMatch(college catalog.College, prefs *models.RecruitingPreferences, opts MatchOptions) bool {
	if opts.Region != "" && strings.EqualFold(opts.Region, college.Region) {
		return true
	}
	if opts.PreferredState != "" && strings.EqualFold(opts.PreferredState, college.State) {
		return true
	}
	if prefs != nil {
		for _, r := range prefs.PreferredRegions {
			if strings.EqualFold(r, college.Region) {
				return true
			}
		}
		for _, st := range prefs.PreferredStates {
			if strings.EqualFold(st, college.State) {
				return true
			}
		}
	}
	return false
}

// scholarshipPotential thresholds vary by division: elite programs require a
// higher athletic match before an offer is likely. D3 programs cannot offer
// athletic money at all.
func scholarshipPotential(college catalog.College, athleticMatch int) ScholarshipPotential {
	if college.Division == catalog.DivisionD3 || !college.AthleticScholarships {
		return ScholarshipNone
	}
	var high, medium int
	switch college.Division {
	case catalog.DivisionD1:
		high, medium = 85, 70
	case catalog.DivisionD2:
		high, medium = 75, 60
	case catalog.DivisionNAIA:
		high, medium = 65, 55
	default: // JUCO
		high, medium = 60, 50
	}
	switch {
	case athleticMatch >= high:
		return ScholarshipHigh
	case athleticMatch >= medium:
		return ScholarshipMedium
	default:
		return ScholarshipLow
	}
}

func admissionChance(a *models.Athlete, college catalog.College) AdmissionChance {
	gpa, hasGPA := floatVal(a.GPA)
	testTier := admissionTestTier(a.ACTScore, a.SATScore)
	if !hasGPA && a.ACTScore == nil && a.SATScore == nil {
		return AdmissionUnknown
	}

	combined := testTier
	if hasGPA {
		switch {
		case gpa >= 4.0:
			combined += 5
		case gpa >= 3.7:
			combined += 4
		case gpa >= 3.5:
			combined += 3
		case gpa >= 3.0:
			combined += 2
		case gpa >= 2.5:
			combined += 1
		}
	}

	rate := college.AdmissionRate
	if rate == 0 {
		// Unpublished rate: fall back to the division tier.
		switch college.Division {
		case catalog.DivisionD1:
			rate = 0.35
		case catalog.DivisionD2, catalog.DivisionD3:
			rate = 0.65
		default:
			rate = 0.9
		}
	}

	switch {
	case rate < 0.15:
		switch {
		case combined >= 8:
			return AdmissionGood
		case combined >= 6:
			return AdmissionAverage
		default:
			return AdmissionReach
		}
	case rate < 0.4:
		switch {
		case combined >= 7:
			return AdmissionExcellent
		case combined >= 5:
			return AdmissionGood
		case combined >= 3:
			return AdmissionAverage
		default:
			return AdmissionReach
		}
	case rate < 0.7:
		switch {
		case combined >= 6:
			return AdmissionExcellent
		case combined >= 4:
			return AdmissionGood
		case combined >= 2:
			return AdmissionAverage
		default:
			return AdmissionReach
		}
	default:
		switch {
		case combined >= 3:
			return AdmissionExcellent
		case combined >= 1:
			return AdmissionGood
		default:
			return AdmissionAverage
		}
	}
}

func admissionTestTier(act, sat *int) int {
	tier := 0
	if v, ok := intVal(act); ok {
		switch {
		case v >= 30:
			tier = 3
		case v >= 26:
			tier = 2
		case v >= 21:
			tier = 1
		}
	}
	if v, ok := intVal(sat); ok {
		var t int
		switch {
		case v >= 1350:
			t = 3
		case v >= 1200:
			t = 2
		case v >= 1010:
			t = 1
		}
		if t > tier {
			tier = t
		}
	}
	return tier
}

func campusSize(enrollment int) CampusSize {
	switch {
	case enrollment >= 20000:
		return CampusLarge
	case enrollment >= 5000:
		return CampusMedium
	default:
		return CampusSmall
	}
}

// matchingReasons builds the ordered explanation list. The order of checks is
// fixed; tests compare output deterministically.
func matchingReasons(a *models.Athlete, college catalog.College, prefs *models.RecruitingPreferences, opts MatchOptions, s schoolScore) []string {
	var reasons []string

	if s.athletic >= 80 {
		reasons = append(reasons, fmt.Sprintf("Strong athletic fit for %s football", college.Division))
	}
	if s.academic >= 80 {
		reasons = append(reasons, "Excellent academic fit for your profile")
	}
	if recruitsPosition(college, a.Position) {
		reasons = append(reasons, fmt.Sprintf("Actively recruiting your position (%s)", StripParentheticals(a.Position)))
	}
	if major := preferredMajor(a, opts); majorMatches(major, college.Programs) {
		reasons = append(reasons, fmt.Sprintf("Offers programs matching your interest in %s", major))
	}
	if statedLocationMatch(college, prefs, opts) {
		reasons = append(reasons, "Located in one of your preferred states or regions")
	}
	if college.RecentSuccess != "" {
		reasons = append(reasons, fmt.Sprintf("Program on the rise: %s", college.RecentSuccess))
	}
	if opts.PublicOnly && college.Public {
		reasons = append(reasons, "Public university matching your preference")
	} else if opts.PrivateOnly && !college.Public {
		reasons = append(reasons, "Private school matching your preference")
	}
	if a.ScholarshipRequired && college.AthleticScholarships {
		reasons = append(reasons, "Offers the athletic scholarships you need")
	}
	if enrollmentWithinBounds(college.Enrollment, opts) {
		reasons = append(reasons, "Campus size fits your preference")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Meets your basic recruiting profile")
	}
	return reasons
}

func enrollmentWithinBounds(enrollment int, opts MatchOptions) bool {
	if opts.MinEnrollment == nil && opts.MaxEnrollment == nil {
		return false
	}
	if v, ok := intVal(opts.MinEnrollment); ok && enrollment < v {
		return false
	}
	if v, ok := intVal(opts.MaxEnrollment); ok && enrollment > v {
		return false
	}
	return true
}

func recruitsPosition(college catalog.College, position string) bool {
	for _, p := range college.ActivelyRecruiting {
		if positionsOverlap(p, position) {
			return true
		}
	}
	return false
}

func preferredMajor(a *models.Athlete, opts MatchOptions) string {
	if opts.PreferredMajor != "" {
		return opts.PreferredMajor
	}
	return a.PreferredMajor
}

func majorMatches(major string, programs []string) bool {
	m := strings.ToLower(strings.TrimSpace(major))
	if m == "" {
		return false
	}
	for _, p := range programs {
		pl := strings.ToLower(p)
		if strings.Contains(pl, m) || strings.Contains(m, pl) {
			return true
		}
	}
	return false
}
