package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
)

func TestDifficultyFactor_CompressesHigherTiers(t *testing.T) {
	assert.Less(t, difficultyFactor(catalog.DivisionD1), difficultyFactor(catalog.DivisionD2))
	assert.Less(t, difficultyFactor(catalog.DivisionD2), difficultyFactor(catalog.DivisionD3))
	assert.Equal(t, difficultyFactor(catalog.DivisionD3), difficultyFactor(catalog.DivisionNAIA))
	assert.Greater(t, difficultyFactor(catalog.DivisionJUCO), 1.0)
}

func TestScholarshipPotential(t *testing.T) {
	d1 := catalog.College{Division: catalog.DivisionD1, AthleticScholarships: true}
	d2 := catalog.College{Division: catalog.DivisionD2, AthleticScholarships: true}
	d3 := catalog.College{Division: catalog.DivisionD3}
	noMoney := catalog.College{Division: catalog.DivisionD1, AthleticScholarships: false}

	assert.Equal(t, ScholarshipNone, scholarshipPotential(d3, 99))
	assert.Equal(t, ScholarshipNone, scholarshipPotential(noMoney, 99))
	assert.Equal(t, ScholarshipHigh, scholarshipPotential(d1, 85))
	assert.Equal(t, ScholarshipMedium, scholarshipPotential(d1, 84))
	assert.Equal(t, ScholarshipMedium, scholarshipPotential(d1, 70))
	assert.Equal(t, ScholarshipLow, scholarshipPotential(d1, 69))
	assert.Equal(t, ScholarshipHigh, scholarshipPotential(d2, 75))
	assert.Equal(t, ScholarshipMedium, scholarshipPotential(d2, 60))
}

func TestAdmissionChance_UnknownWithoutAcademics(t *testing.T) {
	college := catalog.College{Division: catalog.DivisionD1, AdmissionRate: 0.5}
	assert.Equal(t, AdmissionUnknown, admissionChance(&models.Athlete{}, college))
}

func TestAdmissionChance_SelectiveSchool(t *testing.T) {
	elite := catalog.College{AdmissionRate: 0.04}
	strong := &models.Athlete{GPA: floatPtr(4.0), ACTScore: intPtr(33)}
	weak := &models.Athlete{GPA: floatPtr(2.6)}

	assert.Equal(t, AdmissionGood, admissionChance(strong, elite))
	assert.Equal(t, AdmissionReach, admissionChance(weak, elite))
}

func TestAdmissionChance_OpenEnrollmentFallsBackToDivision(t *testing.T) {
	// JUCO with unpublished rate is treated as minimally selective.
	juco := catalog.College{Division: catalog.DivisionJUCO}
	a := &models.Athlete{GPA: floatPtr(3.2)}
	assert.Equal(t, AdmissionGood, admissionChance(a, juco))
}

func TestCampusSize(t *testing.T) {
	assert.Equal(t, CampusSmall, campusSize(4999))
	assert.Equal(t, CampusMedium, campusSize(5000))
	assert.Equal(t, CampusMedium, campusSize(19999))
	assert.Equal(t, CampusLarge, campusSize(20000))
}

func TestAcademicMatch_UnpublishedGPAUsesDivisionEstimate(t *testing.T) {
	juco := catalog.College{Division: catalog.DivisionJUCO}
	d1 := catalog.College{Division: catalog.DivisionD1}
	a := &models.Athlete{GPA: floatPtr(3.0)}

	// The JUCO estimate is more generous than the D1 estimate.
	assert.Greater(t, academicMatch(a, juco, MatchOptions{}), academicMatch(a, d1, MatchOptions{}))
}

func TestAcademicMatch_MajorBonus(t *testing.T) {
	college := catalog.College{
		Division: catalog.DivisionD2,
		Programs: []string{"Business Administration", "Nursing"},
	}
	a := &models.Athlete{PreferredMajor: "Business"}
	without := academicMatch(&models.Athlete{}, college, MatchOptions{})
	with := academicMatch(a, college, MatchOptions{})
	assert.Equal(t, without+10, with)
}

func TestFinancialFit_InStatePublicWithScholarships(t *testing.T) {
	college := catalog.College{State: "TX", Public: true, AthleticScholarships: true}
	a := &models.Athlete{State: "TX"}
	assert.Equal(t, 100.0, financialFit(a, college))
	assert.Equal(t, 50.0, financialFit(&models.Athlete{}, catalog.College{}))
}

func TestLocationFit_HomeStateAndRegion(t *testing.T) {
	college := catalog.College{Region: "Southwest", State: "TX"}
	a := &models.Athlete{Region: "Southwest", State: "TX"}
	assert.Equal(t, 90.0, locationFit(a, college, nil, MatchOptions{}))

	// MaxDistance penalizes cross-region schools.
	far := catalog.College{Region: "Northeast", State: "PA"}
	assert.Equal(t, 30.0, locationFit(a, far, nil, MatchOptions{MaxDistance: intPtr(200)}))
}

func TestMatchingReasons_FallbackWhenNothingApplies(t *testing.T) {
	college := catalog.College{Division: catalog.DivisionD3}
	a := &models.Athlete{Position: "Kicker (K)"}
	s := scoreSchool(a, nil, college, nil, MatchOptions{})
	assert.Equal(t, []string{"Meets your basic recruiting profile"}, s.reasons)
}

func TestMatchingReasons_RecruitedPositionNamed(t *testing.T) {
	college := catalog.College{
		Division:           catalog.DivisionD1,
		ActivelyRecruiting: []string{"Quarterback (QB)"},
	}
	s := scoreSchool(qbAthlete(), qbMetrics(), college, nil, MatchOptions{})
	assert.Contains(t, s.reasons, "Actively recruiting your position (Quarterback)")
}
