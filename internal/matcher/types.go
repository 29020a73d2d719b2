package matcher

import (
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/catalog"
)

// ScholarshipPotential classifies how likely an athletic scholarship offer is.
type ScholarshipPotential string

const (
	ScholarshipNone   ScholarshipPotential = "none"
	ScholarshipLow    ScholarshipPotential = "low"
	ScholarshipMedium ScholarshipPotential = "medium"
	ScholarshipHigh   ScholarshipPotential = "high"
)

// AdmissionChance classifies the athlete's academic admission outlook.
type AdmissionChance string

const (
	AdmissionReach     AdmissionChance = "reach"
	AdmissionAverage   AdmissionChance = "average"
	AdmissionGood      AdmissionChance = "good"
	AdmissionExcellent AdmissionChance = "excellent"
	AdmissionUnknown   AdmissionChance = "unknown"
)

// CampusSize buckets enrollment into small/medium/large.
type CampusSize string

const (
	CampusSmall  CampusSize = "small"
	CampusMedium CampusSize = "medium"
	CampusLarge  CampusSize = "large"
)

// MatchOptions are the caller-supplied filters and weight adjustments for a
// matching request. All fields are optional; absent fields apply nothing.
type MatchOptions struct {
	Region                      string `json:"region"`
	PreferredMajor              string `json:"preferred_major"`
	MaxDistance                 *int   `json:"max_distance"`
	PreferredState              string `json:"preferred_state"`
	FinancialAidImportance      *int   `json:"financial_aid_importance"` // 0-10
	AthleticScholarshipRequired bool   `json:"athletic_scholarship_required"`
	MinEnrollment               *int   `json:"min_enrollment"`
	MaxEnrollment               *int   `json:"max_enrollment"`
	PublicOnly                  bool   `json:"public_only"`
	PrivateOnly                 bool   `json:"private_only"`
	UseAI                       bool   `json:"use_ai"`
}

// MatchedSchool is a catalog entry enriched with per-request scores.
// Instances are freshly allocated per matching request and never persisted.
type MatchedSchool struct {
	catalog.College

	AcademicMatch        int                  `json:"academic_match"`
	AthleticMatch        int                  `json:"athletic_match"`
	OverallMatch         int                  `json:"overall_match"`
	FinancialFit         *int                 `json:"financial_fit,omitempty"`
	LocationFit          *int                 `json:"location_fit,omitempty"`
	ScholarshipPotential ScholarshipPotential `json:"scholarship_potential"`
	AdmissionChance      AdmissionChance      `json:"admission_chance"`
	CampusSize           CampusSize           `json:"campus_size"`
	MatchingReasons      []string             `json:"matching_reasons"`
}

// DivisionRecommendation pairs the recommended division with a 0-100
// confidence score.
type DivisionRecommendation struct {
	Division   catalog.Division `json:"division"`
	MatchScore int              `json:"match_score"`
}

// MatchResult is the composed response for one matching request.
type MatchResult struct {
	Recommendation   DivisionRecommendation `json:"recommendation"`
	Schools          []MatchedSchool        `json:"schools"`
	Feedback         []string               `json:"feedback"`
	Insights         []string               `json:"insights,omitempty"`
	AcademicStrength int                    `json:"academic_strength"`
	AthleticStrength int                    `json:"athletic_strength"`
	PositionRanking  string                 `json:"position_ranking"`
}
