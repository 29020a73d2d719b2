package models

import (
	"time"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/database"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lib/pq"
)

// Athlete is the recruiting profile for a high-school football player.
// The matching engine treats this record as immutable input.
type Athlete struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	FirstName      string   `gorm:"size:100;not null" json:"first_name"`
	LastName       string   `gorm:"size:100;not null" json:"last_name"`
	Position       string   `gorm:"size:100" json:"position"` // free text, e.g. "Quarterback (QB)"
	HeightInches   *float64 `json:"height_inches"`
	WeightPounds   *float64 `json:"weight_pounds"`
	GPA            *float64 `json:"gpa"`
	ACTScore       *int     `json:"act_score"`
	SATScore       *int     `json:"sat_score"`
	GraduationYear int      `json:"graduation_year"`

	City   string `gorm:"size:100" json:"city"`
	State  string `gorm:"size:50" json:"state"`
	Region string `gorm:"size:50" json:"region"`

	PreferredMajor         string `gorm:"size:150" json:"preferred_major"`
	FinancialAidImportance *int   `json:"financial_aid_importance"` // 0-10
	ScholarshipRequired    bool   `gorm:"default:false" json:"scholarship_required"`

	HighlightLinks datatypes.JSON `json:"highlight_links"`

	ParentEmail string `gorm:"size:255" json:"parent_email"`
	ParentPhone string `gorm:"size:50" json:"parent_phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Athlete) TableName() string {
	return "athletes"
}

// CombineMetrics is one recorded set of combine-style measurements.
// Every measurement is optional; the scorers skip absent fields.
type CombineMetrics struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	AthleteID uint    `gorm:"not null;index" json:"athlete_id"`
	Athlete   Athlete `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FortyYard     *float64 `json:"forty_yard"`      // seconds
	ShuttleTime   *float64 `json:"shuttle_time"`    // seconds
	ThreeCone     *float64 `json:"three_cone"`      // seconds
	VerticalJump  *float64 `json:"vertical_jump"`   // inches
	BroadJump     *float64 `json:"broad_jump"`      // inches
	BenchPressMax *float64 `json:"bench_press_max"` // pounds
	BenchReps     *int     `json:"bench_reps"`      // reps at 185
	SquatMax      *float64 `json:"squat_max"`       // pounds
	PowerClean    *float64 `json:"power_clean"`     // pounds
	DeadliftMax   *float64 `json:"deadlift_max"`    // pounds

	RecordedAt time.Time `gorm:"index" json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func (CombineMetrics) TableName() string {
	return "combine_metrics"
}

// RecruitingPreferences stores the athlete's stored matching preferences.
type RecruitingPreferences struct {
	AthleteID uint    `gorm:"primaryKey" json:"athlete_id"`
	Athlete   Athlete `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PreferredDivision string         `gorm:"size:20" json:"preferred_division"` // D1, D2, D3, NAIA, JUCO
	PreferredRegions  pq.StringArray `gorm:"type:text[]" json:"preferred_regions"`
	PreferredStates   pq.StringArray `gorm:"type:text[]" json:"preferred_states"`
	SchoolsOfInterest pq.StringArray `gorm:"type:text[]" json:"schools_of_interest"`
	PriorityWeights   datatypes.JSON `json:"priority_weights"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RecruitingPreferences) TableName() string {
	return "recruiting_preferences"
}

// PriorityWeights is the decoded shape of RecruitingPreferences.PriorityWeights.
type PriorityWeights struct {
	Academics    int `json:"academics"`     // 1-10
	Athletics    int `json:"athletics"`     // 1-10
	Distance     int `json:"distance"`      // 1-10
	FinancialAid int `json:"financial_aid"` // 1-10
}

// GetAthleteByID fetches a single athlete profile.
func GetAthleteByID(db *database.DB, athleteID uint) (*Athlete, error) {
	var athlete Athlete
	if err := db.First(&athlete, athleteID).Error; err != nil {
		return nil, err
	}
	return &athlete, nil
}

// GetLatestMetrics returns the most recent combine metrics for an athlete,
// or gorm.ErrRecordNotFound when none have been recorded.
func GetLatestMetrics(db *database.DB, athleteID uint) (*CombineMetrics, error) {
	var metrics CombineMetrics
	err := db.Where("athlete_id = ?", athleteID).
		Order("recorded_at DESC").
		First(&metrics).Error
	if err != nil {
		return nil, err
	}
	return &metrics, nil
}

// GetRecruitingPreferences returns stored preferences, or
// gorm.ErrRecordNotFound when the athlete has never saved any.
func GetRecruitingPreferences(db *database.DB, athleteID uint) (*RecruitingPreferences, error) {
	var prefs RecruitingPreferences
	err := db.Where("athlete_id = ?", athleteID).First(&prefs).Error
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpsertRecruitingPreferences creates or replaces stored preferences.
func UpsertRecruitingPreferences(db *database.DB, prefs *RecruitingPreferences) error {
	var existing RecruitingPreferences
	err := db.Where("athlete_id = ?", prefs.AthleteID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(prefs).Error
	}
	if err != nil {
		return err
	}
	return db.Model(&existing).Updates(map[string]interface{}{
		"preferred_division":  prefs.PreferredDivision,
		"preferred_regions":   prefs.PreferredRegions,
		"preferred_states":    prefs.PreferredStates,
		"schools_of_interest": prefs.SchoolsOfInterest,
		"priority_weights":    prefs.PriorityWeights,
	}).Error
}

// ListAthletesWithStaleMetrics returns athletes whose most recent combine
// entry is older than the cutoff, including athletes with no metrics at all.
func ListAthletesWithStaleMetrics(db *database.DB, cutoff time.Time) ([]Athlete, error) {
	var athletes []Athlete
	err := db.Where(
		"id NOT IN (?)",
		db.Model(&CombineMetrics{}).Select("athlete_id").Where("recorded_at >= ?", cutoff),
	).Find(&athletes).Error
	return athletes, err
}
