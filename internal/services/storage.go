package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/database"
)

// ErrAthleteNotFound is returned when the requested athlete does not exist.
// Matching is meaningless without a profile, so this surfaces to the caller
// instead of degrading.
var ErrAthleteNotFound = errors.New("athlete not found")

// AthleteStore is the read-side contract the matching service depends on.
type AthleteStore interface {
	GetAthlete(ctx context.Context, athleteID uint) (*models.Athlete, error)
	GetLatestMetrics(ctx context.Context, athleteID uint) (*models.CombineMetrics, error)
	GetPreferences(ctx context.Context, athleteID uint) (*models.RecruitingPreferences, error)
}

// GormAthleteStore backs AthleteStore with the relational database.
type GormAthleteStore struct {
	db *database.DB
}

func NewGormAthleteStore(db *database.DB) *GormAthleteStore {
	return &GormAthleteStore{db: db}
}

func (s *GormAthleteStore) GetAthlete(ctx context.Context, athleteID uint) (*models.Athlete, error) {
	var athlete models.Athlete
	err := s.db.WithContext(ctx).First(&athlete, athleteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAthleteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch athlete: %w", err)
	}
	return &athlete, nil
}

// GetLatestMetrics returns the most recent combine entry, or nil when the
// athlete has never recorded metrics. Absence degrades scoring, it does not
// fail the request.
func (s *GormAthleteStore) GetLatestMetrics(ctx context.Context, athleteID uint) (*models.CombineMetrics, error) {
	var metrics models.CombineMetrics
	err := s.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("recorded_at DESC").
		First(&metrics).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}
	return &metrics, nil
}

// GetPreferences returns stored recruiting preferences, or nil when the
// athlete has never saved any.
func (s *GormAthleteStore) GetPreferences(ctx context.Context, athleteID uint) (*models.RecruitingPreferences, error) {
	var prefs models.RecruitingPreferences
	err := s.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preferences: %w", err)
	}
	return &prefs, nil
}
