package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/internal/models"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/config"
	"github.com/asbuyrylw/GridIron-LegacyAI2-sub001/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	command := os.Args[1]

	switch command {
	case "up":
		if err := runMigrations(db); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if err := seedData(db); err != nil {
			logrus.Fatalf("Failed to seed data: %v", err)
		}
		logrus.Info("Data seeded successfully")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func runMigrations(db *database.DB) error {
	if err := db.AutoMigrate(
		&models.Athlete{},
		&models.CombineMetrics{},
		&models.RecruitingPreferences{},
	); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_athletes_state ON athletes(state)",
		"CREATE INDEX IF NOT EXISTS idx_athletes_graduation_year ON athletes(graduation_year)",
		"CREATE INDEX IF NOT EXISTS idx_combine_metrics_athlete_recorded ON combine_metrics(athlete_id, recorded_at DESC)",
	}
	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func dropTables(db *database.DB) error {
	// Drop tables in reverse order to handle foreign key constraints
	tables := []string{
		"recruiting_preferences",
		"combine_metrics",
		"athletes",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}

func seedData(db *database.DB) error {
	floatPtr := func(v float64) *float64 { return &v }
	intPtr := func(v int) *int { return &v }

	athletes := []models.Athlete{
		{
			FirstName:              "Marcus",
			LastName:               "Webb",
			Position:               "Quarterback (QB)",
			HeightInches:           floatPtr(75),
			WeightPounds:           floatPtr(205),
			GPA:                    floatPtr(3.9),
			ACTScore:               intPtr(30),
			GraduationYear:         2027,
			City:                   "Plano",
			State:                  "Texas",
			Region:                 "Southwest",
			PreferredMajor:         "Business",
			FinancialAidImportance: intPtr(6),
			ParentEmail:            "webb.family@example.com",
		},
		{
			FirstName:           "DeAndre",
			LastName:            "Collins",
			Position:            "Running Back (RB)",
			HeightInches:        floatPtr(70),
			WeightPounds:        floatPtr(195),
			GPA:                 floatPtr(2.8),
			GraduationYear:      2026,
			City:                "Macon",
			State:               "Georgia",
			Region:              "Southeast",
			ScholarshipRequired: true,
			ParentPhone:         "+15550100",
		},
		{
			FirstName:      "Tommy",
			LastName:       "Okafor",
			Position:       "Offensive Line (OL)",
			HeightInches:   floatPtr(77),
			WeightPounds:   floatPtr(290),
			GPA:            floatPtr(3.4),
			SATScore:       intPtr(1220),
			GraduationYear: 2027,
			City:           "Canton",
			State:          "Ohio",
			Region:         "Midwest",
			PreferredMajor: "Engineering",
		},
	}

	for i := range athletes {
		if err := db.Create(&athletes[i]).Error; err != nil {
			return fmt.Errorf("failed to seed athlete: %w", err)
		}
	}

	now := time.Now().UTC()
	metrics := []models.CombineMetrics{
		{
			AthleteID:    athletes[0].ID,
			FortyYard:    floatPtr(4.6),
			VerticalJump: floatPtr(33),
			RecordedAt:   now.AddDate(0, -1, 0),
		},
		{
			AthleteID:    athletes[1].ID,
			FortyYard:    floatPtr(4.45),
			ShuttleTime:  floatPtr(4.1),
			VerticalJump: floatPtr(35),
			BroadJump:    floatPtr(118),
			RecordedAt:   now.AddDate(0, -2, 0),
		},
		{
			AthleteID:     athletes[2].ID,
			BenchPressMax: floatPtr(305),
			SquatMax:      floatPtr(440),
			FortyYard:     floatPtr(5.2),
			RecordedAt:    now.AddDate(0, -5, 0),
		},
	}
	for i := range metrics {
		if err := db.Create(&metrics[i]).Error; err != nil {
			return fmt.Errorf("failed to seed metrics: %w", err)
		}
	}

	prefs := models.RecruitingPreferences{
		AthleteID:         athletes[0].ID,
		PreferredDivision: "D1",
		PreferredRegions:  []string{"Southwest", "Southeast"},
		SchoolsOfInterest: []string{"University of Texas"},
	}
	if err := db.Create(&prefs).Error; err != nil {
		return fmt.Errorf("failed to seed preferences: %w", err)
	}

	return nil
}
