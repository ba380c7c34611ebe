package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"mediation-scheduler/internal/config"
	"mediation-scheduler/internal/database"
	"mediation-scheduler/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type ParticipantData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type CaseData struct {
	CaseNumber   string            `yaml:"case_number"`
	Title        string            `yaml:"title"`
	Description  string            `yaml:"description"`
	CaseType     string            `yaml:"case_type"`
	Status       string            `yaml:"status"`
	Location     string            `yaml:"location"`
	CreatedBy    string            `yaml:"created_by"`
	Participants []ParticipantData `yaml:"participants"`
}

type OptionData struct {
	Date            string `yaml:"date"`
	Time            string `yaml:"time"`
	DurationMinutes int    `yaml:"duration_minutes"`
	Location        string `yaml:"location,omitempty"`
}

type PollData struct {
	CaseNumber  string       `yaml:"case_number"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Location    string       `yaml:"location"`
	TimeZone    string       `yaml:"time_zone"`
	Options     []OptionData `yaml:"options"`
}

// File structures
type CasesFile struct {
	Cases []CaseData `yaml:"cases"`
}

type PollsFile struct {
	Polls []PollData `yaml:"polls"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	cases, err := loadCases(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load cases: %w", err)
	}

	polls, err := loadPolls(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load polls: %w", err)
	}

	// Create cases first so polls can resolve their case numbers
	caseMap := make(map[string]*models.Case)
	caseCreated := 0
	for _, caseData := range cases {
		c, created, err := createCase(db, caseData)
		if err != nil {
			return fmt.Errorf("failed to create case %s: %w", caseData.CaseNumber, err)
		}
		caseMap[caseData.CaseNumber] = c
		if created {
			caseCreated++
		}
	}
	log.Printf("📋 Cases: %d created, %d total", caseCreated, len(cases))

	pollCreated := 0
	for _, pollData := range polls {
		_, created, err := createPoll(db, pollData, caseMap)
		if err != nil {
			return fmt.Errorf("failed to create poll %s: %w", pollData.Title, err)
		}
		if created {
			pollCreated++
		}
	}
	log.Printf("📋 Polls: %d created, %d total", pollCreated, len(polls))

	return nil
}

func loadCases(dataDir string) ([]CaseData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "cases.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file CasesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Cases, nil
}

func loadPolls(dataDir string) ([]PollData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "polls.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file PollsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Polls, nil
}

// createCase creates a case if it does not already exist, keyed by case number
func createCase(db *gorm.DB, data CaseData) (*models.Case, bool, error) {
	var existing models.Case
	err := db.Where("case_number = ?", data.CaseNumber).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	status := models.CaseStatus(data.Status)
	if data.Status == "" {
		status = models.CaseStatusOpen
	}

	participants := make([]models.Participant, 0, len(data.Participants))
	for _, p := range data.Participants {
		participants = append(participants, models.Participant{
			Name:  p.Name,
			Email: models.NormalizeEmail(p.Email),
			Role:  p.Role,
		})
	}

	c := &models.Case{
		CaseNumber:   data.CaseNumber,
		Title:        data.Title,
		Description:  data.Description,
		CaseType:     models.CaseType(data.CaseType),
		Status:       status,
		Location:     data.Location,
		Participants: participants,
	}
	c.CreatedBy = data.CreatedBy

	if err := db.Create(c).Error; err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// createPoll creates a draft poll if the case does not already have one
// with the same title
func createPoll(db *gorm.DB, data PollData, caseMap map[string]*models.Case) (*models.Poll, bool, error) {
	parent, ok := caseMap[data.CaseNumber]
	if !ok {
		return nil, false, fmt.Errorf("unknown case number %s", data.CaseNumber)
	}

	var existing models.Poll
	err := db.Where("case_id = ? AND title = ?", parent.ID, data.Title).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	options := make([]models.PollOption, 0, len(data.Options))
	for _, o := range data.Options {
		options = append(options, models.NewPollOption(o.Date, o.Time, o.DurationMinutes, o.Location))
	}

	p := &models.Poll{
		CaseID:       parent.ID,
		Title:        data.Title,
		Description:  data.Description,
		Location:     data.Location,
		TimeZone:     data.TimeZone,
		Status:       models.PollStatusDraft,
		Options:      options,
		Participants: parent.Participants,
	}
	p.CreatedBy = parent.CreatedBy

	if err := db.Create(p).Error; err != nil {
		return nil, false, err
	}
	return p, true, nil
}
