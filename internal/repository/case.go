package repository

import (
	"mediation-scheduler/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseRepository handles database operations for mediation cases
type CaseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create creates a new case
func (r *CaseRepository) Create(c *models.Case) error {
	return r.db.Create(c).Error
}

// GetByID retrieves a case by ID
func (r *CaseRepository) GetByID(id uuid.UUID) (*models.Case, error) {
	var c models.Case
	err := r.db.First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByCaseNumber retrieves a case by its human-readable case number
func (r *CaseRepository) GetByCaseNumber(caseNumber string) (*models.Case, error) {
	var c models.Case
	err := r.db.First(&c, "case_number = ?", caseNumber).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll retrieves all cases with pagination
func (r *CaseRepository) GetAll(limit, offset int) ([]models.Case, int64, error) {
	var cases []models.Case
	var total int64

	if err := r.db.Model(&models.Case{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

// GetByCreator retrieves the cases created by one mediator with pagination
func (r *CaseRepository) GetByCreator(createdBy string, limit, offset int) ([]models.Case, int64, error) {
	var cases []models.Case
	var total int64

	if err := r.db.Model(&models.Case{}).Where("created_by = ?", createdBy).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("created_by = ?", createdBy).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

// GetWithPolls retrieves a case with its polls preloaded
func (r *CaseRepository) GetWithPolls(id uuid.UUID) (*models.Case, error) {
	var c models.Case
	err := r.db.Preload("Polls").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update saves the full case record
func (r *CaseRepository) Update(c *models.Case) error {
	return r.db.Save(c).Error
}

// Delete deletes a case by ID
func (r *CaseRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Case{}, "id = ?", id).Error
}
