package repository

import (
	"mediation-scheduler/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoticeRepository handles database operations for mediation notices
type NoticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *gorm.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// Create creates a new notice
func (r *NoticeRepository) Create(notice *models.Notice) error {
	return r.db.Create(notice).Error
}

// GetByID retrieves a notice by ID
func (r *NoticeRepository) GetByID(id uuid.UUID) (*models.Notice, error) {
	var notice models.Notice
	err := r.db.First(&notice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

// GetByCaseID retrieves all notices for a case with pagination
func (r *NoticeRepository) GetByCaseID(caseID uuid.UUID, limit, offset int) ([]models.Notice, int64, error) {
	var notices []models.Notice
	var total int64

	if err := r.db.Model(&models.Notice{}).Where("case_id = ?", caseID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("case_id = ?", caseID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notices).Error
	if err != nil {
		return nil, 0, err
	}

	return notices, total, nil
}

// Update saves the full notice record
func (r *NoticeRepository) Update(notice *models.Notice) error {
	return r.db.Save(notice).Error
}

// Delete deletes a notice by ID
func (r *NoticeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Notice{}, "id = ?", id).Error
}
