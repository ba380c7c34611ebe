package repository

import (
	"mediation-scheduler/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PollRepository handles database operations for scheduling polls
type PollRepository struct {
	db *gorm.DB
}

// NewPollRepository creates a new poll repository
func NewPollRepository(db *gorm.DB) *PollRepository {
	return &PollRepository{db: db}
}

// Create creates a new poll
func (r *PollRepository) Create(poll *models.Poll) error {
	return r.db.Create(poll).Error
}

// GetByID retrieves a poll by ID
func (r *PollRepository) GetByID(id uuid.UUID) (*models.Poll, error) {
	var poll models.Poll
	err := r.db.First(&poll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

// GetByCaseID retrieves all polls for a case with pagination
func (r *PollRepository) GetByCaseID(caseID uuid.UUID, limit, offset int) ([]models.Poll, int64, error) {
	var polls []models.Poll
	var total int64

	if err := r.db.Model(&models.Poll{}).Where("case_id = ?", caseID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("case_id = ?", caseID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&polls).Error
	if err != nil {
		return nil, 0, err
	}

	return polls, total, nil
}

// GetByStatus retrieves polls in a given lifecycle status with pagination
func (r *PollRepository) GetByStatus(status models.PollStatus, limit, offset int) ([]models.Poll, int64, error) {
	var polls []models.Poll
	var total int64

	if err := r.db.Model(&models.Poll{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("status = ?", status).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&polls).Error
	if err != nil {
		return nil, 0, err
	}

	return polls, total, nil
}

// Update saves the full poll record
func (r *PollRepository) Update(poll *models.Poll) error {
	return r.db.Save(poll).Error
}

// UpdateStatusIf performs a conditional update gated on the poll's current
// status. The WHERE clause makes concurrent state transitions race-safe:
// the second writer matches zero rows and gets swapped == false.
func (r *PollRepository) UpdateStatusIf(id uuid.UUID, expected models.PollStatus, updates map[string]interface{}) (bool, error) {
	result := r.db.Model(&models.Poll{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AddEmailCounts atomically adds to the poll's email counters
func (r *PollRepository) AddEmailCounts(id uuid.UUID, sent, delivered int) error {
	return r.db.Model(&models.Poll{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"emails_sent":      gorm.Expr("emails_sent + ?", sent),
			"emails_delivered": gorm.Expr("emails_delivered + ?", delivered),
		}).Error
}

// IncrementVotesReceived atomically bumps the distinct-participant vote counter
func (r *PollRepository) IncrementVotesReceived(id uuid.UUID) error {
	return r.db.Model(&models.Poll{}).
		Where("id = ?", id).
		UpdateColumn("votes_received", gorm.Expr("votes_received + 1")).Error
}

// CountByCaseAndStatus counts a case's polls in any of the given statuses
func (r *PollRepository) CountByCaseAndStatus(caseID uuid.UUID, statuses ...models.PollStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.Poll{}).
		Where("case_id = ? AND status IN ?", caseID, statuses).
		Count(&total).Error
	return total, err
}

// Delete deletes a poll by ID
func (r *PollRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Poll{}, "id = ?", id).Error
}
