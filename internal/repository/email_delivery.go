package repository

import (
	"mediation-scheduler/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailDeliveryRepository handles the per-recipient delivery audit table
type EmailDeliveryRepository struct {
	db *gorm.DB
}

// NewEmailDeliveryRepository creates a new email delivery repository
func NewEmailDeliveryRepository(db *gorm.DB) *EmailDeliveryRepository {
	return &EmailDeliveryRepository{db: db}
}

// Create records one delivery outcome
func (r *EmailDeliveryRepository) Create(delivery *models.EmailDelivery) error {
	return r.db.Create(delivery).Error
}

// CreateBatch records the outcomes of one batch send
func (r *EmailDeliveryRepository) CreateBatch(deliveries []models.EmailDelivery) error {
	if len(deliveries) == 0 {
		return nil
	}
	return r.db.Create(&deliveries).Error
}

// GetBySource retrieves all delivery records of one send source
func (r *EmailDeliveryRepository) GetBySource(sourceType models.DeliverySource, sourceID uuid.UUID) ([]models.EmailDelivery, error) {
	var deliveries []models.EmailDelivery
	err := r.db.
		Where("source_type = ? AND source_id = ?", sourceType, sourceID).
		Order("created_at ASC").
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}
