package models

import (
	"github.com/google/uuid"
)

// EmailDelivery is the per-recipient audit record of one email send.
// Delivery failures are recorded here instead of failing the operation
// that triggered the send.
type EmailDelivery struct {
	BaseModel
	SourceType DeliverySource `json:"source_type" gorm:"size:20;not null;index:idx_deliveries_source"`
	SourceID   uuid.UUID      `json:"source_id" gorm:"type:uuid;not null;index:idx_deliveries_source"`
	Recipient  string         `json:"recipient" gorm:"size:120;not null"`
	Status     DeliveryStatus `json:"status" gorm:"size:10;not null"`
	DeliveryID string         `json:"delivery_id,omitempty" gorm:"size:80"`
	Error      string         `json:"error,omitempty" gorm:"size:500"`
}

// TableName returns the table name for EmailDelivery
func (EmailDelivery) TableName() string {
	return "email_deliveries"
}
