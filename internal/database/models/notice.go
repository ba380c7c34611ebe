package models

import (
	"github.com/google/uuid"
)

// Notice is a mediation notice sent to case participants once a time has
// been finalized, optionally with a PDF attachment from file storage.
type Notice struct {
	BaseModel
	CaseID uuid.UUID  `json:"case_id" gorm:"type:uuid;not null;index"`
	PollID *uuid.UUID `json:"poll_id,omitempty" gorm:"type:uuid;index"`

	Title string `json:"title" gorm:"size:200;not null"`
	Body  string `json:"body" gorm:"size:4000"`

	// Confirmed mediation time, copied from the finalized poll option
	ScheduledDate     string `json:"scheduled_date" gorm:"size:10"`
	ScheduledTime     string `json:"scheduled_time" gorm:"size:5"`
	ScheduledLocation string `json:"scheduled_location" gorm:"size:200"`

	AttachmentKey  string `json:"attachment_key,omitempty" gorm:"size:200"`
	AttachmentName string `json:"attachment_name,omitempty" gorm:"size:200"`

	Status       NoticeStatus `json:"status" gorm:"size:16;not null;default:'draft'"`
	EmailsSent   int          `json:"emails_sent" gorm:"not null;default:0"`
	EmailsFailed int          `json:"emails_failed" gorm:"not null;default:0"`
}

// TableName returns the table name for Notice
func (Notice) TableName() string {
	return "notices"
}

// CanSend reports whether the notice may still be dispatched
func (n *Notice) CanSend() bool {
	return n.Status == NoticeStatusDraft
}
