package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one participant's stance on one poll option. At most one current
// vote exists per (poll, option, participant email); resubmission overwrites
// the prior record in place. Votes are created only through vote submission
// and are never edited by the mediator.
type Vote struct {
	BaseModel
	PollID           uuid.UUID  `json:"poll_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_poll_option_email,priority:1"`
	OptionID         string     `json:"option_id" gorm:"size:40;not null;uniqueIndex:idx_votes_poll_option_email,priority:2"`
	ParticipantEmail string     `json:"participant_email" gorm:"size:120;not null;uniqueIndex:idx_votes_poll_option_email,priority:3"`
	ParticipantName  string     `json:"participant_name,omitempty" gorm:"size:120"`
	Status           VoteStatus `json:"status" gorm:"size:16;not null"`
	Notes            string     `json:"notes,omitempty" gorm:"size:1000"`
	VotedAt          time.Time  `json:"voted_at" gorm:"not null"`
}

// TableName returns the table name for Vote
func (Vote) TableName() string {
	return "votes"
}
