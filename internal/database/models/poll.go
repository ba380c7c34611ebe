package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PollOption is one candidate mediation time within a poll. Options are
// immutable once created and may be removed only while the poll is draft.
type PollOption struct {
	ID              string `json:"id"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location,omitempty"`
}

// DefaultOptionDuration is applied when an option is created without one
const DefaultOptionDuration = 60

// NewPollOption constructs an option with a generated stable id and
// structural defaults. The id must stay stable for the poll's lifetime
// so votes can reference it.
func NewPollOption(date, timeOfDay string, durationMinutes int, location string) PollOption {
	if durationMinutes <= 0 {
		durationMinutes = DefaultOptionDuration
	}
	return PollOption{
		ID:              uuid.NewString(),
		Date:            date,
		Time:            timeOfDay,
		DurationMinutes: durationMinutes,
		Location:        location,
	}
}

// EffectiveLocation returns the option's location, falling back to the poll's
func (o PollOption) EffectiveLocation(pollLocation string) string {
	if o.Location != "" {
		return o.Location
	}
	return pollLocation
}

// Poll is a scheduling request: candidate time options sent to case
// participants for availability voting, owned by the mediator who
// created the case.
type Poll struct {
	BaseModel
	CaseID      uuid.UUID  `json:"case_id" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Description string     `json:"description" gorm:"size:2000"`
	Location    string     `json:"location" gorm:"size:200"`
	TimeZone    string     `json:"time_zone" gorm:"size:64"`
	Status      PollStatus `json:"status" gorm:"size:16;not null;default:'draft';index"`

	Options      datatypes.JSONSlice[PollOption]  `json:"options"`
	Participants datatypes.JSONSlice[Participant] `json:"participants"`

	// Set only when Status == finalized; references an id in Options.
	FinalizedOptionID *string `json:"finalized_option_id,omitempty" gorm:"size:40"`

	EmailsSent      int `json:"emails_sent" gorm:"not null;default:0"`
	EmailsDelivered int `json:"emails_delivered" gorm:"not null;default:0"`
	VotesReceived   int `json:"votes_received" gorm:"not null;default:0"`
}

// TableName returns the table name for Poll
func (Poll) TableName() string {
	return "polls"
}

// CanActivate reports whether the draft -> active transition is legal
func (p *Poll) CanActivate() bool {
	return p.Status == PollStatusDraft && len(p.Options) >= 1 && len(p.Participants) >= 1
}

// CanFinalize reports whether the active -> finalized transition is legal.
// The selected option id is checked separately by the finalize operation.
func (p *Poll) CanFinalize() bool {
	return p.Status == PollStatusActive && p.VotesReceived > 0
}

// CanCancel reports whether the poll may move to cancelled
func (p *Poll) CanCancel() bool {
	return p.Status == PollStatusDraft || p.Status == PollStatusActive
}

// CanDelete reports whether the poll may be hard-deleted. Active and
// finalized polls are never deleted.
func (p *Poll) CanDelete() bool {
	return p.Status == PollStatusDraft || p.Status == PollStatusCancelled
}

// IsEditable reports whether poll fields and options may still change
func (p *Poll) IsEditable() bool {
	return p.Status == PollStatusDraft
}

// Option returns the option with the given id
func (p *Poll) Option(optionID string) (PollOption, bool) {
	for _, o := range p.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return PollOption{}, false
}

// HasOption reports whether an option id belongs to this poll
func (p *Poll) HasOption(optionID string) bool {
	_, ok := p.Option(optionID)
	return ok
}

// Participant looks up a poll participant by email, case-insensitively
func (p *Poll) Participant(email string) (Participant, bool) {
	return FindParticipant(p.Participants, email)
}

// HasParticipant reports whether the email belongs to a poll participant
func (p *Poll) HasParticipant(email string) bool {
	_, ok := p.Participant(email)
	return ok
}

// FinalizedStateConsistent reports whether FinalizedOptionID is set iff the
// poll is finalized, and references an existing option.
func (p *Poll) FinalizedStateConsistent() bool {
	if p.Status == PollStatusFinalized {
		return p.FinalizedOptionID != nil && p.HasOption(*p.FinalizedOptionID)
	}
	return p.FinalizedOptionID == nil
}
