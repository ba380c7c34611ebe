package testutils

import (
	"fmt"
	"time"

	"mediation-scheduler/internal/database/models"

	"github.com/google/uuid"
)

// CaseFactory provides methods to create test Case data
type CaseFactory struct{}

// NewCaseFactory creates a new CaseFactory
func NewCaseFactory() *CaseFactory {
	return &CaseFactory{}
}

// Create creates a test Case with default values
func (f *CaseFactory) Create() *models.Case {
	id := uuid.New()
	c := &models.Case{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			CreatedBy: "mediator-1",
		},
		CaseNumber:  "MED-" + id.String()[:8],
		Title:       "Rental dispute Smith v. Jones",
		Description: "Disagreement over end-of-lease repairs",
		CaseType:    models.CaseTypeCivil,
		Status:      models.CaseStatusOpen,
		Location:    "Room 2, Community Mediation Center",
	}
	c.Participants = []models.Participant{
		{Name: "Alice Smith", Email: "alice@example.com", Role: "claimant"},
		{Name: "Bob Jones", Email: "bob@example.com", Role: "respondent"},
	}
	return c
}

// WithCreator sets a custom creator for the case
func (f *CaseFactory) WithCreator(createdBy string) *models.Case {
	c := f.Create()
	c.CreatedBy = createdBy
	return c
}

// PollFactory provides methods to create test Poll data
type PollFactory struct{}

// NewPollFactory creates a new PollFactory
func NewPollFactory() *PollFactory {
	return &PollFactory{}
}

// Create creates a draft test Poll with two options and two participants
func (f *PollFactory) Create() *models.Poll {
	poll := &models.Poll{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			CreatedBy: "mediator-1",
		},
		CaseID:      uuid.New(),
		Title:       "First mediation session",
		Description: "Please mark your availability",
		Location:    "Room 2",
		TimeZone:    "Europe/Berlin",
		Status:      models.PollStatusDraft,
	}
	poll.Options = []models.PollOption{
		{ID: "opt-1", Date: "2026-09-10", Time: "10:00", DurationMinutes: 90},
		{ID: "opt-2", Date: "2026-09-11", Time: "14:00", DurationMinutes: 90},
	}
	poll.Participants = []models.Participant{
		{Name: "Alice Smith", Email: "alice@example.com", Role: "claimant"},
		{Name: "Bob Jones", Email: "bob@example.com", Role: "respondent"},
	}
	return poll
}

// Active creates a poll already in the active state
func (f *PollFactory) Active() *models.Poll {
	poll := f.Create()
	poll.Status = models.PollStatusActive
	return poll
}

// ForCase creates a draft poll under the given case
func (f *PollFactory) ForCase(caseID uuid.UUID) *models.Poll {
	poll := f.Create()
	poll.CaseID = caseID
	return poll
}

// VoteFactory provides methods to create test Vote data
type VoteFactory struct{}

// NewVoteFactory creates a new VoteFactory
func NewVoteFactory() *VoteFactory {
	return &VoteFactory{}
}

// Create creates a test Vote for the given poll and option
func (f *VoteFactory) Create(pollID uuid.UUID, optionID, email string, status models.VoteStatus) models.Vote {
	return models.Vote{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PollID:           pollID,
		OptionID:         optionID,
		ParticipantEmail: email,
		ParticipantName:  "Participant " + email,
		Status:           status,
		VotedAt:          time.Now(),
	}
}

// Batch creates one vote per status for distinct participants on one option
func (f *VoteFactory) Batch(pollID uuid.UUID, optionID string, statuses ...models.VoteStatus) []models.Vote {
	votes := make([]models.Vote, 0, len(statuses))
	for i, status := range statuses {
		email := fmt.Sprintf("voter%d@example.com", i+1)
		votes = append(votes, f.Create(pollID, optionID, email, status))
	}
	return votes
}

// NoticeFactory provides methods to create test Notice data
type NoticeFactory struct{}

// NewNoticeFactory creates a new NoticeFactory
func NewNoticeFactory() *NoticeFactory {
	return &NoticeFactory{}
}

// Create creates a draft test Notice
func (f *NoticeFactory) Create(caseID uuid.UUID) *models.Notice {
	return &models.Notice{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			CreatedBy: "mediator-1",
		},
		CaseID:            caseID,
		Title:             "Mediation session confirmed",
		Body:              "The mediation session has been scheduled.",
		ScheduledDate:     "2026-09-10",
		ScheduledTime:     "10:00",
		ScheduledLocation: "Room 2",
		Status:            models.NoticeStatusDraft,
	}
}
