package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"mediation-scheduler/internal/auth"
	"mediation-scheduler/internal/database/models"
	"mediation-scheduler/internal/email"
	apperrors "mediation-scheduler/internal/errors"
	"mediation-scheduler/internal/logger"
	"mediation-scheduler/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// PollService handles business logic for scheduling polls
type PollService struct {
	repo         repository.PollRepositoryInterface
	caseRepo     repository.CaseRepositoryInterface
	voteRepo     repository.VoteRepositoryInterface
	deliveryRepo repository.EmailDeliveryRepositoryInterface
	sender       email.Sender
	auth         *auth.Service
	validator    *validator.Validate
	log          *logger.Logger
	sendTimeout  time.Duration
}

// NewPollService creates a new poll service
func NewPollService(
	repo repository.PollRepositoryInterface,
	caseRepo repository.CaseRepositoryInterface,
	voteRepo repository.VoteRepositoryInterface,
	deliveryRepo repository.EmailDeliveryRepositoryInterface,
	sender email.Sender,
	authService *auth.Service,
	validator *validator.Validate,
	sendTimeout time.Duration,
) *PollService {
	return &PollService{
		repo:         repo,
		caseRepo:     caseRepo,
		voteRepo:     voteRepo,
		deliveryRepo: deliveryRepo,
		sender:       sender,
		auth:         authService,
		validator:    validator,
		log:          logger.New(),
		sendTimeout:  sendTimeout,
	}
}

// PollOptionInput is the request shape for one candidate time option
type PollOptionInput struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
	Location        string `json:"location" validate:"max=200"`
}

// CreatePollRequest represents the request to create a poll
type CreatePollRequest struct {
	CaseID       string             `json:"case_id" validate:"required,uuid"`
	Title        string             `json:"title" validate:"required,max=200"`
	Description  string             `json:"description" validate:"max=2000"`
	Location     string             `json:"location" validate:"max=200"`
	TimeZone     string             `json:"time_zone" validate:"omitempty,max=64"`
	Options      []PollOptionInput  `json:"options" validate:"required,min=1,dive"`
	Participants []ParticipantInput `json:"participants" validate:"dive"`
}

// UpdatePollRequest represents the request to update a draft poll
type UpdatePollRequest struct {
	Title        string             `json:"title" validate:"required,max=200"`
	Description  string             `json:"description" validate:"max=2000"`
	Location     string             `json:"location" validate:"max=200"`
	TimeZone     string             `json:"time_zone" validate:"omitempty,max=64"`
	Options      []PollOptionInput  `json:"options" validate:"required,min=1,dive"`
	Participants []ParticipantInput `json:"participants" validate:"required,min=1,dive"`
}

// FinalizePollRequest selects the confirmed option for an active poll
type FinalizePollRequest struct {
	SelectedOptionID string `json:"selected_option_id" validate:"required"`
}

// PollResponse represents the response for poll operations
type PollResponse struct {
	ID                uuid.UUID            `json:"id"`
	CaseID            uuid.UUID            `json:"case_id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	Location          string               `json:"location"`
	TimeZone          string               `json:"time_zone"`
	Status            models.PollStatus    `json:"status"`
	Options           []models.PollOption  `json:"options"`
	Participants      []models.Participant `json:"participants"`
	FinalizedOptionID *string              `json:"finalized_option_id,omitempty"`
	EmailsSent        int                  `json:"emails_sent"`
	EmailsDelivered   int                  `json:"emails_delivered"`
	VotesReceived     int                  `json:"votes_received"`
	CreatedBy         string               `json:"created_by"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// PollListResponse represents a paginated list of polls
type PollListResponse struct {
	Polls    []PollResponse `json:"polls"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ActivatePollResponse reports the outcome of sending poll invitations
type ActivatePollResponse struct {
	Poll            PollResponse `json:"poll"`
	EmailsSent      int          `json:"emails_sent"`
	EmailsDelivered int          `json:"emails_delivered"`
	EmailsFailed    int          `json:"emails_failed"`
}

// PollResultsResponse is the derived tally view of a poll, computed fresh
// from stored votes on every request.
type PollResultsResponse struct {
	PollID            uuid.UUID         `json:"poll_id"`
	Status            models.PollStatus `json:"status"`
	Options           []RankedOption    `json:"options"`
	BestOption        *RankedOption     `json:"best_option,omitempty"`
	VotesReceived     int               `json:"votes_received"`
	ParticipantCount  int               `json:"participant_count"`
	ParticipationRate int               `json:"participation_rate"`
	FinalizedOptionID *string           `json:"finalized_option_id,omitempty"`
}

// ParticipantPollView is the poll as shown on a voting link: the poll's
// options plus the participant's own current votes, nothing about other
// participants.
type ParticipantPollView struct {
	PollID           uuid.UUID           `json:"poll_id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Location         string              `json:"location"`
	TimeZone         string              `json:"time_zone"`
	Status           models.PollStatus   `json:"status"`
	Options          []models.PollOption `json:"options"`
	ParticipantEmail string              `json:"participant_email"`
	ParticipantName  string              `json:"participant_name,omitempty"`
	Votes            []models.Vote       `json:"votes"`
}

// Create creates a draft poll under a case owned by the calling mediator.
// When the request carries no participants, the case's participant list is
// copied onto the poll.
func (s *PollService) Create(req *CreatePollRequest, callerID string) (*PollResponse, error) {
	caseID, err := uuid.Parse(req.CaseID)
	if err != nil {
		return nil, apperrors.NewValidationError("caseId", "case reference must be a valid id")
	}

	c, err := s.caseRepo.GetByID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	if c.CreatedBy != callerID {
		return nil, apperrors.ErrNotOwner
	}

	if len(req.Participants) == 0 {
		req.Participants = lo.Map(c.Participants, func(p models.Participant, _ int) ParticipantInput {
			return ParticipantInput{Name: p.Name, Email: p.Email, Role: p.Role}
		})
	}

	if result := ValidatePollData(req); !result.IsValid {
		return nil, apperrors.NewFieldValidationError(result.Errors)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if dup, ok := duplicateEmail(req.Participants); ok {
		return nil, apperrors.NewValidationError("participants", "duplicate participant email "+dup)
	}

	poll := &models.Poll{
		CaseID:       caseID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		TimeZone:     req.TimeZone,
		Status:       models.PollStatusDraft,
		Options:      toOptions(req.Options),
		Participants: toParticipants(req.Participants),
	}
	poll.CreatedBy = callerID

	if err := s.repo.Create(poll); err != nil {
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}

	s.log.WithPoll(poll.ID).WithField("case_id", caseID).Info("Poll created")
	return pollToResponse(poll), nil
}

// GetByID retrieves a poll by ID
func (s *PollService) GetByID(id uuid.UUID) (*PollResponse, error) {
	poll, err := s.getPoll(id)
	if err != nil {
		return nil, err
	}
	return pollToResponse(poll), nil
}

// ListByCase retrieves a case's polls with pagination
func (s *PollService) ListByCase(caseID uuid.UUID, page, pageSize int) (*PollListResponse, error) {
	offset := (page - 1) * pageSize
	polls, total, err := s.repo.GetByCaseID(caseID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}

	return &PollListResponse{
		Polls: lo.Map(polls, func(p models.Poll, _ int) PollResponse {
			return *pollToResponse(&p)
		}),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update replaces the fields of a draft poll. Option inputs identical in
// date and time to an existing option keep that option's id, so votes
// survive edits that merely reorder or reword; genuinely new inputs get
// fresh ids.
func (s *PollService) Update(id uuid.UUID, req *UpdatePollRequest, callerID string) (*PollResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	poll, err := s.getPoll(id)
	if err != nil {
		return nil, err
	}
	if poll.CreatedBy != callerID {
		return nil, apperrors.ErrNotOwner
	}
	if !poll.IsEditable() {
		return nil, apperrors.ErrPollNotDraft
	}
	if dup, ok := duplicateEmail(req.Participants); ok {
		return nil, apperrors.NewValidationError("participants", "duplicate participant email "+dup)
	}
	for _, p := range req.Participants {
		if !validEmail(p.Email) {
			return nil, apperrors.NewValidationError("participants", "participant email "+p.Email+" is invalid")
		}
	}

	poll.Title = req.Title
	poll.Description = req.Description
	poll.Location = req.Location
	poll.TimeZone = req.TimeZone
	poll.Options = mergeOptions(poll.Options, req.Options)
	poll.Participants = toParticipants(req.Participants)

	if err := s.repo.Update(poll); err != nil {
		return nil, fmt.Errorf("failed to update poll: %w", err)
	}

	return pollToResponse(poll), nil
}

// Activate transitions a draft poll to active and sends each participant a
// personal voting link. The status transition is committed before any email
// leaves, so a partial send failure never rolls the poll back to draft;
// failed recipients are reported and recorded instead.
func (s *PollService) Activate(ctx context.Context, id uuid.UUID, callerID string) (*ActivatePollResponse, error) {
	poll, err := s.getPoll(id)
	if err != nil {
		return nil, err
	}
	if poll.CreatedBy != callerID {
		return nil, apperrors.ErrNotOwner
	}
	if !poll.CanActivate() {
		if poll.Status != models.PollStatusDraft {
			return nil, apperrors.ErrPollNotDraft
		}
		return nil, apperrors.ErrPollNotActivatable
	}

	ok, err := s.repo.UpdateStatusIf(id, models.PollStatusDraft, map[string]interface{}{
		"status": models.PollStatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to activate poll: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrPollConcurrentUpdate
	}
	poll.Status = models.PollStatusActive

	msgs := make([]email.Message, 0, len(poll.Participants))
	for _, p := range poll.Participants {
		votingURL, err := s.auth.VotingURL(poll.ID, p.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to build voting link: %w", err)
		}
		msgs = append(msgs, email.Message{
			To:       p.Email,
			Subject:  fmt.Sprintf("Scheduling poll: %s", poll.Title),
			HTMLBody: invitationBody(poll, p, votingURL),
		})
	}

	results := email.SendBatch(ctx, s.sender, msgs, s.sendTimeout)
	sent := email.CountSent(results)
	failed := len(results) - sent

	deliveries := lo.Map(results, func(r email.Result, _ int) models.EmailDelivery {
		d := models.EmailDelivery{
			SourceType: models.DeliverySourcePollInvitation,
			SourceID:   poll.ID,
			Recipient:  r.Recipient,
			Status:     models.DeliveryStatusSent,
			DeliveryID: r.DeliveryID,
		}
		if r.Err != nil {
			d.Status = models.DeliveryStatusFailed
			d.Error = r.Err.Error()
		}
		return d
	})
	if err := s.deliveryRepo.CreateBatch(deliveries); err != nil {
		s.log.WithPoll(poll.ID).WithError(err).Error("Failed to record invitation deliveries")
	}

	if err := s.repo.AddEmailCounts(poll.ID, len(results), sent); err != nil {
		s.log.WithPoll(poll.ID).WithError(err).Error("Failed to update poll email counters")
	} else {
		poll.EmailsSent += len(results)
		poll.EmailsDelivered += sent
	}

	s.log.WithPoll(poll.ID).WithFields(map[string]interface{}{
		"emails_sent":   sent,
		"emails_failed": failed,
	}).Info("Poll activated")

	return &ActivatePollResponse{
		Poll:            *pollToResponse(poll),
		EmailsSent:      len(results),
		EmailsDelivered: sent,
		EmailsFailed:    failed,
	}, nil
}

// Finalize confirms one option of an active poll. Checks run in a fixed
// order so callers get stable errors: poll state first, then the selected
// option, then vote presence; the transition itself is conditional on the
// poll still being active.
func (s *PollService) Finalize(id uuid.UUID, req *FinalizePollRequest, callerID string) (*PollResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	poll, err := s.getPoll(id)
	if err != nil {
		return nil, err
	}
	if poll.CreatedBy != callerID {
		return nil, apperrors.ErrNotOwner
	}
	if poll.Status != models.PollStatusActive {
		return nil, apperrors.ErrPollNotActive
	}
	if !poll.HasOption(req.SelectedOptionID) {
		return nil, apperrors.ErrOptionNotInPoll
	}
	if poll.VotesReceived == 0 {
		return nil, apperrors.ErrNoVotesReceived
	}

	ok, err := s.repo.UpdateStatusIf(id, models.PollStatusActive, map[string]interface{}{
		"status":              models.PollStatusFinalized,
		"finalized_option_id": req.SelectedOptionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to finalize poll: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrPollConcurrentUpdate
	}

	poll.Status = models.PollStatusFinalized
	poll.FinalizedOptionID = &req.SelectedOptionID

	s.log.WithPoll(poll.ID).WithField("option_id", req.SelectedOptionID).Info("Poll finalized")
	return pollToResponse(poll), nil
}

// Cancel transitions a draft or active poll to cancelled. Stored votes are
// kept for the record; the poll simply stops accepting new ones.
func (s *PollService) Cancel(id uuid.UUID, callerID string) (*PollResponse, error) {
	poll, err := s.getPoll(id)
	if err != nil {
		return nil, err
	}
	if poll.CreatedBy != callerID {
		return nil, apperrors.ErrNotOwner
	}
	if !poll.CanCancel() {
		return nil, apperrors.ErrPollNotCancellable
	}

	ok, err := s.repo.UpdateStatusIf(id, poll.Status, map[string]interface{}{
		"status": models.PollStatusCancelled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel poll: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrPollConcurrentUpdate
	}

	poll.Status = models.PollStatusCancelled
	s.log.WithPoll(poll.ID).Info("Poll cancelled")
	return pollToResponse(poll), nil
}

// Delete hard-deletes a draft or cancelled poll together with its votes
func (s *PollService) Delete(id uuid.UUID, callerID string) error {
	poll, err := s.getPoll(id)
	if err != nil {
		return err
	}
	if poll.CreatedBy != callerID {
		return apperrors.ErrNotOwner
	}
	if !poll.CanDelete() {
		return apperrors.ErrPollNotDeletable
	}

	if err := s.voteRepo.DeleteByPollID(id); err != nil {
		return fmt.Errorf("failed to delete poll votes: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	return nil
}

// Results computes the poll's tally view from the currently stored votes
func (s *PollService) Results(id uuid.UUID) (*PollResultsResponse, error) {
	poll, err := s.getPoll(id)
	if err != nil {
		return nil, err
	}

	votes, err := s.voteRepo.GetByPollID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load poll votes: %w", err)
	}

	return &PollResultsResponse{
		PollID:            poll.ID,
		Status:            poll.Status,
		Options:           RankOptions(poll, votes),
		BestOption:        BestPollOption(poll, votes),
		VotesReceived:     poll.VotesReceived,
		ParticipantCount:  len(poll.Participants),
		ParticipationRate: ParticipationRate(poll),
		FinalizedOptionID: poll.FinalizedOptionID,
	}, nil
}

// ParticipantView loads the poll as one participant sees it on their
// voting link: the options plus only their own votes.
func (s *PollService) ParticipantView(id uuid.UUID, participantEmail string) (*ParticipantPollView, error) {
	poll, err := s.getPoll(id)
	if err != nil {
		return nil, err
	}

	participant, ok := poll.Participant(participantEmail)
	if !ok {
		return nil, apperrors.ErrVoterNotParticipant
	}

	votes, err := s.voteRepo.GetByPollAndParticipant(id, participant.NormalizedEmail())
	if err != nil {
		return nil, fmt.Errorf("failed to load participant votes: %w", err)
	}

	return &ParticipantPollView{
		PollID:           poll.ID,
		Title:            poll.Title,
		Description:      poll.Description,
		Location:         poll.Location,
		TimeZone:         poll.TimeZone,
		Status:           poll.Status,
		Options:          poll.Options,
		ParticipantEmail: participant.NormalizedEmail(),
		ParticipantName:  participant.Name,
		Votes:            votes,
	}, nil
}

func (s *PollService) getPoll(id uuid.UUID) (*models.Poll, error) {
	poll, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	return poll, nil
}

func toOptions(inputs []PollOptionInput) []models.PollOption {
	return lo.Map(inputs, func(o PollOptionInput, _ int) models.PollOption {
		return models.NewPollOption(o.Date, o.Time, o.DurationMinutes, o.Location)
	})
}

// mergeOptions maps option inputs onto existing options by date and time
// so option ids, and with them any draft-phase votes, stay stable across
// edits.
func mergeOptions(existing []models.PollOption, inputs []PollOptionInput) []models.PollOption {
	merged := make([]models.PollOption, 0, len(inputs))
	for _, in := range inputs {
		keep, found := lo.Find(existing, func(o models.PollOption) bool {
			return o.Date == in.Date && o.Time == in.Time
		})
		if found {
			if in.DurationMinutes > 0 {
				keep.DurationMinutes = in.DurationMinutes
			}
			keep.Location = in.Location
			merged = append(merged, keep)
			continue
		}
		merged = append(merged, models.NewPollOption(in.Date, in.Time, in.DurationMinutes, in.Location))
	}
	return merged
}

func invitationBody(poll *models.Poll, p models.Participant, votingURL string) string {
	name := p.Name
	if name == "" {
		name = p.Email
	}
	return fmt.Sprintf(
		`<p>Dear %s,</p>
<p>You are invited to vote on a time for the mediation session <b>%s</b>.</p>
<p><a href="%s">Open the scheduling poll</a> and mark your availability for each proposed time.</p>
<p>This link is personal. Please do not forward it.</p>`,
		html.EscapeString(name), html.EscapeString(poll.Title), votingURL)
}

func pollToResponse(poll *models.Poll) *PollResponse {
	return &PollResponse{
		ID:                poll.ID,
		CaseID:            poll.CaseID,
		Title:             poll.Title,
		Description:       poll.Description,
		Location:          poll.Location,
		TimeZone:          poll.TimeZone,
		Status:            poll.Status,
		Options:           poll.Options,
		Participants:      poll.Participants,
		FinalizedOptionID: poll.FinalizedOptionID,
		EmailsSent:        poll.EmailsSent,
		EmailsDelivered:   poll.EmailsDelivered,
		VotesReceived:     poll.VotesReceived,
		CreatedBy:         poll.CreatedBy,
		CreatedAt:         poll.CreatedAt,
		UpdatedAt:         poll.UpdatedAt,
	}
}
