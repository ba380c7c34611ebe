package service

import (
	"errors"
	"fmt"
	"time"

	"mediation-scheduler/internal/database/models"
	apperrors "mediation-scheduler/internal/errors"
	"mediation-scheduler/internal/logger"
	"mediation-scheduler/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteService coordinates vote submission from participant voting links
type VoteService struct {
	pollRepo repository.PollRepositoryInterface
	voteRepo repository.VoteRepositoryInterface
	log      *logger.Logger
}

// NewVoteService creates a new vote service
func NewVoteService(pollRepo repository.PollRepositoryInterface, voteRepo repository.VoteRepositoryInterface) *VoteService {
	return &VoteService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
		log:      logger.New(),
	}
}

// VoteInput is one participant response for one option
type VoteInput struct {
	OptionID string            `json:"option_id"`
	Status   models.VoteStatus `json:"status"`
	Notes    string            `json:"notes"`
}

// SubmitVotesRequest carries a participant's batch of responses
type SubmitVotesRequest struct {
	ParticipantName string      `json:"participant_name"`
	Votes           []VoteInput `json:"votes"`
}

// VoteItemResult is the per-option outcome of a vote batch
type VoteItemResult struct {
	OptionID string            `json:"option_id"`
	Status   models.VoteStatus `json:"status"`
	Applied  bool              `json:"applied"`
	Error    string            `json:"error,omitempty"`
}

// SubmitVotesResponse reports what a vote batch changed
type SubmitVotesResponse struct {
	PollID          uuid.UUID        `json:"poll_id"`
	Results         []VoteItemResult `json:"results"`
	VotesApplied    int              `json:"votes_applied"`
	FirstSubmission bool             `json:"first_submission"`
}

// SubmitVotes stores a participant's responses for a set of poll options.
// The whole batch is validated before anything is written: an unknown
// option, an unknown status, or a duplicate option in the batch rejects
// the entire submission with no partial write. Once validation passes the
// items are applied independently, one upsert per option, so a storage
// failure on one item never blocks the others.
//
// Resubmitting is always allowed while the poll is active; each upsert
// replaces the participant's previous response for that option. The poll's
// votes-received counter counts participants, not rows: it is incremented
// only when this participant goes from no stored votes to some.
func (s *VoteService) SubmitVotes(pollID uuid.UUID, participantEmail string, req *SubmitVotesRequest) (*SubmitVotesResponse, error) {
	poll, err := s.pollRepo.GetByID(pollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	if poll.Status != models.PollStatusActive {
		return nil, apperrors.ErrPollNotActive
	}

	participant, ok := poll.Participant(participantEmail)
	if !ok {
		return nil, apperrors.ErrVoterNotParticipant
	}
	email := participant.NormalizedEmail()

	name := req.ParticipantName
	if name == "" {
		name = participant.Name
	}

	if len(req.Votes) == 0 {
		return nil, apperrors.NewValidationError("votes", "at least one vote is required")
	}
	seen := map[string]bool{}
	for _, v := range req.Votes {
		if !poll.HasOption(v.OptionID) {
			return nil, apperrors.ErrOptionNotInPoll
		}
		if !v.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown vote status "+string(v.Status))
		}
		if seen[v.OptionID] {
			return nil, apperrors.ErrDuplicateOptionID
		}
		seen[v.OptionID] = true
	}

	existing, err := s.voteRepo.CountByPollAndParticipant(pollID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing votes: %w", err)
	}

	now := time.Now().UTC()
	results := make([]VoteItemResult, 0, len(req.Votes))
	applied := 0
	for _, v := range req.Votes {
		vote := &models.Vote{
			PollID:           pollID,
			OptionID:         v.OptionID,
			ParticipantEmail: email,
			ParticipantName:  name,
			Status:           v.Status,
			Notes:            v.Notes,
			VotedAt:          now,
		}
		item := VoteItemResult{OptionID: v.OptionID, Status: v.Status}
		if err := s.voteRepo.Upsert(vote); err != nil {
			item.Error = err.Error()
			s.log.WithPoll(pollID).WithField("option_id", v.OptionID).WithError(err).Error("Failed to store vote")
		} else {
			item.Applied = true
			applied++
		}
		results = append(results, item)
	}

	first := existing == 0 && applied > 0
	if first {
		if err := s.pollRepo.IncrementVotesReceived(pollID); err != nil {
			s.log.WithPoll(pollID).WithError(err).Error("Failed to update votes-received counter")
		}
	}

	s.log.WithPoll(pollID).WithFields(map[string]interface{}{
		"participant":   email,
		"votes_applied": applied,
	}).Info("Votes submitted")

	return &SubmitVotesResponse{
		PollID:          pollID,
		Results:         results,
		VotesApplied:    applied,
		FirstSubmission: first,
	}, nil
}

// ListByPoll returns every stored vote for a poll, for the mediator view
func (s *VoteService) ListByPoll(pollID uuid.UUID) ([]models.Vote, error) {
	if _, err := s.pollRepo.GetByID(pollID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	votes, err := s.voteRepo.GetByPollID(pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes: %w", err)
	}
	return votes, nil
}
