package repository

import (
	"errors"

	"mediation-scheduler/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteRepository handles database operations for votes
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// GetByPollID retrieves all votes for a poll
func (r *VoteRepository) GetByPollID(pollID uuid.UUID) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Where("poll_id = ?", pollID).Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

// GetByPollAndParticipant retrieves one participant's votes for a poll
func (r *VoteRepository) GetByPollAndParticipant(pollID uuid.UUID, participantEmail string) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.
		Where("poll_id = ? AND participant_email = ?", pollID, models.NormalizeEmail(participantEmail)).
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

// CountByPollAndParticipant counts a participant's existing votes for a poll
func (r *VoteRepository) CountByPollAndParticipant(pollID uuid.UUID, participantEmail string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Vote{}).
		Where("poll_id = ? AND participant_email = ?", pollID, models.NormalizeEmail(participantEmail)).
		Count(&total).Error
	return total, err
}

// Upsert writes a vote with last-write-wins semantics for the
// (poll, option, participant) key: an existing record is overwritten in
// place, keeping its identity, so aggregation never double-counts. The
// unique index on the triple backs this up against concurrent inserts.
func (r *VoteRepository) Upsert(vote *models.Vote) error {
	vote.ParticipantEmail = models.NormalizeEmail(vote.ParticipantEmail)

	var current models.Vote
	err := r.db.
		Where("poll_id = ? AND option_id = ? AND participant_email = ?",
			vote.PollID, vote.OptionID, vote.ParticipantEmail).
		First(&current).Error
	if err == nil {
		// Resolve same-key races by submission timestamp, not arrival order
		if vote.VotedAt.Before(current.VotedAt) {
			*vote = current
			return nil
		}
		updates := map[string]interface{}{
			"status":           vote.Status,
			"notes":            vote.Notes,
			"participant_name": vote.ParticipantName,
			"voted_at":         vote.VotedAt,
		}
		if err := r.db.Model(&models.Vote{}).Where("id = ?", current.ID).Updates(updates).Error; err != nil {
			return err
		}
		vote.ID = current.ID
		vote.CreatedAt = current.CreatedAt
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(vote).Error
}

// DeleteByPollID removes all votes of a poll (draft/cancelled poll deletion)
func (r *VoteRepository) DeleteByPollID(pollID uuid.UUID) error {
	return r.db.Delete(&models.Vote{}, "poll_id = ?", pollID).Error
}
