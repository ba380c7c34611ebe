package repository

import (
	"mediation-scheduler/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CaseRepositoryInterface defines the interface for case repository operations
type CaseRepositoryInterface interface {
	Create(c *models.Case) error
	GetByID(id uuid.UUID) (*models.Case, error)
	GetByCaseNumber(caseNumber string) (*models.Case, error)
	GetAll(limit, offset int) ([]models.Case, int64, error)
	GetByCreator(createdBy string, limit, offset int) ([]models.Case, int64, error)
	GetWithPolls(id uuid.UUID) (*models.Case, error)
	Update(c *models.Case) error
	Delete(id uuid.UUID) error
}

// PollRepositoryInterface defines the interface for poll repository operations
type PollRepositoryInterface interface {
	Create(poll *models.Poll) error
	GetByID(id uuid.UUID) (*models.Poll, error)
	GetByCaseID(caseID uuid.UUID, limit, offset int) ([]models.Poll, int64, error)
	GetByStatus(status models.PollStatus, limit, offset int) ([]models.Poll, int64, error)
	Update(poll *models.Poll) error
	// UpdateStatusIf applies updates only while the poll still has the
	// expected status. Returns false when the conditional write matched
	// no row, which callers treat as a concurrent-update conflict.
	UpdateStatusIf(id uuid.UUID, expected models.PollStatus, updates map[string]interface{}) (bool, error)
	AddEmailCounts(id uuid.UUID, sent, delivered int) error
	IncrementVotesReceived(id uuid.UUID) error
	CountByCaseAndStatus(caseID uuid.UUID, statuses ...models.PollStatus) (int64, error)
	Delete(id uuid.UUID) error
}

// VoteRepositoryInterface defines the interface for vote repository operations
type VoteRepositoryInterface interface {
	GetByPollID(pollID uuid.UUID) ([]models.Vote, error)
	GetByPollAndParticipant(pollID uuid.UUID, participantEmail string) ([]models.Vote, error)
	CountByPollAndParticipant(pollID uuid.UUID, participantEmail string) (int64, error)
	Upsert(vote *models.Vote) error
	DeleteByPollID(pollID uuid.UUID) error
}

// NoticeRepositoryInterface defines the interface for notice repository operations
type NoticeRepositoryInterface interface {
	Create(notice *models.Notice) error
	GetByID(id uuid.UUID) (*models.Notice, error)
	GetByCaseID(caseID uuid.UUID, limit, offset int) ([]models.Notice, int64, error)
	Update(notice *models.Notice) error
	Delete(id uuid.UUID) error
}

// EmailDeliveryRepositoryInterface defines the interface for delivery audit records
type EmailDeliveryRepositoryInterface interface {
	Create(delivery *models.EmailDelivery) error
	CreateBatch(deliveries []models.EmailDelivery) error
	GetBySource(sourceType models.DeliverySource, sourceID uuid.UUID) ([]models.EmailDelivery, error)
}
