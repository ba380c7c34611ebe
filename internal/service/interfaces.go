package service

import (
	"context"

	"mediation-scheduler/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CaseServiceInterface defines the interface for case service
type CaseServiceInterface interface {
	Create(req *CreateCaseRequest, createdBy string) (*CaseResponse, error)
	GetByID(id uuid.UUID) (*CaseResponse, error)
	List(createdBy string, page, pageSize int) (*CaseListResponse, error)
	Update(id uuid.UUID, req *UpdateCaseRequest, callerID string) (*CaseResponse, error)
	Delete(id uuid.UUID, callerID string) error
}

// PollServiceInterface defines the interface for poll service
type PollServiceInterface interface {
	Create(req *CreatePollRequest, callerID string) (*PollResponse, error)
	GetByID(id uuid.UUID) (*PollResponse, error)
	ListByCase(caseID uuid.UUID, page, pageSize int) (*PollListResponse, error)
	Update(id uuid.UUID, req *UpdatePollRequest, callerID string) (*PollResponse, error)
	Activate(ctx context.Context, id uuid.UUID, callerID string) (*ActivatePollResponse, error)
	Finalize(id uuid.UUID, req *FinalizePollRequest, callerID string) (*PollResponse, error)
	Cancel(id uuid.UUID, callerID string) (*PollResponse, error)
	Delete(id uuid.UUID, callerID string) error
	Results(id uuid.UUID) (*PollResultsResponse, error)
	ParticipantView(id uuid.UUID, participantEmail string) (*ParticipantPollView, error)
}

// VoteServiceInterface defines the interface for vote service
type VoteServiceInterface interface {
	SubmitVotes(pollID uuid.UUID, participantEmail string, req *SubmitVotesRequest) (*SubmitVotesResponse, error)
	ListByPoll(pollID uuid.UUID) ([]models.Vote, error)
}

// NoticeServiceInterface defines the interface for notice service
type NoticeServiceInterface interface {
	Create(req *CreateNoticeRequest, callerID string) (*NoticeResponse, error)
	GetByID(id uuid.UUID) (*NoticeResponse, error)
	ListByCase(caseID uuid.UUID, page, pageSize int) (*NoticeListResponse, error)
	Update(id uuid.UUID, req *UpdateNoticeRequest, callerID string) (*NoticeResponse, error)
	Delete(id uuid.UUID, callerID string) error
	AttachPDF(id uuid.UUID, filename string, data []byte, callerID string) (*NoticeResponse, error)
	AttachmentURL(id uuid.UUID) (string, error)
	Send(ctx context.Context, id uuid.UUID, callerID string) (*SendNoticeResponse, error)
}
