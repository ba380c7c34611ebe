package service

import (
	"errors"
	"fmt"
	"time"

	"mediation-scheduler/internal/database/models"
	apperrors "mediation-scheduler/internal/errors"
	"mediation-scheduler/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// CaseService handles business logic for mediation cases
type CaseService struct {
	repo      repository.CaseRepositoryInterface
	pollRepo  repository.PollRepositoryInterface
	validator *validator.Validate
}

// NewCaseService creates a new case service
func NewCaseService(repo repository.CaseRepositoryInterface, pollRepo repository.PollRepositoryInterface, validator *validator.Validate) *CaseService {
	return &CaseService{
		repo:      repo,
		pollRepo:  pollRepo,
		validator: validator,
	}
}

// ParticipantInput is the request shape for one case or poll participant
type ParticipantInput struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

// CreateCaseRequest represents the request to create a case
type CreateCaseRequest struct {
	CaseNumber   string             `json:"case_number" validate:"required,max=40"`
	Title        string             `json:"title" validate:"required,max=200"`
	Description  string             `json:"description" validate:"max=2000"`
	CaseType     models.CaseType    `json:"case_type" validate:"required"`
	Location     string             `json:"location" validate:"max=200"`
	Participants []ParticipantInput `json:"participants" validate:"dive"`
}

// UpdateCaseRequest represents the request to update a case
type UpdateCaseRequest struct {
	Title        string             `json:"title" validate:"required,max=200"`
	Description  string             `json:"description" validate:"max=2000"`
	Status       *models.CaseStatus `json:"status,omitempty"`
	Location     string             `json:"location" validate:"max=200"`
	Participants []ParticipantInput `json:"participants" validate:"dive"`
}

// CaseResponse represents the response for case operations
type CaseResponse struct {
	ID           uuid.UUID            `json:"id"`
	CaseNumber   string               `json:"case_number"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	CaseType     models.CaseType      `json:"case_type"`
	Status       models.CaseStatus    `json:"status"`
	Location     string               `json:"location"`
	Participants []models.Participant `json:"participants"`
	CreatedBy    string               `json:"created_by"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// CaseListResponse represents a paginated list of cases
type CaseListResponse struct {
	Cases    []CaseResponse `json:"cases"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new case owned by the calling mediator
func (s *CaseService) Create(req *CreateCaseRequest, createdBy string) (*CaseResponse, error) {
	if result := ValidateCaseData(req); !result.IsValid {
		return nil, apperrors.NewFieldValidationError(result.Errors)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByCaseNumber(req.CaseNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing case: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("caseNumber", "case number is already in use")
	}

	c := &models.Case{
		CaseNumber:   req.CaseNumber,
		Title:        req.Title,
		Description:  req.Description,
		CaseType:     req.CaseType,
		Status:       models.CaseStatusOpen,
		Location:     req.Location,
		Participants: toParticipants(req.Participants),
	}
	c.CreatedBy = createdBy

	if err := s.repo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	return caseToResponse(c), nil
}

// GetByID retrieves a case by ID
func (s *CaseService) GetByID(id uuid.UUID) (*CaseResponse, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return caseToResponse(c), nil
}

// List retrieves the calling mediator's cases with pagination
func (s *CaseService) List(createdBy string, page, pageSize int) (*CaseListResponse, error) {
	offset := (page - 1) * pageSize
	cases, total, err := s.repo.GetByCreator(createdBy, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	return &CaseListResponse{
		Cases: lo.Map(cases, func(c models.Case, _ int) CaseResponse {
			return *caseToResponse(&c)
		}),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a case; only the mediator who created it may do so
func (s *CaseService) Update(id uuid.UUID, req *UpdateCaseRequest, callerID string) (*CaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	if c.CreatedBy != callerID {
		return nil, apperrors.ErrNotOwner
	}

	for _, p := range req.Participants {
		if !validEmail(p.Email) {
			return nil, apperrors.NewValidationError("participants", "participant email "+p.Email+" is invalid")
		}
	}
	if dup, ok := duplicateEmail(req.Participants); ok {
		return nil, apperrors.NewValidationError("participants", "duplicate participant email "+dup)
	}

	c.Title = req.Title
	c.Description = req.Description
	c.Location = req.Location
	c.Participants = toParticipants(req.Participants)
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown case status")
		}
		c.Status = *req.Status
	}

	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}

	return caseToResponse(c), nil
}

// Delete deletes a case unless it still has active or finalized polls
func (s *CaseService) Delete(id uuid.UUID, callerID string) error {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCaseNotFound
		}
		return fmt.Errorf("failed to get case: %w", err)
	}
	if c.CreatedBy != callerID {
		return apperrors.ErrNotOwner
	}

	undeletable, err := s.pollRepo.CountByCaseAndStatus(id, models.PollStatusActive, models.PollStatusFinalized)
	if err != nil {
		return fmt.Errorf("failed to check case polls: %w", err)
	}
	if undeletable > 0 {
		return apperrors.ErrCaseHasActivePolls
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

func toParticipants(inputs []ParticipantInput) []models.Participant {
	return lo.Map(inputs, func(p ParticipantInput, _ int) models.Participant {
		return models.Participant{
			Name:  p.Name,
			Email: models.NormalizeEmail(p.Email),
			Role:  p.Role,
		}
	})
}

func caseToResponse(c *models.Case) *CaseResponse {
	return &CaseResponse{
		ID:           c.ID,
		CaseNumber:   c.CaseNumber,
		Title:        c.Title,
		Description:  c.Description,
		CaseType:     c.CaseType,
		Status:       c.Status,
		Location:     c.Location,
		Participants: c.Participants,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
