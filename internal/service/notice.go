package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"mediation-scheduler/internal/database/models"
	"mediation-scheduler/internal/email"
	apperrors "mediation-scheduler/internal/errors"
	"mediation-scheduler/internal/logger"
	"mediation-scheduler/internal/repository"
	"mediation-scheduler/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// NoticeService handles business logic for mediation notices
type NoticeService struct {
	repo         repository.NoticeRepositoryInterface
	caseRepo     repository.CaseRepositoryInterface
	pollRepo     repository.PollRepositoryInterface
	deliveryRepo repository.EmailDeliveryRepositoryInterface
	sender       email.Sender
	store        storage.Store
	validator    *validator.Validate
	log          *logger.Logger
	sendTimeout  time.Duration
	urlTTL       time.Duration
	maxAttach    int64
}

// NewNoticeService creates a new notice service
func NewNoticeService(
	repo repository.NoticeRepositoryInterface,
	caseRepo repository.CaseRepositoryInterface,
	pollRepo repository.PollRepositoryInterface,
	deliveryRepo repository.EmailDeliveryRepositoryInterface,
	sender email.Sender,
	store storage.Store,
	validator *validator.Validate,
	sendTimeout, urlTTL time.Duration,
	maxAttachmentBytes int64,
) *NoticeService {
	return &NoticeService{
		repo:         repo,
		caseRepo:     caseRepo,
		pollRepo:     pollRepo,
		deliveryRepo: deliveryRepo,
		sender:       sender,
		store:        store,
		validator:    validator,
		log:          logger.New(),
		sendTimeout:  sendTimeout,
		urlTTL:       urlTTL,
		maxAttach:    maxAttachmentBytes,
	}
}

// CreateNoticeRequest represents the request to create a notice
type CreateNoticeRequest struct {
	CaseID            string `json:"case_id" validate:"required,uuid"`
	PollID            string `json:"poll_id" validate:"omitempty,uuid"`
	Title             string `json:"title" validate:"required,max=200"`
	Body              string `json:"body" validate:"required,max=4000"`
	ScheduledDate     string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime     string `json:"scheduled_time" validate:"omitempty,datetime=15:04"`
	ScheduledLocation string `json:"scheduled_location" validate:"max=200"`
}

// UpdateNoticeRequest represents the request to update a draft notice
type UpdateNoticeRequest struct {
	Title             string `json:"title" validate:"required,max=200"`
	Body              string `json:"body" validate:"required,max=4000"`
	ScheduledDate     string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime     string `json:"scheduled_time" validate:"omitempty,datetime=15:04"`
	ScheduledLocation string `json:"scheduled_location" validate:"max=200"`
}

// NoticeResponse represents the response for notice operations
type NoticeResponse struct {
	ID                uuid.UUID           `json:"id"`
	CaseID            uuid.UUID           `json:"case_id"`
	PollID            *uuid.UUID          `json:"poll_id,omitempty"`
	Title             string              `json:"title"`
	Body              string              `json:"body"`
	ScheduledDate     string              `json:"scheduled_date,omitempty"`
	ScheduledTime     string              `json:"scheduled_time,omitempty"`
	ScheduledLocation string              `json:"scheduled_location,omitempty"`
	AttachmentName    string              `json:"attachment_name,omitempty"`
	HasAttachment     bool                `json:"has_attachment"`
	Status            models.NoticeStatus `json:"status"`
	EmailsSent        int                 `json:"emails_sent"`
	EmailsFailed      int                 `json:"emails_failed"`
	CreatedBy         string              `json:"created_by"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// NoticeListResponse represents a paginated list of notices
type NoticeListResponse struct {
	Notices  []NoticeResponse `json:"notices"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// SendNoticeResponse reports the outcome of dispatching a notice
type SendNoticeResponse struct {
	Notice       NoticeResponse `json:"notice"`
	EmailsSent   int            `json:"emails_sent"`
	EmailsFailed int            `json:"emails_failed"`
}

// Create creates a draft notice under a case owned by the calling
// mediator. When the request references a poll, the poll must belong to
// the case and be finalized; its confirmed option then supplies the
// scheduled date, time, and location, overriding whatever the request
// carries.
func (s *NoticeService) Create(req *CreateNoticeRequest, callerID string) (*NoticeResponse, error) {
	if result := ValidateNoticeData(req); !result.IsValid {
		return nil, apperrors.NewFieldValidationError(result.Errors)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

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

	notice := &models.Notice{
		CaseID:            caseID,
		Title:             req.Title,
		Body:              req.Body,
		ScheduledDate:     req.ScheduledDate,
		ScheduledTime:     req.ScheduledTime,
		ScheduledLocation: req.ScheduledLocation,
		Status:            models.NoticeStatusDraft,
	}
	notice.CreatedBy = callerID

	if req.PollID != "" {
		pollID, err := uuid.Parse(req.PollID)
		if err != nil {
			return nil, apperrors.NewValidationError("pollId", "poll reference must be a valid id")
		}
		poll, err := s.pollRepo.GetByID(pollID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPollNotFound
			}
			return nil, fmt.Errorf("failed to get poll: %w", err)
		}
		if poll.CaseID != caseID {
			return nil, apperrors.NewValidationError("pollId", "poll does not belong to this case")
		}
		if poll.Status != models.PollStatusFinalized || poll.FinalizedOptionID == nil {
			return nil, apperrors.ErrPollNotFinalizable
		}
		option, ok := poll.Option(*poll.FinalizedOptionID)
		if !ok {
			return nil, apperrors.ErrOptionNotInPoll
		}
		notice.PollID = &pollID
		notice.ScheduledDate = option.Date
		notice.ScheduledTime = option.Time
		notice.ScheduledLocation = option.EffectiveLocation(poll.Location)
	}

	if err := s.repo.Create(notice); err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}

	s.log.WithField("notice_id", notice.ID).WithField("case_id", caseID).Info("Notice created")
	return noticeToResponse(notice), nil
}

// GetByID retrieves a notice by ID
func (s *NoticeService) GetByID(id uuid.UUID) (*NoticeResponse, error) {
	notice, err := s.getNotice(id)
	if err != nil {
		return nil, err
	}
	return noticeToResponse(notice), nil
}

// ListByCase retrieves a case's notices with pagination
func (s *NoticeService) ListByCase(caseID uuid.UUID, page, pageSize int) (*NoticeListResponse, error) {
	offset := (page - 1) * pageSize
	notices, total, err := s.repo.GetByCaseID(caseID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	return &NoticeListResponse{
		Notices: lo.Map(notices, func(n models.Notice, _ int) NoticeResponse {
			return *noticeToResponse(&n)
		}),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a draft notice; sent notices are immutable records
func (s *NoticeService) Update(id uuid.UUID, req *UpdateNoticeRequest, callerID string) (*NoticeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	notice, err := s.getNotice(id)
	if err != nil {
		return nil, err
	}
	if notice.CreatedBy != callerID {
		return nil, apperrors.ErrNotOwner
	}
	if !notice.CanSend() {
		return nil, apperrors.ErrNoticeAlreadySent
	}

	notice.Title = req.Title
	notice.Body = req.Body
	notice.ScheduledDate = req.ScheduledDate
	notice.ScheduledTime = req.ScheduledTime
	notice.ScheduledLocation = req.ScheduledLocation

	if err := s.repo.Update(notice); err != nil {
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}
	return noticeToResponse(notice), nil
}

// Delete deletes a draft notice together with its stored attachment
func (s *NoticeService) Delete(id uuid.UUID, callerID string) error {
	notice, err := s.getNotice(id)
	if err != nil {
		return err
	}
	if notice.CreatedBy != callerID {
		return apperrors.ErrNotOwner
	}
	if !notice.CanSend() {
		return apperrors.ErrNoticeAlreadySent
	}

	if notice.AttachmentKey != "" {
		if err := s.store.Delete(notice.AttachmentKey); err != nil {
			s.log.WithField("notice_id", id).WithError(err).Warn("Failed to delete notice attachment")
		}
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}

// AttachPDF stores a PDF for a draft notice, replacing any previous
// attachment.
func (s *NoticeService) AttachPDF(id uuid.UUID, filename string, data []byte, callerID string) (*NoticeResponse, error) {
	notice, err := s.getNotice(id)
	if err != nil {
		return nil, err
	}
	if notice.CreatedBy != callerID {
		return nil, apperrors.ErrNotOwner
	}
	if !notice.CanSend() {
		return nil, apperrors.ErrNoticeAlreadySent
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, apperrors.NewValidationError("attachment", "only PDF attachments are accepted")
	}
	if int64(len(data)) > s.maxAttach {
		return nil, apperrors.NewValidationError("attachment", "attachment exceeds the size limit")
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("attachment", "attachment is empty")
	}

	key, err := s.store.Save(filename, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	if notice.AttachmentKey != "" {
		if err := s.store.Delete(notice.AttachmentKey); err != nil {
			s.log.WithField("notice_id", id).WithError(err).Warn("Failed to delete replaced attachment")
		}
	}

	notice.AttachmentKey = key
	notice.AttachmentName = filename
	if err := s.repo.Update(notice); err != nil {
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}
	return noticeToResponse(notice), nil
}

// AttachmentURL returns a short-lived signed download link for the
// notice's attachment.
func (s *NoticeService) AttachmentURL(id uuid.UUID) (string, error) {
	notice, err := s.getNotice(id)
	if err != nil {
		return "", err
	}
	if notice.AttachmentKey == "" {
		return "", apperrors.ErrAttachmentNotFound
	}
	url, err := s.store.SignedURL(notice.AttachmentKey, s.urlTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign attachment url: %w", err)
	}
	return url, nil
}

// Send dispatches a draft notice to every case participant, attaching the
// notice's PDF when one is stored. The notice moves to sent even when some
// recipients fail; per-recipient outcomes land in the delivery audit trail
// and the notice's counters. A notice is sent at most once.
func (s *NoticeService) Send(ctx context.Context, id uuid.UUID, callerID string) (*SendNoticeResponse, error) {
	notice, err := s.getNotice(id)
	if err != nil {
		return nil, err
	}
	if notice.CreatedBy != callerID {
		return nil, apperrors.ErrNotOwner
	}
	if !notice.CanSend() {
		return nil, apperrors.ErrNoticeAlreadySent
	}

	c, err := s.caseRepo.GetByID(notice.CaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	if len(c.Participants) == 0 {
		return nil, apperrors.NewValidationError("participants", "the case has no participants to notify")
	}

	var attachments []email.Attachment
	if notice.AttachmentKey != "" {
		content, err := s.store.Read(notice.AttachmentKey)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment: %w", err)
		}
		attachments = append(attachments, email.Attachment{
			Filename:    notice.AttachmentName,
			ContentType: "application/pdf",
			Content:     content,
		})
	}

	msgs := lo.Map(c.Participants, func(p models.Participant, _ int) email.Message {
		return email.Message{
			To:          p.Email,
			Subject:     fmt.Sprintf("Mediation notice: %s", notice.Title),
			HTMLBody:    noticeBody(notice, p),
			Attachments: attachments,
		}
	})

	results := email.SendBatch(ctx, s.sender, msgs, s.sendTimeout)
	sent := email.CountSent(results)
	failed := len(results) - sent

	deliveries := lo.Map(results, func(r email.Result, _ int) models.EmailDelivery {
		d := models.EmailDelivery{
			SourceType: models.DeliverySourceNotice,
			SourceID:   notice.ID,
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
		s.log.WithField("notice_id", notice.ID).WithError(err).Error("Failed to record notice deliveries")
	}

	notice.Status = models.NoticeStatusSent
	notice.EmailsSent = sent
	notice.EmailsFailed = failed
	if err := s.repo.Update(notice); err != nil {
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}

	s.log.WithField("notice_id", notice.ID).WithFields(map[string]interface{}{
		"emails_sent":   sent,
		"emails_failed": failed,
	}).Info("Notice sent")

	return &SendNoticeResponse{
		Notice:       *noticeToResponse(notice),
		EmailsSent:   sent,
		EmailsFailed: failed,
	}, nil
}

func (s *NoticeService) getNotice(id uuid.UUID) (*models.Notice, error) {
	notice, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}
	return notice, nil
}

func noticeBody(notice *models.Notice, p models.Participant) string {
	name := p.Name
	if name == "" {
		name = p.Email
	}
	var schedule string
	if notice.ScheduledDate != "" {
		schedule = fmt.Sprintf("<p>Scheduled for <b>%s %s</b>", html.EscapeString(notice.ScheduledDate), html.EscapeString(notice.ScheduledTime))
		if notice.ScheduledLocation != "" {
			schedule += " at " + html.EscapeString(notice.ScheduledLocation)
		}
		schedule += ".</p>"
	}
	return fmt.Sprintf(
		`<p>Dear %s,</p>
<p><b>%s</b></p>
%s
<p>%s</p>`,
		html.EscapeString(name), html.EscapeString(notice.Title), schedule, html.EscapeString(notice.Body))
}

func noticeToResponse(n *models.Notice) *NoticeResponse {
	return &NoticeResponse{
		ID:                n.ID,
		CaseID:            n.CaseID,
		PollID:            n.PollID,
		Title:             n.Title,
		Body:              n.Body,
		ScheduledDate:     n.ScheduledDate,
		ScheduledTime:     n.ScheduledTime,
		ScheduledLocation: n.ScheduledLocation,
		AttachmentName:    n.AttachmentName,
		HasAttachment:     n.AttachmentKey != "",
		Status:            n.Status,
		EmailsSent:        n.EmailsSent,
		EmailsFailed:      n.EmailsFailed,
		CreatedBy:         n.CreatedBy,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
	}
}
