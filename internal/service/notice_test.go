package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mediation-scheduler/internal/database/models"
	apperrors "mediation-scheduler/internal/errors"
	"mediation-scheduler/internal/mocks"
	"mediation-scheduler/internal/service"
	"mediation-scheduler/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// memoryStore is an in-memory stand-in for the attachment store
type memoryStore struct {
	files map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{files: map[string][]byte{}}
}

func (s *memoryStore) Save(name string, data []byte) (string, error) {
	key := uuid.NewString() + "-" + name
	s.files[key] = data
	return key, nil
}

func (s *memoryStore) Read(key string) ([]byte, error) {
	data, ok := s.files[key]
	if !ok {
		return nil, fmt.Errorf("no such file %q", key)
	}
	return data, nil
}

func (s *memoryStore) Delete(key string) error {
	delete(s.files, key)
	return nil
}

func (s *memoryStore) SignedURL(key string, ttl time.Duration) (string, error) {
	if _, ok := s.files[key]; !ok {
		return "", fmt.Errorf("no such file %q", key)
	}
	return "http://localhost/attachments/" + key + "?sig=test", nil
}

func (s *memoryStore) VerifyDownload(key string, expires int64, signature string) bool {
	_, ok := s.files[key]
	return ok
}

// NoticeServiceTestSuite defines the test suite for NoticeService
type NoticeServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockNoticeRepo   *mocks.MockNoticeRepositoryInterface
	mockCaseRepo     *mocks.MockCaseRepositoryInterface
	mockPollRepo     *mocks.MockPollRepositoryInterface
	mockDeliveryRepo *mocks.MockEmailDeliveryRepositoryInterface
	sender           *scriptedSender
	store            *memoryStore
	noticeService    *service.NoticeService
}

// SetupTest sets up the test suite
func (suite *NoticeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNoticeRepo = mocks.NewMockNoticeRepositoryInterface(suite.ctrl)
	suite.mockCaseRepo = mocks.NewMockCaseRepositoryInterface(suite.ctrl)
	suite.mockPollRepo = mocks.NewMockPollRepositoryInterface(suite.ctrl)
	suite.mockDeliveryRepo = mocks.NewMockEmailDeliveryRepositoryInterface(suite.ctrl)
	suite.sender = newScriptedSender()
	suite.store = newMemoryStore()

	suite.noticeService = service.NewNoticeService(
		suite.mockNoticeRepo,
		suite.mockCaseRepo,
		suite.mockPollRepo,
		suite.mockDeliveryRepo,
		suite.sender,
		suite.store,
		validator.New(),
		time.Second,
		15*time.Minute,
		10*1024*1024,
	)
}

// TearDownTest cleans up after each test
func (suite *NoticeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NoticeServiceTestSuite) TestCreateNotice() {
	c := testutils.NewCaseFactory().Create()
	suite.mockCaseRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockNoticeRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.noticeService.Create(&service.CreateNoticeRequest{
		CaseID:        c.ID.String(),
		Title:         "Session confirmed",
		Body:          "Please attend.",
		ScheduledDate: "2026-09-10",
		ScheduledTime: "10:00",
	}, "mediator-1")

	suite.NoError(err)
	suite.Equal(models.NoticeStatusDraft, resp.Status)
	suite.Equal("2026-09-10", resp.ScheduledDate)
}

// A notice built from a finalized poll copies the confirmed option's
// schedule, including the option-level location override.
func (suite *NoticeServiceTestSuite) TestCreateNoticeFromFinalizedPoll() {
	c := testutils.NewCaseFactory().Create()
	poll := testutils.NewPollFactory().ForCase(c.ID)
	poll.Status = models.PollStatusFinalized
	optID := "opt-2"
	poll.FinalizedOptionID = &optID
	poll.Options[1].Location = "Courtroom B"

	suite.mockCaseRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)
	suite.mockNoticeRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.noticeService.Create(&service.CreateNoticeRequest{
		CaseID: c.ID.String(),
		PollID: poll.ID.String(),
		Title:  "Session confirmed",
		Body:   "Please attend.",
	}, "mediator-1")

	suite.NoError(err)
	suite.Equal("2026-09-11", resp.ScheduledDate)
	suite.Equal("14:00", resp.ScheduledTime)
	suite.Equal("Courtroom B", resp.ScheduledLocation)
	suite.Equal(poll.ID, *resp.PollID)
}

func (suite *NoticeServiceTestSuite) TestCreateNoticeRejectsUnfinalizedPoll() {
	c := testutils.NewCaseFactory().Create()
	poll := testutils.NewPollFactory().ForCase(c.ID)
	poll.Status = models.PollStatusActive

	suite.mockCaseRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)

	_, err := suite.noticeService.Create(&service.CreateNoticeRequest{
		CaseID: c.ID.String(),
		PollID: poll.ID.String(),
		Title:  "Session confirmed",
		Body:   "Please attend.",
	}, "mediator-1")

	suite.ErrorIs(err, apperrors.ErrPollNotFinalizable)
}

func (suite *NoticeServiceTestSuite) TestCreateNoticeRejectsForeignPoll() {
	c := testutils.NewCaseFactory().Create()
	poll := testutils.NewPollFactory().Create() // different case

	suite.mockCaseRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)

	_, err := suite.noticeService.Create(&service.CreateNoticeRequest{
		CaseID: c.ID.String(),
		PollID: poll.ID.String(),
		Title:  "Session confirmed",
		Body:   "Please attend.",
	}, "mediator-1")

	suite.True(apperrors.IsValidation(err))
}

func (suite *NoticeServiceTestSuite) TestAttachPDF() {
	notice := testutils.NewNoticeFactory().Create(uuid.New())
	suite.mockNoticeRepo.EXPECT().GetByID(notice.ID).Return(notice, nil)
	suite.mockNoticeRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.noticeService.AttachPDF(notice.ID, "summons.pdf", []byte("%PDF-1.7"), "mediator-1")

	suite.NoError(err)
	suite.True(resp.HasAttachment)
	suite.Equal("summons.pdf", resp.AttachmentName)
	suite.Len(suite.store.files, 1)
}

func (suite *NoticeServiceTestSuite) TestAttachPDFRejectsNonPDF() {
	notice := testutils.NewNoticeFactory().Create(uuid.New())
	suite.mockNoticeRepo.EXPECT().GetByID(notice.ID).Return(notice, nil)

	_, err := suite.noticeService.AttachPDF(notice.ID, "virus.exe", []byte("MZ"), "mediator-1")

	suite.True(apperrors.IsValidation(err))
	suite.Empty(suite.store.files)
}

func (suite *NoticeServiceTestSuite) TestAttachPDFSizeLimit() {
	notice := testutils.NewNoticeFactory().Create(uuid.New())
	suite.mockNoticeRepo.EXPECT().GetByID(notice.ID).Return(notice, nil)

	big := make([]byte, 10*1024*1024+1)
	_, err := suite.noticeService.AttachPDF(notice.ID, "huge.pdf", big, "mediator-1")

	suite.True(apperrors.IsValidation(err))
}

func (suite *NoticeServiceTestSuite) TestAttachmentURL() {
	notice := testutils.NewNoticeFactory().Create(uuid.New())
	key, _ := suite.store.Save("summons.pdf", []byte("%PDF-1.7"))
	notice.AttachmentKey = key
	suite.mockNoticeRepo.EXPECT().GetByID(notice.ID).Return(notice, nil)

	url, err := suite.noticeService.AttachmentURL(notice.ID)

	suite.NoError(err)
	suite.Contains(url, key)
}

func (suite *NoticeServiceTestSuite) TestAttachmentURLWithoutAttachment() {
	notice := testutils.NewNoticeFactory().Create(uuid.New())
	suite.mockNoticeRepo.EXPECT().GetByID(notice.ID).Return(notice, nil)

	_, err := suite.noticeService.AttachmentURL(notice.ID)

	suite.ErrorIs(err, apperrors.ErrAttachmentNotFound)
}

func (suite *NoticeServiceTestSuite) TestSendNotice() {
	c := testutils.NewCaseFactory().Create()
	notice := testutils.NewNoticeFactory().Create(c.ID)
	key, _ := suite.store.Save("summons.pdf", []byte("%PDF-1.7"))
	notice.AttachmentKey = key
	notice.AttachmentName = "summons.pdf"

	suite.mockNoticeRepo.EXPECT().GetByID(notice.ID).Return(notice, nil)
	suite.mockCaseRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockDeliveryRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(deliveries []models.EmailDelivery) error {
		suite.Len(deliveries, 2)
		suite.Equal(models.DeliverySourceNotice, deliveries[0].SourceType)
		return nil
	})
	suite.mockNoticeRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(n *models.Notice) error {
		suite.Equal(models.NoticeStatusSent, n.Status)
		suite.Equal(2, n.EmailsSent)
		suite.Equal(0, n.EmailsFailed)
		return nil
	})

	resp, err := suite.noticeService.Send(context.Background(), notice.ID, "mediator-1")

	suite.NoError(err)
	suite.Equal(2, resp.EmailsSent)
	suite.Len(suite.sender.sent, 2)
	suite.Require().Len(suite.sender.sent[0].Attachments, 1)
	suite.Equal("summons.pdf", suite.sender.sent[0].Attachments[0].Filename)
}

func (suite *NoticeServiceTestSuite) TestSendNoticeTwiceRejected() {
	notice := testutils.NewNoticeFactory().Create(uuid.New())
	notice.Status = models.NoticeStatusSent
	suite.mockNoticeRepo.EXPECT().GetByID(notice.ID).Return(notice, nil)

	_, err := suite.noticeService.Send(context.Background(), notice.ID, "mediator-1")

	suite.ErrorIs(err, apperrors.ErrNoticeAlreadySent)
	suite.Empty(suite.sender.sent)
}

func (suite *NoticeServiceTestSuite) TestDeleteRemovesAttachment() {
	notice := testutils.NewNoticeFactory().Create(uuid.New())
	key, _ := suite.store.Save("summons.pdf", []byte("%PDF-1.7"))
	notice.AttachmentKey = key

	suite.mockNoticeRepo.EXPECT().GetByID(notice.ID).Return(notice, nil)
	suite.mockNoticeRepo.EXPECT().Delete(notice.ID).Return(nil)

	suite.NoError(suite.noticeService.Delete(notice.ID, "mediator-1"))
	suite.Empty(suite.store.files)
}

func (suite *NoticeServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockNoticeRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.noticeService.GetByID(id)

	suite.ErrorIs(err, apperrors.ErrNoticeNotFound)
}

// TestNoticeServiceTestSuite runs the test suite
func TestNoticeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NoticeServiceTestSuite))
}
