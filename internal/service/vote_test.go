package service_test

import (
	"errors"
	"testing"

	"mediation-scheduler/internal/database/models"
	apperrors "mediation-scheduler/internal/errors"
	"mediation-scheduler/internal/mocks"
	"mediation-scheduler/internal/service"
	"mediation-scheduler/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// VoteServiceTestSuite defines the test suite for VoteService
type VoteServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPollRepo *mocks.MockPollRepositoryInterface
	mockVoteRepo *mocks.MockVoteRepositoryInterface
	voteService  *service.VoteService
}

// SetupTest sets up the test suite
func (suite *VoteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPollRepo = mocks.NewMockPollRepositoryInterface(suite.ctrl)
	suite.mockVoteRepo = mocks.NewMockVoteRepositoryInterface(suite.ctrl)
	suite.voteService = service.NewVoteService(suite.mockPollRepo, suite.mockVoteRepo)
}

// TearDownTest cleans up after each test
func (suite *VoteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VoteServiceTestSuite) TestSubmitVotesFirstSubmission() {
	poll := testutils.NewPollFactory().Active()
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)
	suite.mockVoteRepo.EXPECT().CountByPollAndParticipant(poll.ID, "alice@example.com").Return(int64(0), nil)
	suite.mockVoteRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(v *models.Vote) error {
		suite.Equal(poll.ID, v.PollID)
		suite.Equal("alice@example.com", v.ParticipantEmail)
		suite.False(v.VotedAt.IsZero())
		return nil
	}).Times(2)
	suite.mockPollRepo.EXPECT().IncrementVotesReceived(poll.ID).Return(nil)

	resp, err := suite.voteService.SubmitVotes(poll.ID, "Alice@Example.com", &service.SubmitVotesRequest{
		Votes: []service.VoteInput{
			{OptionID: "opt-1", Status: models.VoteStatusPreferred},
			{OptionID: "opt-2", Status: models.VoteStatusUnavailable, Notes: "on holiday"},
		},
	})

	suite.NoError(err)
	suite.True(resp.FirstSubmission)
	suite.Equal(2, resp.VotesApplied)
	suite.Len(resp.Results, 2)
	suite.True(resp.Results[0].Applied)
}

// Resubmitting must not bump the votes-received counter again.
func (suite *VoteServiceTestSuite) TestSubmitVotesResubmissionDoesNotRecount() {
	poll := testutils.NewPollFactory().Active()
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)
	suite.mockVoteRepo.EXPECT().CountByPollAndParticipant(poll.ID, "alice@example.com").Return(int64(2), nil)
	suite.mockVoteRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	resp, err := suite.voteService.SubmitVotes(poll.ID, "alice@example.com", &service.SubmitVotesRequest{
		Votes: []service.VoteInput{{OptionID: "opt-1", Status: models.VoteStatusAvailable}},
	})

	suite.NoError(err)
	suite.False(resp.FirstSubmission)
}

func (suite *VoteServiceTestSuite) TestSubmitVotesRejectsInactivePoll() {
	poll := testutils.NewPollFactory().Create()
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)

	_, err := suite.voteService.SubmitVotes(poll.ID, "alice@example.com", &service.SubmitVotesRequest{
		Votes: []service.VoteInput{{OptionID: "opt-1", Status: models.VoteStatusAvailable}},
	})

	suite.ErrorIs(err, apperrors.ErrPollNotActive)
}

func (suite *VoteServiceTestSuite) TestSubmitVotesRejectsStranger() {
	poll := testutils.NewPollFactory().Active()
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)

	_, err := suite.voteService.SubmitVotes(poll.ID, "stranger@example.com", &service.SubmitVotesRequest{
		Votes: []service.VoteInput{{OptionID: "opt-1", Status: models.VoteStatusAvailable}},
	})

	suite.ErrorIs(err, apperrors.ErrVoterNotParticipant)
}

// A single bad item rejects the whole batch before any write happens.
func (suite *VoteServiceTestSuite) TestSubmitVotesWholeBatchValidation() {
	poll := testutils.NewPollFactory().Active()

	testCases := []struct {
		name     string
		votes    []service.VoteInput
		expected error
	}{
		{
			"unknown option",
			[]service.VoteInput{
				{OptionID: "opt-1", Status: models.VoteStatusAvailable},
				{OptionID: "bogus", Status: models.VoteStatusAvailable},
			},
			apperrors.ErrOptionNotInPoll,
		},
		{
			"duplicate option in batch",
			[]service.VoteInput{
				{OptionID: "opt-1", Status: models.VoteStatusAvailable},
				{OptionID: "opt-1", Status: models.VoteStatusPreferred},
			},
			apperrors.ErrDuplicateOptionID,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)

			_, err := suite.voteService.SubmitVotes(poll.ID, "alice@example.com", &service.SubmitVotesRequest{Votes: tc.votes})

			suite.ErrorIs(err, tc.expected)
		})
	}
}

func (suite *VoteServiceTestSuite) TestSubmitVotesRejectsUnknownStatus() {
	poll := testutils.NewPollFactory().Active()
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)

	_, err := suite.voteService.SubmitVotes(poll.ID, "alice@example.com", &service.SubmitVotesRequest{
		Votes: []service.VoteInput{{OptionID: "opt-1", Status: "maybe"}},
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *VoteServiceTestSuite) TestSubmitVotesEmptyBatch() {
	poll := testutils.NewPollFactory().Active()
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)

	_, err := suite.voteService.SubmitVotes(poll.ID, "alice@example.com", &service.SubmitVotesRequest{})

	suite.True(apperrors.IsValidation(err))
}

// Item failures after validation are independent: one failed upsert still
// lets the other items land, and the failure shows up in that item's
// result.
func (suite *VoteServiceTestSuite) TestSubmitVotesPartialStorageFailure() {
	poll := testutils.NewPollFactory().Active()
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)
	suite.mockVoteRepo.EXPECT().CountByPollAndParticipant(poll.ID, "alice@example.com").Return(int64(0), nil)
	suite.mockVoteRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(v *models.Vote) error {
		if v.OptionID == "opt-1" {
			return errors.New("deadlock detected")
		}
		return nil
	}).Times(2)
	suite.mockPollRepo.EXPECT().IncrementVotesReceived(poll.ID).Return(nil)

	resp, err := suite.voteService.SubmitVotes(poll.ID, "alice@example.com", &service.SubmitVotesRequest{
		Votes: []service.VoteInput{
			{OptionID: "opt-1", Status: models.VoteStatusAvailable},
			{OptionID: "opt-2", Status: models.VoteStatusPreferred},
		},
	})

	suite.NoError(err)
	suite.Equal(1, resp.VotesApplied)
	suite.False(resp.Results[0].Applied)
	suite.Contains(resp.Results[0].Error, "deadlock")
	suite.True(resp.Results[1].Applied)
}

func (suite *VoteServiceTestSuite) TestSubmitVotesPollNotFound() {
	poll := testutils.NewPollFactory().Active()
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.voteService.SubmitVotes(poll.ID, "alice@example.com", &service.SubmitVotesRequest{
		Votes: []service.VoteInput{{OptionID: "opt-1", Status: models.VoteStatusAvailable}},
	})

	suite.ErrorIs(err, apperrors.ErrPollNotFound)
}

func (suite *VoteServiceTestSuite) TestListByPoll() {
	poll := testutils.NewPollFactory().Active()
	votes := testutils.NewVoteFactory().Batch(poll.ID, "opt-1",
		models.VoteStatusAvailable, models.VoteStatusPreferred)
	suite.mockPollRepo.EXPECT().GetByID(poll.ID).Return(poll, nil)
	suite.mockVoteRepo.EXPECT().GetByPollID(poll.ID).Return(votes, nil)

	got, err := suite.voteService.ListByPoll(poll.ID)

	suite.NoError(err)
	suite.Len(got, 2)
}

// TestVoteServiceTestSuite runs the test suite
func TestVoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoteServiceTestSuite))
}
