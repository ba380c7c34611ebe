package handlers

import (
	"net/http"
	"testing"

	apperrors "mediation-scheduler/internal/errors"
	"mediation-scheduler/internal/database/models"
	"mediation-scheduler/internal/mocks"
	"mediation-scheduler/internal/service"
	"mediation-scheduler/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PollHandlerTestSuite defines the test suite for PollHandler
type PollHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPollService *mocks.MockPollServiceInterface
	mockVoteService *mocks.MockVoteServiceInterface
	handler         *PollHandler
	voteHandler     *VoteHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PollHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPollService = mocks.NewMockPollServiceInterface(suite.ctrl)
	suite.mockVoteService = mocks.NewMockVoteServiceInterface(suite.ctrl)

	suite.handler = NewPollHandler(suite.mockPollService)
	suite.voteHandler = NewVoteHandler(suite.mockVoteService, suite.mockPollService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(identityMiddleware(testMediatorID))
	cases := v1.Group("/cases")
	{
		cases.GET("/:id/polls", suite.handler.ListCasePolls)
	}
	polls := v1.Group("/polls")
	{
		polls.POST("", suite.handler.CreatePoll)
		polls.GET("/:id", suite.handler.GetPoll)
		polls.PUT("/:id", suite.handler.UpdatePoll)
		polls.DELETE("/:id", suite.handler.DeletePoll)
		polls.POST("/:id/activate", suite.handler.ActivatePoll)
		polls.POST("/:id/finalize", suite.handler.FinalizePoll)
		polls.POST("/:id/cancel", suite.handler.CancelPoll)
		polls.GET("/:id/results", suite.handler.GetPollResults)
		polls.GET("/:id/votes", suite.voteHandler.ListPollVotes)
	}
}

// TearDownTest cleans up after each test
func (suite *PollHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePoll tests creating a poll
func (suite *PollHandlerTestSuite) TestCreatePoll() {
	pollID := uuid.New()
	caseID := uuid.New()
	requestBody := map[string]interface{}{
		"case_id": caseID.String(),
		"title":   "Initial session",
		"options": []map[string]interface{}{
			{"date": "2026-09-10", "time": "10:00", "duration_minutes": 90},
		},
	}

	expectedResponse := &service.PollResponse{
		ID:     pollID,
		CaseID: caseID,
		Title:  "Initial session",
		Status: models.PollStatusDraft,
	}

	suite.mockPollService.EXPECT().
		Create(gomock.Any(), testMediatorID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/polls", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.PollResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), pollID, response.ID)
	assert.Equal(suite.T(), models.PollStatusDraft, response.Status)
}

// TestCreatePollCaseNotFound tests not-found mapping on create
func (suite *PollHandlerTestSuite) TestCreatePollCaseNotFound() {
	requestBody := map[string]interface{}{
		"case_id": uuid.NewString(),
		"title":   "Initial session",
	}

	suite.mockPollService.EXPECT().
		Create(gomock.Any(), testMediatorID).
		Return(nil, apperrors.ErrCaseNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/polls", requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestUpdatePollNotDraft tests state-error mapping on update
func (suite *PollHandlerTestSuite) TestUpdatePollNotDraft() {
	pollID := uuid.New()
	requestBody := map[string]interface{}{"title": "Renamed"}

	suite.mockPollService.EXPECT().
		Update(pollID, gomock.Any(), testMediatorID).
		Return(nil, apperrors.ErrPollNotDraft).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/polls/"+pollID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestActivatePoll tests activating a poll
func (suite *PollHandlerTestSuite) TestActivatePoll() {
	pollID := uuid.New()
	expectedResponse := &service.ActivatePollResponse{
		Poll:            service.PollResponse{ID: pollID, Status: models.PollStatusActive},
		EmailsSent:      2,
		EmailsDelivered: 2,
	}

	suite.mockPollService.EXPECT().
		Activate(gomock.Any(), pollID, testMediatorID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/polls/"+pollID.String()+"/activate", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ActivatePollResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.PollStatusActive, response.Poll.Status)
	assert.Equal(suite.T(), 2, response.EmailsDelivered)
}

// TestActivatePollConcurrentUpdate tests conflict mapping on activation races
func (suite *PollHandlerTestSuite) TestActivatePollConcurrentUpdate() {
	pollID := uuid.New()

	suite.mockPollService.EXPECT().
		Activate(gomock.Any(), pollID, testMediatorID).
		Return(nil, apperrors.ErrPollConcurrentUpdate).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/polls/"+pollID.String()+"/activate", nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestActivatePollNotOwner tests ownership mapping on activation
func (suite *PollHandlerTestSuite) TestActivatePollNotOwner() {
	pollID := uuid.New()

	suite.mockPollService.EXPECT().
		Activate(gomock.Any(), pollID, testMediatorID).
		Return(nil, apperrors.ErrNotOwner).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/polls/"+pollID.String()+"/activate", nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestFinalizePoll tests finalizing a poll
func (suite *PollHandlerTestSuite) TestFinalizePoll() {
	pollID := uuid.New()
	optionID := "opt-1"
	requestBody := map[string]interface{}{"selected_option_id": optionID}

	expectedResponse := &service.PollResponse{
		ID:                pollID,
		Status:            models.PollStatusFinalized,
		FinalizedOptionID: &optionID,
	}

	suite.mockPollService.EXPECT().
		Finalize(pollID, gomock.Any(), testMediatorID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/polls/"+pollID.String()+"/finalize", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PollResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.PollStatusFinalized, response.Status)
	assert.Equal(suite.T(), optionID, *response.FinalizedOptionID)
}

// TestFinalizePollUnknownOption tests option-membership mapping
func (suite *PollHandlerTestSuite) TestFinalizePollUnknownOption() {
	pollID := uuid.New()
	requestBody := map[string]interface{}{"selected_option_id": "opt-9"}

	suite.mockPollService.EXPECT().
		Finalize(pollID, gomock.Any(), testMediatorID).
		Return(nil, apperrors.ErrOptionNotInPoll).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/polls/"+pollID.String()+"/finalize", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCancelPoll tests cancelling a poll
func (suite *PollHandlerTestSuite) TestCancelPoll() {
	pollID := uuid.New()
	expectedResponse := &service.PollResponse{ID: pollID, Status: models.PollStatusCancelled}

	suite.mockPollService.EXPECT().
		Cancel(pollID, testMediatorID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/polls/"+pollID.String()+"/cancel", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeletePoll tests deleting a poll
func (suite *PollHandlerTestSuite) TestDeletePoll() {
	pollID := uuid.New()

	suite.mockPollService.EXPECT().
		Delete(pollID, testMediatorID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/polls/"+pollID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestGetPollResults tests the results endpoint
func (suite *PollHandlerTestSuite) TestGetPollResults() {
	pollID := uuid.New()
	expectedResponse := &service.PollResultsResponse{
		PollID:            pollID,
		Status:            models.PollStatusActive,
		VotesReceived:     2,
		ParticipantCount:  2,
		ParticipationRate: 100,
	}

	suite.mockPollService.EXPECT().
		Results(pollID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/polls/"+pollID.String()+"/results", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PollResultsResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 100, response.ParticipationRate)
}

// TestGetPollResultsInvalidUUID tests bad poll ID on results
func (suite *PollHandlerTestSuite) TestGetPollResultsInvalidUUID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/polls/nope/results", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid UUID format")
}

// TestListCasePolls tests listing polls under a case
func (suite *PollHandlerTestSuite) TestListCasePolls() {
	caseID := uuid.New()
	expectedResponse := &service.PollListResponse{
		Polls:    []service.PollResponse{{Title: "Initial session"}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockPollService.EXPECT().
		ListByCase(caseID, 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/cases/"+caseID.String()+"/polls", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PollListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Polls, 1)
}

// TestListPollVotes tests the mediator vote listing endpoint
func (suite *PollHandlerTestSuite) TestListPollVotes() {
	pollID := uuid.New()
	votes := []models.Vote{
		{PollID: pollID, OptionID: "opt-1", ParticipantEmail: "alice@example.com", Status: models.VoteStatusPreferred},
	}

	suite.mockVoteService.EXPECT().
		ListByPoll(pollID).
		Return(votes, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/polls/"+pollID.String()+"/votes", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &body)
	assert.Equal(suite.T(), float64(1), body["total"])
}

// TestPollHandlerTestSuite runs the test suite
func TestPollHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PollHandlerTestSuite))
}
