//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"mediation-scheduler/internal/database/models"
	"mediation-scheduler/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// VoteRepositoryTestSuite tests the VoteRepository
type VoteRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *VoteRepository
	caseRepo      *CaseRepository
	pollRepo      *PollRepository
	caseFactory   *testutils.CaseFactory
	pollFactory   *testutils.PollFactory
	voteFactory   *testutils.VoteFactory
}

// SetupSuite runs before all tests in the suite
func (suite *VoteRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewVoteRepository(suite.baseTestSuite.DB)
	suite.caseRepo = NewCaseRepository(suite.baseTestSuite.DB)
	suite.pollRepo = NewPollRepository(suite.baseTestSuite.DB)
	suite.caseFactory = testutils.NewCaseFactory()
	suite.pollFactory = testutils.NewPollFactory()
	suite.voteFactory = testutils.NewVoteFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *VoteRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *VoteRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *VoteRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createActivePoll persists a case with an active poll under it
func (suite *VoteRepositoryTestSuite) createActivePoll() *models.Poll {
	c := suite.caseFactory.Create()
	suite.Require().NoError(suite.caseRepo.Create(c))

	poll := suite.pollFactory.Active()
	poll.CaseID = c.ID
	suite.Require().NoError(suite.pollRepo.Create(poll))
	return poll
}

// TestUpsertInsert tests inserting a fresh vote
func (suite *VoteRepositoryTestSuite) TestUpsertInsert() {
	poll := suite.createActivePoll()

	vote := suite.voteFactory.Create(poll.ID, "opt-1", "alice@example.com", models.VoteStatusPreferred)
	suite.NoError(suite.repo.Upsert(&vote))

	votes, err := suite.repo.GetByPollID(poll.ID)
	suite.NoError(err)
	suite.Len(votes, 1)
	suite.Equal(models.VoteStatusPreferred, votes[0].Status)
}

// TestUpsertReplacesExisting tests that resubmission overwrites in place
func (suite *VoteRepositoryTestSuite) TestUpsertReplacesExisting() {
	poll := suite.createActivePoll()

	first := suite.voteFactory.Create(poll.ID, "opt-1", "alice@example.com", models.VoteStatusAvailable)
	suite.NoError(suite.repo.Upsert(&first))

	second := suite.voteFactory.Create(poll.ID, "opt-1", "alice@example.com", models.VoteStatusUnavailable)
	second.VotedAt = first.VotedAt.Add(time.Minute)
	suite.NoError(suite.repo.Upsert(&second))

	votes, err := suite.repo.GetByPollID(poll.ID)
	suite.NoError(err)
	suite.Len(votes, 1)
	suite.Equal(models.VoteStatusUnavailable, votes[0].Status)
	suite.Equal(first.ID, votes[0].ID)
}

// TestUpsertKeepsNewerVote tests that a stale submission never wins
func (suite *VoteRepositoryTestSuite) TestUpsertKeepsNewerVote() {
	poll := suite.createActivePoll()

	current := suite.voteFactory.Create(poll.ID, "opt-1", "alice@example.com", models.VoteStatusPreferred)
	suite.NoError(suite.repo.Upsert(&current))

	stale := suite.voteFactory.Create(poll.ID, "opt-1", "alice@example.com", models.VoteStatusUnavailable)
	stale.VotedAt = current.VotedAt.Add(-time.Hour)
	suite.NoError(suite.repo.Upsert(&stale))

	votes, err := suite.repo.GetByPollID(poll.ID)
	suite.NoError(err)
	suite.Len(votes, 1)
	suite.Equal(models.VoteStatusPreferred, votes[0].Status)
}

// TestUpsertNormalizesEmail tests the case-insensitive vote key
func (suite *VoteRepositoryTestSuite) TestUpsertNormalizesEmail() {
	poll := suite.createActivePoll()

	first := suite.voteFactory.Create(poll.ID, "opt-1", "alice@example.com", models.VoteStatusAvailable)
	suite.NoError(suite.repo.Upsert(&first))

	shouted := suite.voteFactory.Create(poll.ID, "opt-1", "ALICE@Example.COM", models.VoteStatusPreferred)
	shouted.VotedAt = first.VotedAt.Add(time.Minute)
	suite.NoError(suite.repo.Upsert(&shouted))

	votes, err := suite.repo.GetByPollAndParticipant(poll.ID, "Alice@example.com")
	suite.NoError(err)
	suite.Len(votes, 1)
	suite.Equal(models.VoteStatusPreferred, votes[0].Status)
}

// TestCountByPollAndParticipant tests the per-participant vote count
func (suite *VoteRepositoryTestSuite) TestCountByPollAndParticipant() {
	poll := suite.createActivePoll()

	v1 := suite.voteFactory.Create(poll.ID, "opt-1", "alice@example.com", models.VoteStatusAvailable)
	suite.NoError(suite.repo.Upsert(&v1))
	v2 := suite.voteFactory.Create(poll.ID, "opt-2", "alice@example.com", models.VoteStatusPreferred)
	suite.NoError(suite.repo.Upsert(&v2))
	v3 := suite.voteFactory.Create(poll.ID, "opt-1", "bob@example.com", models.VoteStatusUnavailable)
	suite.NoError(suite.repo.Upsert(&v3))

	count, err := suite.repo.CountByPollAndParticipant(poll.ID, "alice@example.com")
	suite.NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repo.CountByPollAndParticipant(poll.ID, "carol@example.com")
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestDeleteByPollID tests bulk vote removal on poll deletion
func (suite *VoteRepositoryTestSuite) TestDeleteByPollID() {
	poll := suite.createActivePoll()
	other := suite.createActivePoll()

	v1 := suite.voteFactory.Create(poll.ID, "opt-1", "alice@example.com", models.VoteStatusAvailable)
	suite.NoError(suite.repo.Upsert(&v1))
	v2 := suite.voteFactory.Create(other.ID, "opt-1", "alice@example.com", models.VoteStatusAvailable)
	suite.NoError(suite.repo.Upsert(&v2))

	suite.NoError(suite.repo.DeleteByPollID(poll.ID))

	votes, err := suite.repo.GetByPollID(poll.ID)
	suite.NoError(err)
	suite.Empty(votes)

	votes, err = suite.repo.GetByPollID(other.ID)
	suite.NoError(err)
	suite.Len(votes, 1)
}

// TestVoteRepositoryTestSuite runs the test suite
func TestVoteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VoteRepositoryTestSuite))
}
