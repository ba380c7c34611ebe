package auth

import (
	"testing"
	"time"

	"mediation-scheduler/internal/config"
	apperrors "mediation-scheduler/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	return NewService(&config.Config{
		JWTSecret:          "unit-test-secret",
		BaseURL:            "http://localhost:7010",
		SessionTTLHours:    1,
		VotingLinkTTLHours: 1,
	})
}

func TestSessionRoundTrip(t *testing.T) {
	svc := testService()

	token, err := svc.IssueSession("mediator-1", "mediator@example.com", "mediator")
	require.NoError(t, err)

	claims, err := svc.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, "mediator-1", claims.UserID)
	assert.Equal(t, "mediator@example.com", claims.Email)
	assert.Equal(t, "mediator", claims.Role)
}

func TestSessionWrongSecret(t *testing.T) {
	token, err := testService().IssueSession("mediator-1", "m@example.com", "mediator")
	require.NoError(t, err)

	other := NewService(&config.Config{
		JWTSecret:          "different-secret",
		SessionTTLHours:    1,
		VotingLinkTTLHours: 1,
	})
	_, err = other.ValidateSession(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestSessionGarbageToken(t *testing.T) {
	_, err := testService().ValidateSession("not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestSessionExpiry(t *testing.T) {
	svc := NewService(&config.Config{
		JWTSecret:          "unit-test-secret",
		SessionTTLHours:    0,
		VotingLinkTTLHours: 1,
	})
	// zero TTL makes the token expired on arrival
	token, err := svc.IssueSession("mediator-1", "m@example.com", "mediator")
	require.NoError(t, err)

	time.Sleep(time.Second + 10*time.Millisecond)
	_, err = svc.ValidateSession(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVotingLinkRoundTrip(t *testing.T) {
	svc := testService()
	pollID := uuid.New()

	token, err := svc.IssueVotingLinkToken(pollID, "Alice@X.com")
	require.NoError(t, err)

	claims, err := svc.ValidateVotingLinkToken(token)
	require.NoError(t, err)
	assert.Equal(t, pollID.String(), claims.PollID)
	assert.Equal(t, "alice@x.com", claims.ParticipantEmail, "email is normalized in the token")
}

func TestVotingLinkNotASessionToken(t *testing.T) {
	svc := testService()

	session, err := svc.IssueSession("mediator-1", "m@example.com", "mediator")
	require.NoError(t, err)

	// a session token parses as VotingClaims but carries no poll binding
	claims, err := svc.ValidateVotingLinkToken(session)
	if err == nil {
		assert.Empty(t, claims.PollID)
	}
}

func TestVotingURL(t *testing.T) {
	svc := testService()
	pollID := uuid.New()

	link, err := svc.VotingURL(pollID, "alice@x.com")
	require.NoError(t, err)
	assert.Contains(t, link, "http://localhost:7010/vote/"+pollID.String())
	assert.Contains(t, link, "token=")
}
