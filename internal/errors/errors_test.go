package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "poll"}
		assert.Equal(t, "poll not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "poll"}
		err2 := &NotFoundError{Entity: "poll"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "poll"}
		err2 := &NotFoundError{Entity: "case"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrPollNotFound, ErrPollNotFound))
		assert.False(t, errors.Is(ErrPollNotFound, ErrCaseNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPollNotFound))
		assert.False(t, IsNotFound(ErrOptionNotInPoll))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading poll: %w", ErrPollNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "title", Message: "is required"}
		assert.Equal(t, "validation error: title - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("title", "is required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrPollNotFound))
	})
}

func TestStateError(t *testing.T) {
	t.Run("Error message with status", func(t *testing.T) {
		err := &StateError{Entity: "poll", Status: "draft", Message: "cannot be finalized"}
		assert.Equal(t, `poll in status "draft": cannot be finalized`, err.Error())
	})

	t.Run("Error message without status", func(t *testing.T) {
		err := &StateError{Entity: "poll", Message: "cannot be finalized"}
		assert.Equal(t, "poll: cannot be finalized", err.Error())
	})

	t.Run("IsState helper", func(t *testing.T) {
		assert.True(t, IsState(ErrPollNotActive))
		assert.True(t, IsState(NewStateError("poll", "cancelled", "no voting")))
		assert.False(t, IsState(ErrPollNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ConflictError{Entity: "poll", Message: "status changed concurrently"}
		assert.Equal(t, "conflict on poll: status changed concurrently", err.Error())
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrPollConcurrentUpdate))
		assert.False(t, IsConflict(ErrPollNotActive))
	})

	t.Run("IsConflict through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("finalize: %w", ErrPollConcurrentUpdate)
		assert.True(t, IsConflict(wrapped))
	})
}

func TestDeliveryError(t *testing.T) {
	t.Run("Error message and unwrap", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewDeliveryError("alice@example.com", cause)
		assert.Equal(t, "delivery to alice@example.com failed: connection refused", err.Error())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsDelivery helper", func(t *testing.T) {
		assert.True(t, IsDelivery(NewDeliveryError("bob@example.com", errors.New("timeout"))))
		assert.False(t, IsDelivery(ErrPollNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("Authentication errors", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.True(t, IsAuthentication(ErrInvalidVotingLink))
		assert.False(t, IsAuthentication(ErrNotOwner))
	})

	t.Run("Authorization errors", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotOwner))
		assert.True(t, IsAuthorization(ErrVoterNotParticipant))
		assert.False(t, IsAuthorization(ErrInvalidToken))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("State machine errors", func(t *testing.T) {
		assert.Error(t, ErrPollNotDraft)
		assert.Error(t, ErrPollNotActive)
		assert.Error(t, ErrPollNotActivatable)
		assert.Error(t, ErrPollNotFinalizable)
		assert.Error(t, ErrPollNotCancellable)
		assert.Error(t, ErrPollNotDeletable)
	})

	t.Run("Business logic errors", func(t *testing.T) {
		assert.Error(t, ErrNoVotesReceived)
		assert.Error(t, ErrOptionNotInPoll)
		assert.Error(t, ErrDuplicateOptionID)
		assert.Error(t, ErrCaseHasActivePolls)
		assert.Error(t, ErrNoticeAlreadySent)
	})
}
